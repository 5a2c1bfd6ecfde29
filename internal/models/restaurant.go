package models

// Restaurant represents a restaurant and the pizzas it offers
type Restaurant struct {
	ID      int    `gorm:"primaryKey" json:"id"`
	Name    string `gorm:"not null" json:"name"`
	Address string `json:"address"`

	RestaurantPizzas []RestaurantPizza `json:"restaurant_pizzas,omitempty"`
}

func (Restaurant) TableName() string {
	return "restaurants"
}

// RestaurantResponse is the JSON shape of a restaurant in listings
type RestaurantResponse struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address"`
}

// RestaurantDetailResponse is the JSON shape of a single restaurant with its offerings
type RestaurantDetailResponse struct {
	ID               int                       `json:"id"`
	Name             string                    `json:"name"`
	Address          string                    `json:"address"`
	RestaurantPizzas []RestaurantPizzaResponse `json:"restaurant_pizzas"`
}

// ToResponse converts the restaurant into its listing shape
func (r Restaurant) ToResponse() RestaurantResponse {
	return RestaurantResponse{
		ID:      r.ID,
		Name:    r.Name,
		Address: r.Address,
	}
}

// ToDetailResponse converts the restaurant and its loaded offerings into the detail shape.
// RestaurantPizzas must have been preloaded together with their Pizza.
func (r Restaurant) ToDetailResponse() RestaurantDetailResponse {
	offerings := make([]RestaurantPizzaResponse, 0, len(r.RestaurantPizzas))
	for _, rp := range r.RestaurantPizzas {
		offerings = append(offerings, rp.ToResponse())
	}
	return RestaurantDetailResponse{
		ID:               r.ID,
		Name:             r.Name,
		Address:          r.Address,
		RestaurantPizzas: offerings,
	}
}
