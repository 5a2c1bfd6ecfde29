package models

// RestaurantPizza records that a restaurant offers a pizza at a given price
type RestaurantPizza struct {
	ID           int        `gorm:"primaryKey" json:"id"`
	Price        int        `gorm:"not null;check:chk_restaurant_pizzas_price,price >= 1 AND price <= 30" json:"price"`
	PizzaID      int        `gorm:"not null;index" json:"pizza_id"`
	Pizza        Pizza      `json:"pizza"`
	RestaurantID int        `gorm:"not null;index" json:"restaurant_id"`
	Restaurant   Restaurant `json:"-"`
}

func (RestaurantPizza) TableName() string {
	return "restaurant_pizzas"
}

// RestaurantPizzaInput is the request body accepted when creating an offering.
// Pointer fields distinguish a missing key from a zero value.
type RestaurantPizzaInput struct {
	Price        *int `json:"price" validate:"required,min=1,max=30"`
	PizzaID      *int `json:"pizza_id" validate:"required"`
	RestaurantID *int `json:"restaurant_id" validate:"required"`
}

// RestaurantPizzaResponse is the JSON shape of an offering nested in a restaurant
type RestaurantPizzaResponse struct {
	ID           int           `json:"id"`
	Price        int           `json:"price"`
	PizzaID      int           `json:"pizza_id"`
	RestaurantID int           `json:"restaurant_id"`
	Pizza        PizzaResponse `json:"pizza"`
}

// CreatedRestaurantPizzaResponse is the JSON shape returned after creating an offering
type CreatedRestaurantPizzaResponse struct {
	ID           int                `json:"id"`
	Price        int                `json:"price"`
	PizzaID      int                `json:"pizza_id"`
	RestaurantID int                `json:"restaurant_id"`
	Pizza        PizzaResponse      `json:"pizza"`
	Restaurant   RestaurantResponse `json:"restaurant"`
}

// ToResponse converts the offering into its nested shape. Pizza must be loaded.
func (rp RestaurantPizza) ToResponse() RestaurantPizzaResponse {
	return RestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.ToResponse(),
	}
}

// ToCreatedResponse converts the offering into the creation shape. Pizza and Restaurant must be loaded.
func (rp RestaurantPizza) ToCreatedResponse() CreatedRestaurantPizzaResponse {
	return CreatedRestaurantPizzaResponse{
		ID:           rp.ID,
		Price:        rp.Price,
		PizzaID:      rp.PizzaID,
		RestaurantID: rp.RestaurantID,
		Pizza:        rp.Pizza.ToResponse(),
		Restaurant:   rp.Restaurant.ToResponse(),
	}
}
