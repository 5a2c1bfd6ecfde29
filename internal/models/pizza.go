package models

// Pizza represents a pizza that restaurants can offer
type Pizza struct {
	ID          int    `gorm:"primaryKey" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Ingredients string `json:"ingredients"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

// PizzaResponse is the JSON shape of a pizza
type PizzaResponse struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Ingredients string `json:"ingredients"`
}

// ToResponse converts the pizza into its JSON shape
func (p Pizza) ToResponse() PizzaResponse {
	return PizzaResponse{
		ID:          p.ID,
		Name:        p.Name,
		Ingredients: p.Ingredients,
	}
}
