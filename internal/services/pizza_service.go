package services

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza database
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas() ([]models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas() ([]models.Pizza, error) {
	pizzas := []models.Pizza{}
	if err := s.db.Find(&pizzas).Error; err != nil {
		return nil, err
	}
	return pizzas, nil
}

// findPizza looks a pizza up inside the caller's transaction
func findPizza(db *gorm.DB, id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.First(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, models.ErrPizzaNotFound
		}
		return models.Pizza{}, err
	}
	return pizza, nil
}
