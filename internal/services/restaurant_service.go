package services

import (
	"errors"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with the restaurant database
type RestaurantService interface {
	// GetAllRestaurants retrieves all restaurants without their offerings
	GetAllRestaurants() ([]models.Restaurant, error)
	// GetRestaurantByID retrieves a restaurant with its offerings and their pizzas
	GetRestaurantByID(id int) (models.Restaurant, error)
	// DeleteRestaurant deletes a restaurant and every offering that references it
	DeleteRestaurant(id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

func (s *restaurantService) GetAllRestaurants() ([]models.Restaurant, error) {
	restaurants := []models.Restaurant{}
	if err := s.db.Find(&restaurants).Error; err != nil {
		return nil, err
	}
	return restaurants, nil
}

func (s *restaurantService) GetRestaurantByID(id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	err := s.db.
		Preload("RestaurantPizzas").
		Preload("RestaurantPizzas.Pizza").
		First(&restaurant, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, models.ErrRestaurantNotFound
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}

// DeleteRestaurant removes the restaurant's offerings and the restaurant in one transaction,
// so either both disappear or neither does.
func (s *restaurantService) DeleteRestaurant(id int) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		restaurant, err := findRestaurant(tx, id)
		if err != nil {
			return err
		}

		result := tx.Where("restaurant_id = ?", restaurant.ID).Delete(&models.RestaurantPizza{})
		if result.Error != nil {
			return result.Error
		}

		if err := tx.Delete(&restaurant).Error; err != nil {
			return err
		}

		logrus.WithFields(logrus.Fields{
			"restaurant_id":             restaurant.ID,
			"restaurant_pizzas_deleted": result.RowsAffected,
		}).Info("Restaurant deleted")
		return nil
	})
}

func findRestaurant(db *gorm.DB, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.First(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, models.ErrRestaurantNotFound
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}
