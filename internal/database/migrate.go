package database

import (
	"fmt"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema for every entity
func Migrate(db *gorm.DB) error {
	log.Info("Migrating database schema")
	if err := db.AutoMigrate(&models.Restaurant{}, &models.Pizza{}, &models.RestaurantPizza{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Seed inserts the initial restaurants, pizzas and offerings.
// It does nothing when restaurants or pizzas already exist.
func Seed(db *gorm.DB) error {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return err
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return err
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		seededRestaurants := []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "address1"},
			{Name: "Sanjay's Pizza", Address: "address2"},
			{Name: "Kiki's Pizza", Address: "address3"},
		}
		if err := tx.Create(&seededRestaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}

		seededPizzas := []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		}
		if err := tx.Create(&seededPizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}

		offerings := []models.RestaurantPizza{
			{Price: 1, RestaurantID: seededRestaurants[0].ID, PizzaID: seededPizzas[0].ID},
			{Price: 4, RestaurantID: seededRestaurants[1].ID, PizzaID: seededPizzas[1].ID},
			{Price: 5, RestaurantID: seededRestaurants[2].ID, PizzaID: seededPizzas[2].ID},
		}
		if err := tx.Omit("Pizza", "Restaurant").Create(&offerings).Error; err != nil {
			return fmt.Errorf("seed restaurant pizzas: %w", err)
		}

		log.WithFields(logrus.Fields{
			"restaurants":       len(seededRestaurants),
			"pizzas":            len(seededPizzas),
			"restaurant_pizzas": len(offerings),
		}).Info("Database seeded successfully")
		return nil
	})
}
