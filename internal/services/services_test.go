package services

import (
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixtures struct {
	restaurants []models.Restaurant
	pizzas      []models.Pizza
	offerings   []models.RestaurantPizza
}

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	return db
}

// seedFixtures creates two restaurants and three pizzas.
// The first restaurant offers two pizzas, the second offers none.
func seedFixtures(t *testing.T, db *gorm.DB) fixtures {
	f := fixtures{
		restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "123 Main St"},
			{Name: "Sanjay's Pizza", Address: "456 Elm St"},
		},
		pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
			{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
		},
	}
	require.NoError(t, db.Create(&f.restaurants).Error)
	require.NoError(t, db.Create(&f.pizzas).Error)

	f.offerings = []models.RestaurantPizza{
		{Price: 10, RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[0].ID},
		{Price: 12, RestaurantID: f.restaurants[0].ID, PizzaID: f.pizzas[1].ID},
	}
	require.NoError(t, db.Omit("Pizza", "Restaurant").Create(&f.offerings).Error)
	return f
}

func countOfferings(t *testing.T, db *gorm.DB) int64 {
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func hasViolation(err *models.ValidationError, field string) bool {
	for _, v := range err.Violations {
		if v.Field == field {
			return true
		}
	}
	return false
}

func intPtr(v int) *int {
	return &v
}
