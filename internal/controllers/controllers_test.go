package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testServer struct {
	db          *gorm.DB
	router      *gin.Engine
	restaurants []models.Restaurant
	pizzas      []models.Pizza
}

func setupTestServer(t *testing.T) *testServer {
	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	s := &testServer{
		db: db,
		restaurants: []models.Restaurant{
			{Name: "Karen's Pizza Shack", Address: "123 Main St"},
			{Name: "Sanjay's Pizza", Address: "456 Elm St"},
		},
		pizzas: []models.Pizza{
			{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
			{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
		},
	}
	require.NoError(t, db.Create(&s.restaurants).Error)
	require.NoError(t, db.Create(&s.pizzas).Error)

	offerings := []models.RestaurantPizza{
		{Price: 10, RestaurantID: s.restaurants[0].ID, PizzaID: s.pizzas[0].ID},
		{Price: 12, RestaurantID: s.restaurants[0].ID, PizzaID: s.pizzas[1].ID},
	}
	require.NoError(t, db.Omit("Pizza", "Restaurant").Create(&offerings).Error)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	home := NewHomeController(db)
	restaurants := NewRestaurantController(services.NewRestaurantService(db))
	pizzas := NewPizzaController(services.NewPizzaService(db))
	restaurantPizzas := NewRestaurantPizzaController(services.NewRestaurantPizzaService(db))

	router.GET("/", home.Index)
	router.GET("/health", home.Health)
	router.GET("/restaurants", restaurants.GetAllRestaurants)
	router.GET("/restaurants/:id", restaurants.GetRestaurantByID)
	router.DELETE("/restaurants/:id", restaurants.DeleteRestaurant)
	router.GET("/pizzas", pizzas.GetAllPizzas)
	router.POST("/restaurant_pizzas", restaurantPizzas.CreateRestaurantPizza)

	s.router = router
	return s
}

func (s *testServer) do(method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func (s *testServer) countOfferings(t *testing.T) int64 {
	var count int64
	require.NoError(t, s.db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	return count
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), "body: %s", w.Body.String())
	return v
}
