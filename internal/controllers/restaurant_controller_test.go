package controllers

import (
	"net/http"
	"strconv"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetAllRestaurants(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	restaurants := decode[[]map[string]interface{}](t, w)
	require.Len(t, restaurants, len(s.restaurants))
	for i, r := range restaurants {
		assert.Len(t, r, 3, "restaurant must expose exactly id, name, address")
		assert.Equal(t, float64(s.restaurants[i].ID), r["id"])
		assert.Equal(t, s.restaurants[i].Name, r["name"])
		assert.Equal(t, s.restaurants[i].Address, r["address"])
	}
}

func TestGetRestaurantByID(t *testing.T) {
	s := setupTestServer(t)
	restaurant := s.restaurants[0]

	w := s.do(http.MethodGet, "/restaurants/"+strconv.Itoa(restaurant.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[models.RestaurantDetailResponse](t, w)
	assert.Equal(t, restaurant.ID, body.ID)
	assert.Equal(t, restaurant.Name, body.Name)
	assert.Equal(t, restaurant.Address, body.Address)
	require.Len(t, body.RestaurantPizzas, 2)

	pizzas := map[int]models.Pizza{}
	for _, p := range s.pizzas {
		pizzas[p.ID] = p
	}
	for _, rp := range body.RestaurantPizzas {
		assert.NotZero(t, rp.ID)
		assert.Equal(t, restaurant.ID, rp.RestaurantID)
		assert.Equal(t, pizzas[rp.PizzaID].ToResponse(), rp.Pizza)
	}

	t.Run("repeated reads return identical bodies", func(t *testing.T) {
		again := s.do(http.MethodGet, "/restaurants/"+strconv.Itoa(restaurant.ID), nil)
		assert.Equal(t, w.Body.String(), again.Body.String())
	})
}

func TestGetRestaurantWithoutPizzas(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodGet, "/restaurants/"+strconv.Itoa(s.restaurants[1].ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	body := decode[map[string]interface{}](t, w)
	assert.Equal(t, []interface{}{}, body["restaurant_pizzas"])
}

func TestGetRestaurantNotFound(t *testing.T) {
	s := setupTestServer(t)

	for _, path := range []string{"/restaurants/999", "/restaurants/0", "/restaurants/abc"} {
		t.Run(path, func(t *testing.T) {
			w := s.do(http.MethodGet, path, nil)
			assert.Equal(t, http.StatusNotFound, w.Code)
			assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
		})
	}
}

func TestDeleteRestaurant(t *testing.T) {
	s := setupTestServer(t)
	path := "/restaurants/" + strconv.Itoa(s.restaurants[0].ID)

	w := s.do(http.MethodDelete, path, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = s.do(http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())

	assert.Zero(t, s.countOfferings(t), "offerings of the deleted restaurant must be gone")

	t.Run("deleting twice is not found", func(t *testing.T) {
		w := s.do(http.MethodDelete, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
	})
}

func TestDeleteRestaurantNotFound(t *testing.T) {
	s := setupTestServer(t)

	w := s.do(http.MethodDelete, "/restaurants/999", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error": "Restaurant not found"}`, w.Body.String())
	assert.Equal(t, int64(2), s.countOfferings(t))
}
