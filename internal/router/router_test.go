package router

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/database"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRouter(t *testing.T) *gin.Engine {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return setupTestRouterWithLogger(t, logger)
}

func setupTestRouterWithLogger(t *testing.T, logger *logrus.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)

	db, err := database.InitDatabase(database.DatabaseConfig{Driver: "sqlite", Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	require.NoError(t, database.Seed(db))

	return SetupRouter(NewControllers(db), metrics.New(), logger)
}

func TestRoutesAreRegistered(t *testing.T) {
	router := setupTestRouter(t)

	expected := map[string]bool{
		"GET /":                   false,
		"GET /restaurants":        false,
		"GET /restaurants/:id":    false,
		"DELETE /restaurants/:id": false,
		"GET /pizzas":             false,
		"POST /restaurant_pizzas": false,
		"GET /health":             false,
		"GET /metrics":            false,
		"GET /swagger/*any":       false,
	}
	for _, route := range router.Routes() {
		key := route.Method + " " + route.Path
		if _, ok := expected[key]; ok {
			expected[key] = true
		}
	}
	for route, found := range expected {
		assert.True(t, found, "route %s is not registered", route)
	}
}

func TestSeededEndToEnd(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/restaurants", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Karen's Pizza Shack")
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = httptest.NewRecorder()
	body := strings.NewReader(`{"price": 15, "pizza_id": 2, "restaurant_id": 3}`)
	req := httptest.NewRequest(http.MethodPost, "/restaurant_pizzas", body)
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/restaurants/3", nil))
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/restaurant_pizzas",status="201"`)
	assert.Contains(t, w.Body.String(), `route="/restaurants/:id",status="204"`)
}

func TestSwaggerDocServed(t *testing.T) {
	router := setupTestRouter(t)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/restaurant_pizzas")
}

func TestRecoveryReturnsServerError(t *testing.T) {
	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetFormatter(&logrus.JSONFormatter{})

	router := setupTestRouterWithLogger(t, logger)
	router.GET("/panic", func(c *gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	assert.Contains(t, logs.String(), `"level":"error"`)
	assert.Contains(t, logs.String(), `"path":"/panic"`)
	assert.Contains(t, logs.String(), `"status":500`)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `route="/panic",status="500"`)
}
