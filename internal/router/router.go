package router

import (
	_ "github.com/franciscosanchezn/restaurant-pizza-api/docs" // Import generated docs
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/controllers"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/metrics"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/middleware"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Controllers groups the handlers served by the router
type Controllers struct {
	Home            controllers.HomeController
	Restaurant      controllers.RestaurantController
	Pizza           controllers.PizzaController
	RestaurantPizza controllers.RestaurantPizzaController
}

// NewControllers wires services and controllers over a single store handle
func NewControllers(db *gorm.DB) Controllers {
	return Controllers{
		Home:            controllers.NewHomeController(db),
		Restaurant:      controllers.NewRestaurantController(services.NewRestaurantService(db)),
		Pizza:           controllers.NewPizzaController(services.NewPizzaService(db)),
		RestaurantPizza: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	}
}

// SetupRouter initializes the Gin router with middleware and routes
func SetupRouter(c Controllers, m *metrics.Metrics, logger *logrus.Logger) *gin.Engine {
	router := gin.New()
	// Recovery stays innermost so logger and metrics see the 500 of a panic
	router.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Metrics(m),
		gin.Recovery(),
	)

	setupRoutes(router, c, m)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine, c Controllers, m *metrics.Metrics) {
	router.GET("/", c.Home.Index)

	router.GET("/restaurants", c.Restaurant.GetAllRestaurants)
	router.GET("/restaurants/:id", c.Restaurant.GetRestaurantByID)
	router.DELETE("/restaurants/:id", c.Restaurant.DeleteRestaurant)

	router.GET("/pizzas", c.Pizza.GetAllPizzas)

	router.POST("/restaurant_pizzas", c.RestaurantPizza.CreateRestaurantPizza)

	// Operational endpoints
	router.GET("/health", c.Home.Health)
	router.GET("/metrics", gin.WrapH(m.Handler()))
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
