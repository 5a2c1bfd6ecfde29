package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantPizzaController handles HTTP requests related to restaurant pizza offerings
type RestaurantPizzaController interface {
	// CreateRestaurantPizza creates a new offering
	CreateRestaurantPizza(c *gin.Context)
}

type restaurantPizzaController struct {
	service services.RestaurantPizzaService
}

// NewRestaurantPizzaController creates a new instance of RestaurantPizzaController
func NewRestaurantPizzaController(service services.RestaurantPizzaService) RestaurantPizzaController {
	return &restaurantPizzaController{service: service}
}

// CreateRestaurantPizza godoc
// @Summary Create a restaurant pizza
// @Description Offer an existing pizza at an existing restaurant for a price between 1 and 30
// @Tags restaurant_pizzas
// @Accept json
// @Produce json
// @Param restaurant_pizza body models.RestaurantPizzaInput true "Offering"
// @Success 201 {object} models.CreatedRestaurantPizzaResponse
// @Failure 400 {object} models.ValidationErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurant_pizzas [post]
func (c *restaurantPizzaController) CreateRestaurantPizza(ctx *gin.Context) {
	var input models.RestaurantPizzaInput
	if err := ctx.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Debug("Rejected restaurant pizza with unreadable body")
		ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
		return
	}

	created, err := c.service.CreateRestaurantPizza(input)
	if err != nil {
		var validationErr *models.ValidationError
		if errors.As(err, &validationErr) {
			log.WithField("violations", validationErr.Violations).Debug("Rejected restaurant pizza")
			ctx.JSON(http.StatusBadRequest, models.NewValidationErrorResponse())
			return
		}
		log.WithError(err).Error("Failed to create restaurant pizza")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to create restaurant pizza"))
		return
	}
	ctx.JSON(http.StatusCreated, created.ToCreatedResponse())
}
