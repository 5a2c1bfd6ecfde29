package controllers

import (
	"errors"
	"net/http"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/franciscosanchezn/restaurant-pizza-api/internal/services"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

// RestaurantController handles HTTP requests related to restaurants
type RestaurantController interface {
	// GetAllRestaurants retrieves all restaurants
	GetAllRestaurants(c *gin.Context)
	// GetRestaurantByID retrieves a restaurant and its pizzas
	GetRestaurantByID(c *gin.Context)
	// DeleteRestaurant deletes a restaurant and its pizza offerings
	DeleteRestaurant(c *gin.Context)
}

type restaurantController struct {
	service services.RestaurantService
}

// NewRestaurantController creates a new instance of RestaurantController
func NewRestaurantController(service services.RestaurantService) RestaurantController {
	return &restaurantController{service: service}
}

// GetAllRestaurants godoc
// @Summary Get all restaurants
// @Description Get a list of all restaurants without their pizzas
// @Tags restaurants
// @Produce json
// @Success 200 {array} models.RestaurantResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants [get]
func (c *restaurantController) GetAllRestaurants(ctx *gin.Context) {
	restaurants, err := c.service.GetAllRestaurants()
	if err != nil {
		log.WithError(err).Error("Failed to retrieve restaurants")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurants"))
		return
	}

	response := make([]models.RestaurantResponse, 0, len(restaurants))
	for _, restaurant := range restaurants {
		response = append(response, restaurant.ToResponse())
	}
	ctx.JSON(http.StatusOK, response)
}

// GetRestaurantByID godoc
// @Summary Get restaurant by ID
// @Description Get a single restaurant with the pizzas it offers
// @Tags restaurants
// @Produce json
// @Param id path int true "Restaurant ID"
// @Success 200 {object} models.RestaurantDetailResponse
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [get]
func (c *restaurantController) GetRestaurantByID(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	restaurant, err := c.service.GetRestaurantByID(id)
	if err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
			return
		}
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to retrieve restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to retrieve restaurant"))
		return
	}
	ctx.JSON(http.StatusOK, restaurant.ToDetailResponse())
}

// DeleteRestaurant godoc
// @Summary Delete a restaurant
// @Description Delete a restaurant and every pizza offering that references it
// @Tags restaurants
// @Param id path int true "Restaurant ID"
// @Success 204
// @Failure 404 {object} models.ErrorResponse
// @Failure 500 {object} models.ErrorResponse
// @Router /restaurants/{id} [delete]
func (c *restaurantController) DeleteRestaurant(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
		return
	}

	if err := c.service.DeleteRestaurant(id); err != nil {
		if errors.Is(err, models.ErrRestaurantNotFound) {
			ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
			return
		}
		log.WithError(err).WithField("restaurant_id", id).Error("Failed to delete restaurant")
		ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse("Failed to delete restaurant"))
		return
	}
	ctx.Status(http.StatusNoContent)
}
