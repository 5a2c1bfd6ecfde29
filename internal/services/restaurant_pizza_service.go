package services

import (
	"errors"
	"reflect"
	"strings"

	"github.com/franciscosanchezn/restaurant-pizza-api/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantPizzaService provides methods to create restaurant pizza offerings
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the input and persists a new offering.
	// It returns *models.ValidationError listing every failed check when the input is rejected.
	CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error)
}

type restaurantPizzaService struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	validate := validator.New()
	// Report fields by their JSON key
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return &restaurantPizzaService{db: db, validate: validate}
}

func (s *restaurantPizzaService) CreateRestaurantPizza(input models.RestaurantPizzaInput) (models.RestaurantPizza, error) {
	var created models.RestaurantPizza

	err := s.db.Transaction(func(tx *gorm.DB) error {
		violations := s.validateInput(input)

		var pizza models.Pizza
		if input.PizzaID != nil {
			p, err := findPizza(tx, *input.PizzaID)
			switch {
			case errors.Is(err, models.ErrPizzaNotFound):
				violations = append(violations, models.Violation{Field: "pizza_id", Message: "pizza does not exist"})
			case err != nil:
				return err
			default:
				pizza = p
			}
		}

		var restaurant models.Restaurant
		if input.RestaurantID != nil {
			r, err := findRestaurant(tx, *input.RestaurantID)
			switch {
			case errors.Is(err, models.ErrRestaurantNotFound):
				violations = append(violations, models.Violation{Field: "restaurant_id", Message: "restaurant does not exist"})
			case err != nil:
				return err
			default:
				restaurant = r
			}
		}

		if len(violations) > 0 {
			return &models.ValidationError{Violations: violations}
		}

		created = models.RestaurantPizza{
			Price:        *input.Price,
			PizzaID:      pizza.ID,
			RestaurantID: restaurant.ID,
		}
		if err := tx.Omit("Pizza", "Restaurant").Create(&created).Error; err != nil {
			return err
		}
		created.Pizza = pizza
		created.Restaurant = restaurant
		return nil
	})
	if err != nil {
		return models.RestaurantPizza{}, err
	}

	logrus.WithFields(logrus.Fields{
		"restaurant_pizza_id": created.ID,
		"restaurant_id":       created.RestaurantID,
		"pizza_id":            created.PizzaID,
		"price":               created.Price,
	}).Info("Restaurant pizza created")
	return created, nil
}

// validateInput runs the struct tag rules and converts failures into violations
func (s *restaurantPizzaService) validateInput(input models.RestaurantPizzaInput) []models.Violation {
	err := s.validate.Struct(input)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []models.Violation{{Field: "body", Message: err.Error()}}
	}

	violations := make([]models.Violation, 0, len(validationErrors))
	for _, fe := range validationErrors {
		violations = append(violations, models.Violation{Field: fe.Field(), Message: violationMessage(fe)})
	}
	return violations
}

func violationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must not exceed " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
