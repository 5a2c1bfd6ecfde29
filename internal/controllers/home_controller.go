package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	serviceName = "restaurant-pizza-api"
	indexPage   = "<h1>Code challenge</h1>"
)

// HomeController serves the landing page and the health check
type HomeController interface {
	// Index returns the HTML greeting
	Index(c *gin.Context)
	// Health reports whether the service and its store are reachable
	Health(c *gin.Context)
}

type homeController struct {
	db *gorm.DB
}

// NewHomeController creates a new instance of HomeController
func NewHomeController(db *gorm.DB) HomeController {
	return &homeController{db: db}
}

// Index godoc
// @Summary Landing page
// @Tags home
// @Produce html
// @Success 200 {string} string
// @Router / [get]
func (c *homeController) Index(ctx *gin.Context) {
	ctx.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// Health godoc
// @Summary Health check
// @Description Check if the service is running and the store answers
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (c *homeController) Health(ctx *gin.Context) {
	status, code := "healthy", http.StatusOK
	if err := c.ping(); err != nil {
		log.WithError(err).Error("Health check failed")
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	ctx.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   serviceName,
	})
}

func (c *homeController) ping() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

