package controllers

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parseIDParam reads a positive integer path parameter
func parseIDParam(ctx *gin.Context, name string) (int, bool) {
	raw, exists := ctx.Params.Get(name)
	if !exists {
		return 0, false
	}
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
