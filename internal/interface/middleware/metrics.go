package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/food-cooking-server/pkg/helpers"
)

// Metrics counts requests and final response statuses.
func Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()
		helpers.RequestsTotal.Add(1)
		helpers.ResponsesByStatus.Add(strconv.Itoa(c.Writer.Status()), 1)
	}
}
