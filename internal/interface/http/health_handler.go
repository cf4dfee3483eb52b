package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/pkg/helpers"
	"github.com/oksasatya/food-cooking-server/pkg/response"
)

// PingFunc checks the backing store.
type PingFunc func(ctx context.Context) error

type HealthHandler struct {
	Ping   PingFunc
	Logger *logrus.Logger
}

func NewHealthHandler(ping PingFunc, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{Ping: ping, Logger: logger}
}

func (h *HealthHandler) Root(c *gin.Context) {
	c.String(http.StatusOK, "food is cooking")
}

func (h *HealthHandler) Healthz(c *gin.Context) {
	if h.Ping != nil {
		if err := h.Ping(c.Request.Context()); err != nil {
			fields := helpers.RequestFields(c)
			fields["error"] = err.Error()
			helpers.LogWarn(h.Logger, "health check failed", fields)
			response.Abort(c, http.StatusServiceUnavailable, "database unavailable", nil)
			return
		}
	}
	response.JSON(c, http.StatusOK, gin.H{"status": "ok"})
}
