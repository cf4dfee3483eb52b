package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/food-cooking-server/internal/interface/http"
)

type HealthModule struct {
	Handler *handlers.HealthHandler
}

func NewHealthModule(h *handlers.HealthHandler) *HealthModule {
	return &HealthModule{Handler: h}
}

func (m *HealthModule) Register(rg *gin.RouterGroup) {
	rg.GET("/", m.Handler.Root)
	rg.GET("/healthz", m.Handler.Healthz)
}
