package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/food-cooking-server/internal/interface/http"
)

type CatalogModule struct {
	Handler *handlers.CatalogHandler
}

func NewCatalogModule(h *handlers.CatalogHandler) *CatalogModule {
	return &CatalogModule{Handler: h}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	rg.GET("/menu", m.Handler.Menu)
	rg.GET("/reviews", m.Handler.Reviews)
}
