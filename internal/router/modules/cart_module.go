package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/food-cooking-server/internal/interface/http"
	"github.com/oksasatya/food-cooking-server/internal/interface/middleware"
)

type CartModule struct {
	Handler *handlers.CartHandler
	Guard   *middleware.Guard
	Limit   gin.HandlerFunc
}

func NewCartModule(h *handlers.CartHandler, guard *middleware.Guard, limit gin.HandlerFunc) *CartModule {
	return &CartModule{Handler: h, Guard: guard, Limit: limit}
}

func (m *CartModule) Register(rg *gin.RouterGroup) {
	rg.GET("/carts", m.Guard.Authenticated(m.Handler.List))
	// adding and removing stay public; the limiter is the only brake
	rg.POST("/carts", m.Limit, m.Handler.Add)
	rg.DELETE("/carts/:id", m.Limit, m.Handler.Remove)
}
