package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/food-cooking-server/internal/interface/http"
)

// AuthModule serves POST /jwt.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Limit   gin.HandlerFunc
}

func NewAuthModule(h *handlers.AuthHandler, limit gin.HandlerFunc) *AuthModule {
	return &AuthModule{Handler: h, Limit: limit}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	rg.POST("/jwt", m.Limit, m.Handler.Issue)
}
