package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/oksasatya/food-cooking-server/internal/interface/http"
	"github.com/oksasatya/food-cooking-server/internal/interface/middleware"
)

// UserModule wires the user routes.
// Public (rate limited): POST /users
// Verified: GET /users/admin/:email
// Verified + admin: GET /users, PATCH /users/admin/:id, DELETE /users/:id
type UserModule struct {
	Handler *handlers.UserHandler
	Guard   *middleware.Guard
	Limit   gin.HandlerFunc
}

func NewUserModule(h *handlers.UserHandler, guard *middleware.Guard, limit gin.HandlerFunc) *UserModule {
	return &UserModule{Handler: h, Guard: guard, Limit: limit}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	g := m.Guard
	rg.POST("/users", m.Limit, m.Handler.Create)
	rg.GET("/users/admin/:email", g.Authenticated(m.Handler.AdminStatus))

	rg.GET("/users", g.Authenticated(g.Admin(m.Handler.List)))
	rg.PATCH("/users/admin/:id", g.Authenticated(g.Admin(m.Handler.Promote)))
	rg.DELETE("/users/:id", g.Authenticated(g.Admin(m.Handler.Delete)))
}
