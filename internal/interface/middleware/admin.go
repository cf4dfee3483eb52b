package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/oksasatya/food-cooking-server/pkg/helpers"
	"github.com/oksasatya/food-cooking-server/pkg/response"
)

// RoleChecker looks up the stored role for an email.
type RoleChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// Admin lets the request through only when the verified email owns a user
// record with the admin role. The role is re-read on every request.
func (g *Guard) Admin(next AuthedHandler) AuthedHandler {
	return func(c *gin.Context, claims *helpers.Claims) {
		ok, err := g.Roles.IsAdmin(c.Request.Context(), claims.Email)
		if err != nil {
			helpers.LogError(g.Logger, "role lookup failed", err, helpers.RequestFields(c))
			response.Abort(c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		if !ok {
			helpers.Forbidden.Add(1)
			response.Abort(c, http.StatusForbidden, "forbidden access", nil)
			return
		}
		next(c, claims)
	}
}
