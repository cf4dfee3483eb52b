package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/pkg/helpers"
	"github.com/oksasatya/food-cooking-server/pkg/response"
)

const (
	CtxClaimsKey = "claims"
	CtxEmailKey  = "email"
)

// AuthedHandler runs behind the Credential Verifier and receives the verified
// claims as an argument. Guards that depend on an identity wrap an
// AuthedHandler, so they cannot be mounted without verification first.
type AuthedHandler func(c *gin.Context, claims *helpers.Claims)

// TokenVerifier decodes a bearer token into claims.
type TokenVerifier interface {
	Parse(token string) (*helpers.Claims, error)
}

// Guard builds the authentication/authorization chain for protected routes.
type Guard struct {
	Tokens TokenVerifier
	Roles  RoleChecker
	Logger *logrus.Logger
}

func NewGuard(tokens TokenVerifier, roles RoleChecker, logger *logrus.Logger) *Guard {
	return &Guard{Tokens: tokens, Roles: roles, Logger: logger}
}

// Authenticated verifies "Authorization: Bearer <token>" and hands the claims
// to next. Missing, malformed, forged and expired tokens all get the same 401.
func (g *Guard) Authenticated(next AuthedHandler) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			g.unauthorized(c, "missing authorization header")
			return
		}
		token := ""
		if t, ok := strings.CutPrefix(header, "Bearer "); ok {
			token = strings.TrimSpace(t)
		}
		claims, err := g.Tokens.Parse(token)
		if err != nil {
			g.unauthorized(c, err.Error())
			return
		}
		c.Set(CtxClaimsKey, claims)
		c.Set(CtxEmailKey, claims.Email)
		next(c, claims)
	}
}

func (g *Guard) unauthorized(c *gin.Context, reason string) {
	helpers.AuthRejected.Add(1)
	if g.Logger != nil {
		g.Logger.WithFields(helpers.RequestFields(c)).WithField("reason", reason).Debug("request rejected: unauthenticated")
	}
	response.Abort(c, http.StatusUnauthorized, "unauthorized access", nil)
}

// ClaimsFrom returns the claims stored by Authenticated, if any.
func ClaimsFrom(c *gin.Context) (*helpers.Claims, bool) {
	v, ok := c.Get(CtxClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*helpers.Claims)
	return claims, ok
}
