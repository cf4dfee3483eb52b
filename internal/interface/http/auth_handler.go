package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/pkg/helpers"
	"github.com/oksasatya/food-cooking-server/pkg/response"
)

type AuthHandler struct {
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthHandler(jwt *helpers.JWTManager, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{JWT: jwt, Logger: logger}
}

type tokenResponse struct {
	Token string `json:"token"`
}

// Issue signs whatever identity object the client posts. Only the email is
// trusted later, and only for ownership and role lookups.
func (h *AuthHandler) Issue(c *gin.Context) {
	identity, ok := bindDocument(c)
	if !ok {
		return
	}
	token, _, err := h.JWT.Issue(identity)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, tokenResponse{Token: token})
}
