package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/internal/application"
	"github.com/oksasatya/food-cooking-server/pkg/helpers"
	"github.com/oksasatya/food-cooking-server/pkg/response"
	"github.com/oksasatya/food-cooking-server/pkg/validation"
)

type UserHandler struct {
	Svc    *application.UserService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.UserService, logger *logrus.Logger) *UserHandler {
	validation.Init()
	return &UserHandler{Svc: svc, Logger: logger}
}

type adminStatusResponse struct {
	Admin bool `json:"admin"`
}

// List is admin only.
func (h *UserHandler) List(c *gin.Context, _ *helpers.Claims) {
	users, err := h.Svc.List(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, users)
}

// Create registers a user on first sign-in. Repeated sign-ins with the same
// email answer "user already exists" with 200.
func (h *UserHandler) Create(c *gin.Context) {
	doc, ok := bindDocument(c)
	if !ok {
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), doc)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	if !res.Created {
		response.Message(c, "user already exists")
		return
	}
	response.JSON(c, http.StatusOK, res.Insert)
}

func (h *UserHandler) AdminStatus(c *gin.Context, claims *helpers.Claims) {
	admin, err := h.Svc.AdminStatus(c.Request.Context(), claims.Email, c.Param("email"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, adminStatusResponse{Admin: admin})
}

func (h *UserHandler) Promote(c *gin.Context, claims *helpers.Claims) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	res, err := h.Svc.Promote(c.Request.Context(), id, claims.Email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *UserHandler) Delete(c *gin.Context, claims *helpers.Claims) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	res, err := h.Svc.Delete(c.Request.Context(), id, claims.Email)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}
