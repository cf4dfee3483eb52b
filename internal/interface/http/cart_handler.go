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

type CartHandler struct {
	Svc    *application.CartService
	Logger *logrus.Logger
}

func NewCartHandler(svc *application.CartService, logger *logrus.Logger) *CartHandler {
	validation.Init()
	return &CartHandler{Svc: svc, Logger: logger}
}

// List answers GET /carts?email=. Callers only ever see their own items.
func (h *CartHandler) List(c *gin.Context, claims *helpers.Claims) {
	items, err := h.Svc.List(c.Request.Context(), claims.Email, c.Query("email"))
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, items)
}

func (h *CartHandler) Add(c *gin.Context) {
	item, ok := bindDocument(c)
	if !ok {
		return
	}
	res, err := h.Svc.Add(c.Request.Context(), item)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}

func (h *CartHandler) Remove(c *gin.Context) {
	id, ok := bindID(c)
	if !ok {
		return
	}
	res, err := h.Svc.Remove(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, res)
}
