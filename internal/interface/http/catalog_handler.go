package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/internal/application"
	"github.com/oksasatya/food-cooking-server/pkg/response"
)

type CatalogHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewCatalogHandler(svc *application.CatalogService, logger *logrus.Logger) *CatalogHandler {
	return &CatalogHandler{Svc: svc, Logger: logger}
}

func (h *CatalogHandler) Menu(c *gin.Context) {
	menu, err := h.Svc.Menu(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, menu)
}

func (h *CatalogHandler) Reviews(c *gin.Context) {
	reviews, err := h.Svc.Reviews(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.JSON(c, http.StatusOK, reviews)
}
