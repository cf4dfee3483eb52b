package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/food-cooking-server/internal/application"
	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
	"github.com/oksasatya/food-cooking-server/pkg/helpers"
	"github.com/oksasatya/food-cooking-server/pkg/response"
	"github.com/oksasatya/food-cooking-server/pkg/validation"
)

// writeError maps application and repository errors to HTTP responses.
// Anything unrecognised is a persistence failure: logged, never echoed.
func writeError(c *gin.Context, logger *logrus.Logger, err error) {
	switch {
	case errors.Is(err, application.ErrForbidden):
		helpers.Forbidden.Add(1)
		response.Abort(c, http.StatusForbidden, "forbidden access", nil)
	case errors.Is(err, repository.ErrInvalidID):
		response.Abort(c, http.StatusBadRequest, "invalid id", nil)
	case errors.Is(err, repository.ErrDuplicate):
		response.Abort(c, http.StatusConflict, "document already exists", nil)
	case errors.Is(err, helpers.ErrInvalidClaims):
		response.Abort(c, http.StatusBadRequest, "invalid claims", nil)
	case errors.Is(err, application.ErrEmailRequired), errors.Is(err, helpers.ErrMissingEmail):
		response.Abort(c, http.StatusBadRequest, "email is required", nil)
	default:
		helpers.LogError(logger, "request failed", err, helpers.RequestFields(c))
		response.Abort(c, http.StatusInternalServerError, "internal server error", nil)
	}
}

type idParam struct {
	ID string `uri:"id" binding:"required,objectid"`
}

// bindID validates the :id path segment before any persistence call.
func bindID(c *gin.Context) (string, bool) {
	var p idParam
	if err := c.ShouldBindUri(&p); err != nil {
		response.Abort(c, http.StatusBadRequest, "invalid id", validation.ToDetails(err))
		return "", false
	}
	return p.ID, true
}

// bindDocument decodes a JSON object body. Arrays, scalars and null are rejected.
func bindDocument(c *gin.Context) (entity.Document, bool) {
	var doc entity.Document
	if err := c.ShouldBindJSON(&doc); err != nil {
		response.Abort(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return nil, false
	}
	if doc == nil {
		response.Abort(c, http.StatusBadRequest, "invalid payload", map[string]string{"payload": "body must be a JSON object"})
		return nil, false
	}
	return doc, true
}
