package repository

import (
	"context"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
)

// CatalogRepository exposes the read-only menu and review collections.
type CatalogRepository interface {
	ListMenu(ctx context.Context) ([]entity.Document, error)
	ListReviews(ctx context.Context) ([]entity.Document, error)
}
