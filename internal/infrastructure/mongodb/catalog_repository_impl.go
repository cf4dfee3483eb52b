package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

var _ repository.CatalogRepository = (*CatalogRepository)(nil)

type CatalogRepository struct {
	menu    *mongo.Collection
	reviews *mongo.Collection
}

func NewCatalogRepository(menu, reviews *mongo.Collection) *CatalogRepository {
	return &CatalogRepository{menu: menu, reviews: reviews}
}

func (r *CatalogRepository) ListMenu(ctx context.Context) ([]entity.Document, error) {
	docs, err := findAll(ctx, r.menu, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list menu: %w", err)
	}
	return docs, nil
}

func (r *CatalogRepository) ListReviews(ctx context.Context) ([]entity.Document, error) {
	docs, err := findAll(ctx, r.reviews, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return docs, nil
}
