package application

import (
	"context"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	repo "github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

type CatalogService struct {
	Repo repo.CatalogRepository
}

func NewCatalogService(repo repo.CatalogRepository) *CatalogService {
	return &CatalogService{Repo: repo}
}

func (s *CatalogService) Menu(ctx context.Context) ([]entity.Document, error) {
	return s.Repo.ListMenu(ctx)
}

func (s *CatalogService) Reviews(ctx context.Context) ([]entity.Document, error) {
	return s.Repo.ListReviews(ctx)
}
