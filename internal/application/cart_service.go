package application

import (
	"context"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	repo "github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

type CartService struct {
	Repo repo.CartRepository
}

func NewCartService(repo repo.CartRepository) *CartService {
	return &CartService{Repo: repo}
}

// List returns the cart items owned by email on behalf of callerEmail.
// An empty email yields an empty list; any other email than the caller's
// own is ErrForbidden.
func (s *CartService) List(ctx context.Context, callerEmail, email string) ([]entity.Document, error) {
	if email == "" {
		return []entity.Document{}, nil
	}
	if email != callerEmail {
		return nil, ErrForbidden
	}
	return s.Repo.ListByEmail(ctx, email)
}

// Add stores the item exactly as received.
func (s *CartService) Add(ctx context.Context, item entity.Document) (entity.InsertResult, error) {
	return s.Repo.Insert(ctx, item)
}

func (s *CartService) Remove(ctx context.Context, id string) (entity.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}
