package repository

import (
	"context"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
)

type CartRepository interface {
	ListByEmail(ctx context.Context, email string) ([]entity.Document, error)
	Insert(ctx context.Context, doc entity.Document) (entity.InsertResult, error)
	Delete(ctx context.Context, id string) (entity.DeleteResult, error)
}
