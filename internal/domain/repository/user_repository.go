package repository

import (
	"context"
	"errors"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
)

var (
	ErrNotFound  = errors.New("not found")
	ErrDuplicate = errors.New("duplicate key")
	ErrInvalidID = errors.New("invalid id")
)

// UserRepository defines the persistence operations on the users collection.
// Ids are the store's native identifiers in string form; a malformed id
// yields ErrInvalidID before the store is touched.
type UserRepository interface {
	List(ctx context.Context) ([]entity.Document, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Insert(ctx context.Context, doc entity.Document) (entity.InsertResult, error)
	SetRole(ctx context.Context, id string, role entity.Role) (entity.UpdateResult, error)
	Delete(ctx context.Context, id string) (entity.DeleteResult, error)
}
