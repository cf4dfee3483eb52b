package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepository)(nil)

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(coll *mongo.Collection) *CartRepository {
	return &CartRepository{coll: coll}
}

func (r *CartRepository) ListByEmail(ctx context.Context, email string) ([]entity.Document, error) {
	docs, err := findAll(ctx, r.coll, bson.M{entity.CartEmailField: email})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	return docs, nil
}

func (r *CartRepository) Insert(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entity.InsertResult{}, repository.ErrDuplicate
	}
	if err != nil {
		return entity.InsertResult{}, fmt.Errorf("insert cart item: %w", err)
	}
	return insertAck(res), nil
}

func (r *CartRepository) Delete(ctx context.Context, id string) (entity.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
