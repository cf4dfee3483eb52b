package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepository)(nil)

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(coll *mongo.Collection) *UserRepository {
	return &UserRepository{coll: coll}
}

// userDocument decodes only what authorization needs. _id and role are left
// untyped: clients may have supplied their own, and a non-string role simply
// is not a role.
type userDocument struct {
	ID    interface{} `bson:"_id"`
	Email string      `bson:"email"`
	Role  interface{} `bson:"role"`
}

func (r *UserRepository) List(ctx context.Context) ([]entity.Document, error) {
	docs, err := findAll(ctx, r.coll, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return docs, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var doc userDocument
	err := r.coll.FindOne(ctx, bson.M{entity.UserEmailField: email}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	role, _ := doc.Role.(string)
	return &entity.User{ID: idString(doc.ID), Email: doc.Email, Role: entity.Role(role)}, nil
}

func (r *UserRepository) Insert(ctx context.Context, doc entity.Document) (entity.InsertResult, error) {
	res, err := r.coll.InsertOne(ctx, doc)
	if mongo.IsDuplicateKeyError(err) {
		return entity.InsertResult{}, repository.ErrDuplicate
	}
	if err != nil {
		return entity.InsertResult{}, fmt.Errorf("insert user: %w", err)
	}
	return insertAck(res), nil
}

func (r *UserRepository) SetRole(ctx context.Context, id string, role entity.Role) (entity.UpdateResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return entity.UpdateResult{}, err
	}
	res, err := r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{entity.UserRoleField: string(role)}},
	)
	if err != nil {
		return entity.UpdateResult{}, fmt.Errorf("set user role: %w", err)
	}
	return updateAck(res), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (entity.DeleteResult, error) {
	return deleteByID(ctx, r.coll, id)
}
