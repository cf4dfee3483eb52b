package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
)

// SeedIfEmpty inserts docs into coll when the collection holds no documents
// yet and reports how many were inserted.
func SeedIfEmpty(ctx context.Context, coll *mongo.Collection, docs []entity.Document) (int, error) {
	if len(docs) == 0 {
		return 0, nil
	}
	n, err := coll.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", coll.Name(), err)
	}
	if n > 0 {
		return 0, nil
	}
	batch := make([]interface{}, 0, len(docs))
	for _, d := range docs {
		batch = append(batch, d)
	}
	res, err := coll.InsertMany(ctx, batch)
	if err != nil {
		return 0, fmt.Errorf("seed %s: %w", coll.Name(), err)
	}
	return len(res.InsertedIDs), nil
}

// EnsureAdmin creates or promotes the user record for email so that it holds
// the admin role. It is the bootstrap path for the first administrator.
func EnsureAdmin(ctx context.Context, users *mongo.Collection, email string) (entity.UpdateResult, error) {
	res, err := users.UpdateOne(ctx,
		bson.M{entity.UserEmailField: email},
		bson.M{"$set": bson.M{entity.UserRoleField: string(entity.RoleAdmin)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return entity.UpdateResult{}, fmt.Errorf("ensure admin %s: %w", email, err)
	}
	return updateAck(res), nil
}
