package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/domain/repository"
)

// findAll drains a cursor into documents. The result is never nil so an
// empty collection serializes as [].
func findAll(ctx context.Context, coll *mongo.Collection, filter interface{}) ([]entity.Document, error) {
	cur, err := coll.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	var raw []bson.M
	if err := cur.All(ctx, &raw); err != nil {
		return nil, err
	}
	out := make([]entity.Document, 0, len(raw))
	for _, m := range raw {
		out = append(out, entity.Document(m))
	}
	return out, nil
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	return oid, nil
}

func idString(id interface{}) string {
	switch v := id.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case string:
		return v
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func insertAck(res *mongo.InsertOneResult) entity.InsertResult {
	return entity.InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}

func updateAck(res *mongo.UpdateResult) entity.UpdateResult {
	return entity.UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func deleteAck(res *mongo.DeleteResult) entity.DeleteResult {
	return entity.DeleteResult{Acknowledged: true, DeletedCount: res.DeletedCount}
}

// deleteByID removes one document by ObjectID. A missing document is not an
// error: the acknowledgement simply reports zero deletions.
func deleteByID(ctx context.Context, coll *mongo.Collection, id string) (entity.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return entity.DeleteResult{}, err
	}
	res, err := coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return entity.DeleteResult{}, fmt.Errorf("delete from %s: %w", coll.Name(), err)
	}
	return deleteAck(res), nil
}
