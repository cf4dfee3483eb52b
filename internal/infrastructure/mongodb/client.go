package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names. Users, menu and carts live in the food database, reviews
// in their own database.
const (
	UsersCollection   = "user"
	MenuCollection    = "menu"
	ReviewsCollection = "review"
	CartsCollection   = "carts"
)

// NewClient connects one pooled client for the whole process and pings the
// deployment before handing it out. The caller owns Disconnect.
func NewClient(ctx context.Context, uri string, maxPoolSize uint64, connectTimeout time.Duration) (*mongo.Client, error) {
	opts := options.Client().
		ApplyURI(uri).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)).
		SetMaxPoolSize(maxPoolSize).
		SetConnectTimeout(connectTimeout)

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, err
	}
	if err := Ping(ctx, client); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, err
	}
	return client, nil
}

// Ping runs the admin ping command with a short timeout.
func Ping(ctx context.Context, client *mongo.Client) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return client.Database("admin").RunCommand(ctx, bson.D{{Key: "ping", Value: 1}}).Err()
}

// Collections groups the four collections the API works with.
type Collections struct {
	Users   *mongo.Collection
	Menu    *mongo.Collection
	Reviews *mongo.Collection
	Carts   *mongo.Collection
}

func NewCollections(client *mongo.Client, foodDB, reviewsDB string) Collections {
	food := client.Database(foodDB)
	return Collections{
		Users:   food.Collection(UsersCollection),
		Menu:    food.Collection(MenuCollection),
		Reviews: client.Database(reviewsDB).Collection(ReviewsCollection),
		Carts:   food.Collection(CartsCollection),
	}
}
