package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/oksasatya/food-cooking-server/config"
	"github.com/oksasatya/food-cooking-server/internal/domain/entity"
	"github.com/oksasatya/food-cooking-server/internal/infrastructure/mongodb"
)

// seedFile is Extended JSON, so ids and dates may use $oid / $date.
type seedFile struct {
	Menu    []entity.Document `bson:"menu"`
	Reviews []entity.Document `bson:"reviews"`
}

func main() {
	file := flag.String("file", "db/seed/sample.json", "extended JSON file with menu and reviews arrays")
	admin := flag.String("admin", "", "email to create or promote as admin")
	flag.Parse()

	_ = godotenv.Load()
	if err := run(config.Load(), *file, *admin); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run(cfg *config.Config, file, admin string) error {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongodb.NewClient(ctx, cfg.MongoConnectionURI(), cfg.MongoMaxPoolSize, cfg.MongoConnectTimeout)
	if err != nil {
		return fmt.Errorf("connect to mongodb: %w", err)
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	colls := mongodb.NewCollections(client, cfg.MongoDB, cfg.MongoReviewsDB)

	if file != "" {
		raw, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("read seed file: %w", err)
		}
		var data seedFile
		if err := bson.UnmarshalExtJSON(raw, false, &data); err != nil {
			return fmt.Errorf("parse seed file: %w", err)
		}
		n, err := mongodb.SeedIfEmpty(ctx, colls.Menu, data.Menu)
		if err != nil {
			return err
		}
		fmt.Printf("seeded menu: %d documents\n", n)
		n, err = mongodb.SeedIfEmpty(ctx, colls.Reviews, data.Reviews)
		if err != nil {
			return err
		}
		fmt.Printf("seeded reviews: %d documents\n", n)
	}

	if admin != "" {
		res, err := mongodb.EnsureAdmin(ctx, colls.Users, admin)
		if err != nil {
			return err
		}
		fmt.Printf("admin ensured: email=%s matched=%d upserted=%d\n", admin, res.MatchedCount, res.UpsertedCount)
	}
	return nil
}
