package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Creates the unique indexes that enforce scoped slug uniqueness:
// global for navbar categories, per-navbar for categories, per-category
// for subcategories and products. Run once per database.
// Usage: go run scripts/create_indexes/main.go
func main() {
	godotenv.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	uri := os.Getenv("MONGO_URI")
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}
	dbName := os.Getenv("DB_NAME")
	if dbName == "" {
		dbName = "catalog"
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri).SetServerSelectionTimeout(30*time.Second))
	if err != nil {
		log.Fatalf("Failed to create client: %v", err)
	}
	defer client.Disconnect(ctx)

	if err := client.Ping(ctx, nil); err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}

	db := client.Database(dbName)

	indexes := []struct {
		collection string
		model      mongo.IndexModel
	}{
		{
			collection: "navbarcategories",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "slug", Value: 1}},
				Options: options.Index().SetName("idx_navbar_slug").SetUnique(true),
			},
		},
		{
			collection: "categories",
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "navbarCategoryId", Value: 1},
					{Key: "slug", Value: 1},
				},
				Options: options.Index().SetName("idx_category_scope_slug").SetUnique(true),
			},
		},
		{
			collection: "subcategories",
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "categoryId", Value: 1},
					{Key: "slug", Value: 1},
				},
				Options: options.Index().SetName("idx_subcategory_scope_slug").SetUnique(true),
			},
		},
		{
			collection: "products",
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "categoryId", Value: 1},
					{Key: "slug", Value: 1},
				},
				Options: options.Index().SetName("idx_product_scope_slug").SetUnique(true),
			},
		},
		{
			collection: "products",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "subCategoryId", Value: 1}},
				Options: options.Index().SetName("idx_product_subcategory"),
			},
		},
		{
			collection: "products",
			model: mongo.IndexModel{
				Keys: bson.D{
					{Key: "navbarCategoryId", Value: 1},
					{Key: "createdAt", Value: -1},
				},
				Options: options.Index().SetName("idx_product_navbar_date"),
			},
		},
		{
			collection: "contactenquiries",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_contact_created"),
			},
		},
		{
			collection: "productenquiries",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_product_enquiry_created"),
			},
		},
		{
			collection: "notifications",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "read", Value: 1}, {Key: "createdAt", Value: -1}},
				Options: options.Index().SetName("idx_notification_read_created"),
			},
		},
		{
			collection: "admins",
			model: mongo.IndexModel{
				Keys:    bson.D{{Key: "email", Value: 1}},
				Options: options.Index().SetName("idx_admin_email").SetUnique(true),
			},
		},
	}

	for _, idx := range indexes {
		name := *idx.model.Options.Name
		if _, err := db.Collection(idx.collection).Indexes().CreateOne(ctx, idx.model); err != nil {
			log.Printf("Failed to create %s on %s: %v", name, idx.collection, err)
		} else {
			log.Printf("Created index %s on %s", name, idx.collection)
		}
	}

	log.Println("Done")
}
