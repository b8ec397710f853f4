package repository

import (
	"context"
	"regexp"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NavbarCategoryRepository interface {
	Create(ctx context.Context, nc models.NavbarCategory) (models.NavbarCategory, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.NavbarCategory, error)
	GetBySlug(ctx context.Context, slug string) (models.NavbarCategory, error)
	List(ctx context.Context, activeOnly bool) ([]models.NavbarCategory, error)
	NameExists(ctx context.Context, name string, excludeID primitive.ObjectID) (bool, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.NavbarCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.NavbarCategory, error)
}

type MongoNavbarCategoryRepository struct {
	DB *mongo.Database
}

func NewNavbarCategoryRepository(db *mongo.Database) NavbarCategoryRepository {
	return &MongoNavbarCategoryRepository{DB: db}
}

func (r *MongoNavbarCategoryRepository) collection() *mongo.Collection {
	return r.DB.Collection("navbarcategories")
}

func (r *MongoNavbarCategoryRepository) Create(ctx context.Context, nc models.NavbarCategory) (models.NavbarCategory, error) {
	res, err := r.collection().InsertOne(ctx, nc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.NavbarCategory{}, ErrDuplicateSlug
		}
		return models.NavbarCategory{}, err
	}
	nc.ID = res.InsertedID.(primitive.ObjectID)
	return nc, nil
}

func (r *MongoNavbarCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.NavbarCategory, error) {
	var nc models.NavbarCategory
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&nc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NavbarCategory{}, ErrNotFound
		}
		return models.NavbarCategory{}, err
	}
	return nc, nil
}

func (r *MongoNavbarCategoryRepository) GetBySlug(ctx context.Context, slug string) (models.NavbarCategory, error) {
	var nc models.NavbarCategory
	err := r.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&nc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NavbarCategory{}, ErrNotFound
		}
		return models.NavbarCategory{}, err
	}
	return nc, nil
}

func (r *MongoNavbarCategoryRepository) List(ctx context.Context, activeOnly bool) ([]models.NavbarCategory, error) {
	filter := bson.M{}
	if activeOnly {
		filter["isActive"] = true
	}
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.NavbarCategory{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NameExists checks case-insensitive name uniqueness. excludeID skips
// the entity itself on rename checks; pass primitive.NilObjectID on create.
func (r *MongoNavbarCategoryRepository) NameExists(ctx context.Context, name string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"name": caseInsensitiveExact(name)}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoNavbarCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.NavbarCategory, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var nc models.NavbarCategory
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&nc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NavbarCategory{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.NavbarCategory{}, ErrDuplicateSlug
		}
		return models.NavbarCategory{}, err
	}
	return nc, nil
}

func (r *MongoNavbarCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.NavbarCategory, error) {
	var nc models.NavbarCategory
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&nc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.NavbarCategory{}, ErrNotFound
		}
		return models.NavbarCategory{}, err
	}
	return nc, nil
}

// caseInsensitiveExact builds an anchored case-insensitive match for a
// display name. The name is quoted so user input cannot inject regex.
func caseInsensitiveExact(name string) bson.M {
	return bson.M{"$regex": "^" + regexp.QuoteMeta(name) + "$", "$options": "i"}
}
