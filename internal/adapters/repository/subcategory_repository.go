package repository

import (
	"context"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type SubCategoryRepository interface {
	Create(ctx context.Context, sc models.SubCategory) (models.SubCategory, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.SubCategory, error)
	GetBySlug(ctx context.Context, categoryID primitive.ObjectID, slug string) (models.SubCategory, error)
	GetBySlugAny(ctx context.Context, slug string) (models.SubCategory, error)
	List(ctx context.Context) ([]models.SubCategory, error)
	ListByCategory(ctx context.Context, categoryID primitive.ObjectID, activeOnly bool) ([]models.SubCategory, error)
	NameExists(ctx context.Context, categoryID primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.SubCategory, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.SubCategory, error)
}

type MongoSubCategoryRepository struct {
	DB *mongo.Database
}

func NewSubCategoryRepository(db *mongo.Database) SubCategoryRepository {
	return &MongoSubCategoryRepository{DB: db}
}

func (r *MongoSubCategoryRepository) collection() *mongo.Collection {
	return r.DB.Collection("subcategories")
}

func (r *MongoSubCategoryRepository) Create(ctx context.Context, sc models.SubCategory) (models.SubCategory, error) {
	res, err := r.collection().InsertOne(ctx, sc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.SubCategory{}, ErrDuplicateSlug
		}
		return models.SubCategory{}, err
	}
	sc.ID = res.InsertedID.(primitive.ObjectID)
	return sc, nil
}

func (r *MongoSubCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.SubCategory, error) {
	var sc models.SubCategory
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&sc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.SubCategory{}, ErrNotFound
		}
		return models.SubCategory{}, err
	}
	return sc, nil
}

func (r *MongoSubCategoryRepository) GetBySlug(ctx context.Context, categoryID primitive.ObjectID, slug string) (models.SubCategory, error) {
	var sc models.SubCategory
	err := r.collection().FindOne(ctx, bson.M{"categoryId": categoryID, "slug": slug}).Decode(&sc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.SubCategory{}, ErrNotFound
		}
		return models.SubCategory{}, err
	}
	return sc, nil
}

func (r *MongoSubCategoryRepository) GetBySlugAny(ctx context.Context, slug string) (models.SubCategory, error) {
	var sc models.SubCategory
	err := r.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&sc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.SubCategory{}, ErrNotFound
		}
		return models.SubCategory{}, err
	}
	return sc, nil
}

func (r *MongoSubCategoryRepository) List(ctx context.Context) ([]models.SubCategory, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoSubCategoryRepository) ListByCategory(ctx context.Context, categoryID primitive.ObjectID, activeOnly bool) ([]models.SubCategory, error) {
	filter := bson.M{"categoryId": categoryID}
	if activeOnly {
		filter["isActive"] = true
	}
	return r.find(ctx, filter)
}

func (r *MongoSubCategoryRepository) find(ctx context.Context, filter bson.M) ([]models.SubCategory, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.SubCategory{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoSubCategoryRepository) NameExists(ctx context.Context, categoryID primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"categoryId": categoryID, "name": caseInsensitiveExact(name)}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoSubCategoryRepository) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"categoryId": categoryID})
}

func (r *MongoSubCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.SubCategory, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var sc models.SubCategory
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&sc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.SubCategory{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.SubCategory{}, ErrDuplicateSlug
		}
		return models.SubCategory{}, err
	}
	return sc, nil
}

func (r *MongoSubCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.SubCategory, error) {
	var sc models.SubCategory
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&sc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.SubCategory{}, ErrNotFound
		}
		return models.SubCategory{}, err
	}
	return sc, nil
}
