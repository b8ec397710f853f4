package repository

import (
	"context"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepository interface {
	Create(ctx context.Context, cat models.Category) (models.Category, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	GetBySlug(ctx context.Context, navbarID primitive.ObjectID, slug string) (models.Category, error)
	GetBySlugAny(ctx context.Context, slug string) (models.Category, error)
	List(ctx context.Context) ([]models.Category, error)
	ListByNavbar(ctx context.Context, navbarID primitive.ObjectID, activeOnly bool) ([]models.Category, error)
	NameExists(ctx context.Context, navbarID primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error)
	CountByNavbar(ctx context.Context, navbarID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.Category, error)
}

type MongoCategoryRepository struct {
	DB *mongo.Database
}

func NewCategoryRepository(db *mongo.Database) CategoryRepository {
	return &MongoCategoryRepository{DB: db}
}

func (r *MongoCategoryRepository) collection() *mongo.Collection {
	return r.DB.Collection("categories")
}

func (r *MongoCategoryRepository) Create(ctx context.Context, cat models.Category) (models.Category, error) {
	res, err := r.collection().InsertOne(ctx, cat)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Category{}, ErrDuplicateSlug
		}
		return models.Category{}, err
	}
	cat.ID = res.InsertedID.(primitive.ObjectID)
	return cat, nil
}

func (r *MongoCategoryRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var cat models.Category
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, err
	}
	return cat, nil
}

// GetBySlug resolves a slug within its navbar-category scope.
func (r *MongoCategoryRepository) GetBySlug(ctx context.Context, navbarID primitive.ObjectID, slug string) (models.Category, error) {
	var cat models.Category
	err := r.collection().FindOne(ctx, bson.M{"navbarCategoryId": navbarID, "slug": slug}).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, err
	}
	return cat, nil
}

// GetBySlugAny resolves a slug with no navbar scope, for public URLs
// that carry only the category slug. Slugs are unique per navbar, so a
// cross-navbar collision resolves to an arbitrary match.
func (r *MongoCategoryRepository) GetBySlugAny(ctx context.Context, slug string) (models.Category, error) {
	var cat models.Category
	err := r.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, err
	}
	return cat, nil
}

func (r *MongoCategoryRepository) List(ctx context.Context) ([]models.Category, error) {
	return r.find(ctx, bson.M{})
}

func (r *MongoCategoryRepository) ListByNavbar(ctx context.Context, navbarID primitive.ObjectID, activeOnly bool) ([]models.Category, error) {
	filter := bson.M{"navbarCategoryId": navbarID}
	if activeOnly {
		filter["isActive"] = true
	}
	return r.find(ctx, filter)
}

func (r *MongoCategoryRepository) find(ctx context.Context, filter bson.M) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "order", Value: 1}, {Key: "name", Value: 1}})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Category{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoCategoryRepository) NameExists(ctx context.Context, navbarID primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"navbarCategoryId": navbarID, "name": caseInsensitiveExact(name)}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoCategoryRepository) CountByNavbar(ctx context.Context, navbarID primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"navbarCategoryId": navbarID})
}

func (r *MongoCategoryRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Category, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var cat models.Category
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set}, opts).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Category{}, ErrDuplicateSlug
		}
		return models.Category{}, err
	}
	return cat, nil
}

func (r *MongoCategoryRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var cat models.Category
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&cat)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Category{}, ErrNotFound
		}
		return models.Category{}, err
	}
	return cat, nil
}
