package repository

import (
	"context"
	"time"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ProductRepository interface {
	Create(ctx context.Context, p models.Product) (models.Product, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	GetBySlug(ctx context.Context, categoryID primitive.ObjectID, slug string) (models.Product, error)
	GetBySlugAny(ctx context.Context, slug string) (models.Product, error)
	List(ctx context.Context) ([]models.Product, error)
	ListByCategory(ctx context.Context, categoryID primitive.ObjectID, activeOnly bool) ([]models.Product, error)
	ListBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID, activeOnly bool) ([]models.Product, error)
	NameExists(ctx context.Context, categoryID primitive.ObjectID, subCategoryID *primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error)
	CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error)
	CountBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID) (int64, error)
	Update(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (models.Product, error)
	ReassignNavbar(ctx context.Context, categoryID, navbarID primitive.ObjectID) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.Product, error)
}

type MongoProductRepository struct {
	DB *mongo.Database
}

func NewProductRepository(db *mongo.Database) ProductRepository {
	return &MongoProductRepository{DB: db}
}

func (r *MongoProductRepository) collection() *mongo.Collection {
	return r.DB.Collection("products")
}

func (r *MongoProductRepository) Create(ctx context.Context, p models.Product) (models.Product, error) {
	res, err := r.collection().InsertOne(ctx, p)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.Product{}, ErrDuplicateSlug
		}
		return models.Product{}, err
	}
	p.ID = res.InsertedID.(primitive.ObjectID)
	return p, nil
}

func (r *MongoProductRepository) GetByID(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := r.collection().FindOne(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) GetBySlug(ctx context.Context, categoryID primitive.ObjectID, slug string) (models.Product, error) {
	var p models.Product
	err := r.collection().FindOne(ctx, bson.M{"categoryId": categoryID, "slug": slug}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) GetBySlugAny(ctx context.Context, slug string) (models.Product, error) {
	var p models.Product
	err := r.collection().FindOne(ctx, bson.M{"slug": slug}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}

func (r *MongoProductRepository) List(ctx context.Context) ([]models.Product, error) {
	return r.find(ctx, bson.M{})
}

// ListByCategory returns every product filed under the category,
// including those scoped to one of its subcategories: the filter is on
// categoryId alone so category pages show descendant products too.
func (r *MongoProductRepository) ListByCategory(ctx context.Context, categoryID primitive.ObjectID, activeOnly bool) ([]models.Product, error) {
	filter := bson.M{"categoryId": categoryID}
	if activeOnly {
		filter["isActive"] = true
	}
	return r.find(ctx, filter)
}

func (r *MongoProductRepository) ListBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID, activeOnly bool) ([]models.Product, error) {
	filter := bson.M{"subCategoryId": subCategoryID}
	if activeOnly {
		filter["isActive"] = true
	}
	return r.find(ctx, filter)
}

func (r *MongoProductRepository) find(ctx context.Context, filter bson.M) ([]models.Product, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection().Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Product{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// NameExists checks the (category, subcategory) scope: a nil
// subCategoryID matches only products filed directly under the category.
func (r *MongoProductRepository) NameExists(ctx context.Context, categoryID primitive.ObjectID, subCategoryID *primitive.ObjectID, name string, excludeID primitive.ObjectID) (bool, error) {
	filter := bson.M{"categoryId": categoryID, "name": caseInsensitiveExact(name)}
	if subCategoryID != nil {
		filter["subCategoryId"] = *subCategoryID
	} else {
		filter["subCategoryId"] = bson.M{"$exists": false}
	}
	if !excludeID.IsZero() {
		filter["_id"] = bson.M{"$ne": excludeID}
	}
	count, err := r.collection().CountDocuments(ctx, filter)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *MongoProductRepository) CountByCategory(ctx context.Context, categoryID primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"categoryId": categoryID})
}

func (r *MongoProductRepository) CountBySubCategory(ctx context.Context, subCategoryID primitive.ObjectID) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"subCategoryId": subCategoryID})
}

// Update applies a partial update. unset clears fields (used when a
// product is moved out of its subcategory); pass nil when unused.
func (r *MongoProductRepository) Update(ctx context.Context, id primitive.ObjectID, set bson.M, unset bson.M) (models.Product, error) {
	update := bson.M{"$set": set}
	if len(unset) > 0 {
		update["$unset"] = unset
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var p models.Product
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrNotFound
		}
		if mongo.IsDuplicateKeyError(err) {
			return models.Product{}, ErrDuplicateSlug
		}
		return models.Product{}, err
	}
	return p, nil
}

// ReassignNavbar rewrites the denormalized navbarCategoryId of every
// product filed under the category. Called when the category itself
// moves to another navbar so child products stay consistent.
func (r *MongoProductRepository) ReassignNavbar(ctx context.Context, categoryID, navbarID primitive.ObjectID) (int64, error) {
	res, err := r.collection().UpdateMany(ctx,
		bson.M{"categoryId": categoryID},
		bson.M{"$set": bson.M{"navbarCategoryId": navbarID, "updatedAt": time.Now()}},
	)
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoProductRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.Product, error) {
	var p models.Product
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&p)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Product{}, ErrNotFound
		}
		return models.Product{}, err
	}
	return p, nil
}
