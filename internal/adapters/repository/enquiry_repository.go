package repository

import (
	"context"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ContactEnquiryRepository interface {
	Create(ctx context.Context, e models.ContactEnquiry) (models.ContactEnquiry, error)
	List(ctx context.Context) ([]models.ContactEnquiry, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.EnquiryStatus) (models.ContactEnquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.ContactEnquiry, error)
}

type ProductEnquiryRepository interface {
	Create(ctx context.Context, e models.ProductEnquiry) (models.ProductEnquiry, error)
	List(ctx context.Context) ([]models.ProductEnquiry, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.EnquiryStatus) (models.ProductEnquiry, error)
	Delete(ctx context.Context, id primitive.ObjectID) (models.ProductEnquiry, error)
}

type MongoContactEnquiryRepository struct {
	DB *mongo.Database
}

func NewContactEnquiryRepository(db *mongo.Database) ContactEnquiryRepository {
	return &MongoContactEnquiryRepository{DB: db}
}

func (r *MongoContactEnquiryRepository) collection() *mongo.Collection {
	return r.DB.Collection("contactenquiries")
}

func (r *MongoContactEnquiryRepository) Create(ctx context.Context, e models.ContactEnquiry) (models.ContactEnquiry, error) {
	res, err := r.collection().InsertOne(ctx, e)
	if err != nil {
		return models.ContactEnquiry{}, err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return e, nil
}

func (r *MongoContactEnquiryRepository) List(ctx context.Context) ([]models.ContactEnquiry, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.ContactEnquiry{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoContactEnquiryRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.EnquiryStatus) (models.ContactEnquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var e models.ContactEnquiry
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.ContactEnquiry{}, ErrNotFound
		}
		return models.ContactEnquiry{}, err
	}
	return e, nil
}

func (r *MongoContactEnquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.ContactEnquiry, error) {
	var e models.ContactEnquiry
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.ContactEnquiry{}, ErrNotFound
		}
		return models.ContactEnquiry{}, err
	}
	return e, nil
}

type MongoProductEnquiryRepository struct {
	DB *mongo.Database
}

func NewProductEnquiryRepository(db *mongo.Database) ProductEnquiryRepository {
	return &MongoProductEnquiryRepository{DB: db}
}

func (r *MongoProductEnquiryRepository) collection() *mongo.Collection {
	return r.DB.Collection("productenquiries")
}

func (r *MongoProductEnquiryRepository) Create(ctx context.Context, e models.ProductEnquiry) (models.ProductEnquiry, error) {
	res, err := r.collection().InsertOne(ctx, e)
	if err != nil {
		return models.ProductEnquiry{}, err
	}
	e.ID = res.InsertedID.(primitive.ObjectID)
	return e, nil
}

func (r *MongoProductEnquiryRepository) List(ctx context.Context) ([]models.ProductEnquiry, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.ProductEnquiry{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoProductEnquiryRepository) UpdateStatus(ctx context.Context, id primitive.ObjectID, status models.EnquiryStatus) (models.ProductEnquiry, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var e models.ProductEnquiry
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}}, opts).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.ProductEnquiry{}, ErrNotFound
		}
		return models.ProductEnquiry{}, err
	}
	return e, nil
}

func (r *MongoProductEnquiryRepository) Delete(ctx context.Context, id primitive.ObjectID) (models.ProductEnquiry, error) {
	var e models.ProductEnquiry
	err := r.collection().FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(&e)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.ProductEnquiry{}, ErrNotFound
		}
		return models.ProductEnquiry{}, err
	}
	return e, nil
}
