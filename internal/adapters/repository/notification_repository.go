package repository

import (
	"context"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationRepository interface {
	Create(ctx context.Context, n models.Notification) (models.Notification, error)
	List(ctx context.Context, limit int64) ([]models.Notification, error)
	UnreadCount(ctx context.Context) (int64, error)
	MarkRead(ctx context.Context, id primitive.ObjectID) (models.Notification, error)
	MarkAllRead(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	Clear(ctx context.Context) (int64, error)
}

type MongoNotificationRepository struct {
	DB *mongo.Database
}

func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &MongoNotificationRepository{DB: db}
}

func (r *MongoNotificationRepository) collection() *mongo.Collection {
	return r.DB.Collection("notifications")
}

func (r *MongoNotificationRepository) Create(ctx context.Context, n models.Notification) (models.Notification, error) {
	res, err := r.collection().InsertOne(ctx, n)
	if err != nil {
		return models.Notification{}, err
	}
	n.ID = res.InsertedID.(primitive.ObjectID)
	return n, nil
}

func (r *MongoNotificationRepository) List(ctx context.Context, limit int64) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	if limit > 0 {
		opts.SetLimit(limit)
	}
	cursor, err := r.collection().Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.Notification{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (r *MongoNotificationRepository) UnreadCount(ctx context.Context) (int64, error) {
	return r.collection().CountDocuments(ctx, bson.M{"read": false})
}

func (r *MongoNotificationRepository) MarkRead(ctx context.Context, id primitive.ObjectID) (models.Notification, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var n models.Notification
	err := r.collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"read": true}}, opts).Decode(&n)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Notification{}, ErrNotFound
		}
		return models.Notification{}, err
	}
	return n, nil
}

func (r *MongoNotificationRepository) MarkAllRead(ctx context.Context) (int64, error) {
	res, err := r.collection().UpdateMany(ctx, bson.M{"read": false}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, err
	}
	return res.ModifiedCount, nil
}

func (r *MongoNotificationRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	res, err := r.collection().DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *MongoNotificationRepository) Clear(ctx context.Context) (int64, error) {
	res, err := r.collection().DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
