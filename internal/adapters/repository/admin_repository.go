package repository

import (
	"context"

	"github.com/regiondist/catalog-backend/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type AdminRepository interface {
	GetByEmail(ctx context.Context, email string) (models.Admin, error)
}

type MongoAdminRepository struct {
	DB *mongo.Database
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &MongoAdminRepository{DB: db}
}

func (r *MongoAdminRepository) GetByEmail(ctx context.Context, email string) (models.Admin, error) {
	var admin models.Admin
	err := r.DB.Collection("admins").FindOne(ctx, bson.M{"email": email}).Decode(&admin)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return models.Admin{}, ErrNotFound
		}
		return models.Admin{}, err
	}
	return admin, nil
}
