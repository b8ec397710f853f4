package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SubCategory belongs to exactly one Category. Name and slug are unique
// within that category.
type SubCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description"`
	Image       string             `json:"image,omitempty" bson:"image"`
	Order       int                `json:"order" bson:"order"`
	CategoryID  primitive.ObjectID `json:"categoryId" bson:"categoryId" validate:"required"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`

	Category *Ref `json:"category,omitempty" bson:"-"`
}

type UpdateSubCategoryInput struct {
	Name        *string             `json:"name"`
	Description *string             `json:"description"`
	Image       *string             `json:"image"`
	Order       *int                `json:"order"`
	CategoryID  *primitive.ObjectID `json:"categoryId"`
	IsActive    *bool               `json:"isActive"`
}
