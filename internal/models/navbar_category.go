package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ref is a lightweight parent summary embedded in populated responses.
type Ref struct {
	ID   primitive.ObjectID `json:"id" bson:"_id"`
	Name string             `json:"name" bson:"name"`
	Slug string             `json:"slug" bson:"slug"`
}

// NavbarCategory is a top-level menu entry. Its slug is globally unique.
type NavbarCategory struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name" validate:"required"`
	Slug        string             `json:"slug" bson:"slug"`
	Description string             `json:"description,omitempty" bson:"description"`
	Order       int                `json:"order" bson:"order"`
	IsActive    bool               `json:"isActive" bson:"isActive"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// UpdateNavbarCategoryInput carries a partial update. Nil fields are
// left untouched.
type UpdateNavbarCategoryInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Order       *int    `json:"order"`
	IsActive    *bool   `json:"isActive"`
}
