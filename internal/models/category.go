package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Category belongs to exactly one NavbarCategory. Name and slug are
// unique within that navbar category, name case-insensitively.
type Category struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name             string             `json:"name" bson:"name" validate:"required"`
	Slug             string             `json:"slug" bson:"slug"`
	Description      string             `json:"description,omitempty" bson:"description"`
	Image            string             `json:"image,omitempty" bson:"image"`
	Order            int                `json:"order" bson:"order"`
	NavbarCategoryID primitive.ObjectID `json:"navbarCategoryId" bson:"navbarCategoryId" validate:"required"`
	IsActive         bool               `json:"isActive" bson:"isActive"`
	CreatedAt        time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt" bson:"updatedAt"`

	// Populated on reads that already resolved the parent.
	NavbarCategory *Ref `json:"navbarCategory,omitempty" bson:"-"`
}

type UpdateCategoryInput struct {
	Name             *string             `json:"name"`
	Description      *string             `json:"description"`
	Image            *string             `json:"image"`
	Order            *int                `json:"order"`
	NavbarCategoryID *primitive.ObjectID `json:"navbarCategoryId"`
	IsActive         *bool               `json:"isActive"`
}
