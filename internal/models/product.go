package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is the leaf of the catalog hierarchy. It always belongs to a
// Category and may additionally be filed under one of that category's
// SubCategories. NavbarCategoryID is denormalized from the category
// chain for cheap menu-scoped queries; the update path recomputes it
// whenever the category changes.
type Product struct {
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	Name        string   `json:"name" bson:"name" validate:"required"`
	Slug        string   `json:"slug" bson:"slug"`
	Description string   `json:"description,omitempty" bson:"description"`
	KeyFeatures []string `json:"keyFeatures" bson:"keyFeatures"`

	// Media. Image1 is the primary image and is required.
	Image1 string `json:"image1" bson:"image1" validate:"required"`
	Image2 string `json:"image2,omitempty" bson:"image2,omitempty"`
	Image3 string `json:"image3,omitempty" bson:"image3,omitempty"`
	Image4 string `json:"image4,omitempty" bson:"image4,omitempty"`

	CategoryID       primitive.ObjectID  `json:"categoryId" bson:"categoryId" validate:"required"`
	SubCategoryID    *primitive.ObjectID `json:"subCategoryId,omitempty" bson:"subCategoryId,omitempty"`
	NavbarCategoryID primitive.ObjectID  `json:"navbarCategoryId" bson:"navbarCategoryId"`

	IsActive  bool      `json:"isActive" bson:"isActive"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`

	Category    *Ref `json:"category,omitempty" bson:"-"`
	SubCategory *Ref `json:"subCategory,omitempty" bson:"-"`
}

type UpdateProductInput struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	KeyFeatures *[]string `json:"keyFeatures"`

	Image1 *string `json:"image1"`
	Image2 *string `json:"image2"`
	Image3 *string `json:"image3"`
	Image4 *string `json:"image4"`

	CategoryID    *primitive.ObjectID `json:"categoryId"`
	SubCategoryID *primitive.ObjectID `json:"subCategoryId"`

	IsActive *bool `json:"isActive"`
}
