package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	NotificationTypeContactEnquiry = "contact-enquiry"
	NotificationTypeProductEnquiry = "product-enquiry"
	NotificationTypeSystem         = "system"
)

// Notification is an admin-facing event record, created automatically
// when a public enquiry arrives or manually through the admin API.
type Notification struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Type      string              `json:"type" bson:"type" validate:"required"`
	Title     string              `json:"title" bson:"title" validate:"required"`
	Message   string              `json:"message" bson:"message" validate:"required"`
	Icon      string              `json:"icon,omitempty" bson:"icon"`
	Link      string              `json:"link,omitempty" bson:"link"`
	RelatedID *primitive.ObjectID `json:"relatedId,omitempty" bson:"relatedId,omitempty"`
	Read      bool                `json:"read" bson:"read"`
	CreatedAt time.Time           `json:"createdAt" bson:"createdAt"`
}
