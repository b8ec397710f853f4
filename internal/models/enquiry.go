package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EnquiryStatus string

const (
	EnquiryStatusPending   EnquiryStatus = "pending"
	EnquiryStatusContacted EnquiryStatus = "contacted"
	EnquiryStatusResolved  EnquiryStatus = "resolved"
)

// ValidEnquiryStatus reports whether s is one of the three admin-visible
// lead states. Transitions are admin-driven only.
func ValidEnquiryStatus(s EnquiryStatus) bool {
	switch s {
	case EnquiryStatusPending, EnquiryStatusContacted, EnquiryStatusResolved:
		return true
	}
	return false
}

// ContactEnquiry is a lead submitted through the public contact form.
type ContactEnquiry struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name      string             `json:"name" bson:"name"`
	Email     string             `json:"email" bson:"email"`
	Message   string             `json:"message" bson:"message"`
	Status    EnquiryStatus      `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// ProductEnquiry is a lead submitted from a product page.
type ProductEnquiry struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `json:"name" bson:"name"`
	Email       string             `json:"email" bson:"email"`
	Mobile      string             `json:"mobile" bson:"mobile"`
	ProductName string             `json:"productName" bson:"productName"`
	Description string             `json:"description,omitempty" bson:"description"`
	Status      EnquiryStatus      `json:"status" bson:"status"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
}
