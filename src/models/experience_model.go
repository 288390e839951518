package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultExperienceImage = "https://cdn-icons-png.flaticon.com/512/993/993928.png"

type Experience struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Role        string             `json:"role" bson:"role"`
	Company     string             `json:"company" bson:"company"`
	StartDate   time.Time          `json:"startDate" bson:"startDate"`
	EndDate     *time.Time         `json:"endDate" bson:"endDate,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Area        string             `json:"area" bson:"area"`
	Image       string             `json:"image" bson:"image"`
	User        primitive.ObjectID `json:"user" bson:"user"`
	CreatedAt   time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// Ongoing reports whether the experience has no end date
func (e Experience) Ongoing() bool {
	return e.EndDate == nil || e.EndDate.IsZero()
}
