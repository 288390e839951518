package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Recipient   primitive.ObjectID `json:"recipient" bson:"recipient"`
	Type        NotificationType   `json:"type" bson:"type"`
	RelatedUser primitive.ObjectID `json:"relatedUser,omitempty" bson:"relatedUser,omitempty"`
	RelatedPost primitive.ObjectID `json:"relatedPost,omitempty" bson:"relatedPost,omitempty"`
	Read        bool               `json:"read" bson:"read"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type NotificationType string

const (
	NotificationTypeLike               NotificationType = "like"
	NotificationTypeComment            NotificationType = "comment"
	NotificationTypeConnectionAccepted NotificationType = "connectionAccepted"
)

func NewNotification(recipient primitive.ObjectID, kind NotificationType, relatedUser, relatedPost primitive.ObjectID) Notification {
	now := time.Now().UTC()
	return Notification{
		Id:          primitive.NewObjectID(),
		Recipient:   recipient,
		Type:        kind,
		RelatedUser: relatedUser,
		RelatedPost: relatedPost,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type NotificationDto struct {
	ID          primitive.ObjectID `json:"_id"`
	Type        NotificationType   `json:"type"`
	RelatedUser *UserDto           `json:"relatedUser,omitempty"`
	RelatedPost primitive.ObjectID `json:"relatedPost,omitempty"`
	Read        bool               `json:"read"`
	CreatedAt   time.Time          `json:"createdAt"`
}
