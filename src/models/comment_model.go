package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Comment struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Comment   string             `json:"comment" bson:"comment"`
	User      primitive.ObjectID `json:"user" bson:"user"`
	Post      primitive.ObjectID `json:"post" bson:"post"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type CommentDto struct {
	ID        primitive.ObjectID `json:"_id"`
	Comment   string             `json:"comment"`
	User      *UserDto           `json:"user"`
	Post      primitive.ObjectID `json:"post"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
