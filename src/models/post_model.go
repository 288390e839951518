package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DefaultPostImage = "https://cdn.pixabay.com/photo/2018/03/22/02/37/email-3249062__340.png"

type Post struct {
	Id        primitive.ObjectID   `json:"_id" bson:"_id,omitempty"`
	Text      string               `json:"text" bson:"text"`
	Image     string               `json:"image" bson:"image"`
	User      primitive.ObjectID   `json:"user" bson:"user"`
	Likes     []primitive.ObjectID `json:"likes" bson:"likes"`
	CreatedAt time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// HasLike reports whether userID is in the post's likes
func (p Post) HasLike(userID primitive.ObjectID) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}

type LikesDto struct {
	PostID primitive.ObjectID `json:"postId"`
	Count  int                `json:"count"`
	Likes  []UserDto          `json:"likes"`
}

// PostDto is a post with its author populated
type PostDto struct {
	ID        primitive.ObjectID   `json:"_id"`
	Text      string               `json:"text"`
	Image     string               `json:"image"`
	User      *UserDto             `json:"user"`
	Likes     []primitive.ObjectID `json:"likes"`
	CreatedAt time.Time            `json:"createdAt"`
	UpdatedAt time.Time            `json:"updatedAt"`
}

func (p Post) Dto(author *UserDto) PostDto {
	likes := p.Likes
	if likes == nil {
		likes = []primitive.ObjectID{}
	}
	return PostDto{
		ID:        p.Id,
		Text:      p.Text,
		Image:     p.Image,
		User:      author,
		Likes:     likes,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
