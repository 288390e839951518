package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Name      string             `json:"name" bson:"name"`
	Surname   string             `json:"surname" bson:"surname"`
	Email     string             `json:"email" bson:"email"`
	Bio       string             `json:"bio" bson:"bio"`
	Title     string             `json:"title" bson:"title"`
	Area      string             `json:"area" bson:"area"`
	Image     string             `json:"image,omitempty" bson:"image,omitempty"`
	Address   *Address           `json:"address,omitempty" bson:"address,omitempty"`
	Website   string             `json:"website,omitempty" bson:"website,omitempty"`
	Phone     string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Skills    []string           `json:"skills,omitempty" bson:"skills,omitempty"`
	Education []Education        `json:"education,omitempty" bson:"education,omitempty"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}

type Address struct {
	Street  string `json:"street,omitempty" bson:"street,omitempty"`
	City    string `json:"city,omitempty" bson:"city,omitempty"`
	State   string `json:"state,omitempty" bson:"state,omitempty"`
	Zip     string `json:"zip,omitempty" bson:"zip,omitempty"`
	Country string `json:"country,omitempty" bson:"country,omitempty"`
}

type Education struct {
	School string `json:"school" bson:"school"`
	Degree string `json:"degree" bson:"degree"`
	From   int    `json:"from" bson:"from"`
	To     int    `json:"to,omitempty" bson:"to,omitempty"`
}

// UserDto is the populated view of a referenced user
type UserDto struct {
	ID      primitive.ObjectID `json:"_id" bson:"_id"`
	Name    string             `json:"name" bson:"name"`
	Surname string             `json:"surname" bson:"surname"`
	Email   string             `json:"email" bson:"email"`
	Title   string             `json:"title" bson:"title"`
	Area    string             `json:"area" bson:"area"`
	Image   string             `json:"image,omitempty" bson:"image,omitempty"`
}

// UserDtoProjection selects the fields of UserDto when populating references
var UserDtoProjection = map[string]int{
	"name":    1,
	"surname": 1,
	"email":   1,
	"title":   1,
	"area":    1,
	"image":   1,
}

func (u User) Dto() UserDto {
	return UserDto{
		ID:      u.Id,
		Name:    u.Name,
		Surname: u.Surname,
		Email:   u.Email,
		Title:   u.Title,
		Area:    u.Area,
		Image:   u.Image,
	}
}
