// Package repositories holds the MongoDB access for every collection.
// A missing document is reported as lib.ErrNotFound, a failed compare-and-swap
// as lib.ErrConflict.
package repositories

import (
	"context"

	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	List(ctx context.Context, q *query.Query) ([]models.User, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	// FindDtos keeps the order of ids and skips users that no longer exist
	FindDtos(ctx context.Context, ids []primitive.ObjectID) ([]models.UserDto, error)
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type PostStore interface {
	List(ctx context.Context, q *query.Query) ([]models.Post, int64, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error)
	Create(ctx context.Context, post *models.Post) error
	Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Post, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	// ToggleLike adds userID to likes, or removes it when present, in one update
	ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error)
}

type CommentStore interface {
	ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error)
	FindInPost(ctx context.Context, postID, id primitive.ObjectID) (models.Comment, error)
	Create(ctx context.Context, comment *models.Comment) error
	Update(ctx context.Context, postID, id primitive.ObjectID, set bson.M) (models.Comment, error)
	Delete(ctx context.Context, postID, id primitive.ObjectID) error
}

type ExperienceStore interface {
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Experience, error)
	// EachByUser streams the user's experiences in storage order; fn errors stop the iteration
	EachByUser(ctx context.Context, userID primitive.ObjectID, fn func(models.Experience) error) error
	FindForUser(ctx context.Context, userID, id primitive.ObjectID) (models.Experience, error)
	Create(ctx context.Context, exp *models.Experience) error
	Update(ctx context.Context, userID, id primitive.ObjectID, set bson.M) (models.Experience, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error)
	MarkRead(ctx context.Context, userID, id primitive.ObjectID) (models.Notification, error)
	Delete(ctx context.Context, userID, id primitive.ObjectID) error
}

// ConnectionView selects one side of the relationship lists of a user
type ConnectionView string

const (
	ViewSent      ConnectionView = "sent"
	ViewReceived  ConnectionView = "received"
	ViewConnected ConnectionView = "connected"
)

type ConnectionStore interface {
	FindPair(ctx context.Context, a, b primitive.ObjectID) (models.Connection, error)
	// Insert fails with lib.ErrConflict when the pair already has a document
	Insert(ctx context.Context, conn *models.Connection) error
	// DeleteIf removes conn only if it still has the sender and status that were read
	DeleteIf(ctx context.Context, conn models.Connection) error
	// SetStatusIf moves conn from its read status to status
	SetStatusIf(ctx context.Context, conn models.Connection, status models.ConnectionStatus) error
	Counterparts(ctx context.Context, userID primitive.ObjectID, view ConnectionView) ([]primitive.ObjectID, error)
}
