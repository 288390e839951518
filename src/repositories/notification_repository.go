package repositories

import (
	"context"
	"time"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoNotificationStore struct {
	coll *mongo.Collection
}

func NewNotificationStore(db *mongo.Database) *MongoNotificationStore {
	return &MongoNotificationStore{coll: db.Collection(lib.NotificationsCollection)}
}

func (s *MongoNotificationStore) Create(ctx context.Context, n *models.Notification) error {
	if n.Id.IsZero() {
		n.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, n)
	return errors.Wrap(err, "insert notification")
}

func (s *MongoNotificationStore) ListForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	return findAll[models.Notification](ctx, s.coll, bson.M{"recipient": userID}, opts)
}

func (s *MongoNotificationStore) MarkRead(ctx context.Context, userID, id primitive.ObjectID) (models.Notification, error) {
	set := bson.M{"read": true, "updatedAt": time.Now().UTC()}
	return updateOne[models.Notification](ctx, s.coll, bson.M{"_id": id, "recipient": userID}, set)
}

func (s *MongoNotificationStore) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return deleteOne(ctx, s.coll, bson.M{"_id": id, "recipient": userID})
}
