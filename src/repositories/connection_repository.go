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

type MongoConnectionStore struct {
	coll *mongo.Collection
}

func NewConnectionStore(db *mongo.Database) *MongoConnectionStore {
	return &MongoConnectionStore{coll: db.Collection(lib.ConnectionsCollection)}
}

func (s *MongoConnectionStore) FindPair(ctx context.Context, a, b primitive.ObjectID) (models.Connection, error) {
	return findOne[models.Connection](ctx, s.coll, bson.M{"pair": models.PairKey(a, b)})
}

func (s *MongoConnectionStore) Insert(ctx context.Context, conn *models.Connection) error {
	_, err := s.coll.InsertOne(ctx, conn)
	if lib.IsDuplicateKey(err) {
		return lib.ErrConflict
	}
	return errors.Wrap(err, "insert connection")
}

// casFilter matches the document only in the state it was read in
func casFilter(conn models.Connection) bson.M {
	return bson.M{
		"_id":    conn.Id,
		"sender": conn.Sender,
		"status": conn.Status,
	}
}

func (s *MongoConnectionStore) DeleteIf(ctx context.Context, conn models.Connection) error {
	result, err := s.coll.DeleteOne(ctx, casFilter(conn))
	if err != nil {
		return errors.Wrap(err, "delete connection")
	}
	if result.DeletedCount == 0 {
		return lib.ErrConflict
	}
	return nil
}

func (s *MongoConnectionStore) SetStatusIf(ctx context.Context, conn models.Connection, status models.ConnectionStatus) error {
	update := bson.M{"$set": bson.M{"status": status, "updatedAt": time.Now().UTC()}}
	result, err := s.coll.UpdateOne(ctx, casFilter(conn), update)
	if err != nil {
		return errors.Wrap(err, "update connection status")
	}
	if result.MatchedCount == 0 {
		return lib.ErrConflict
	}
	return nil
}

func (s *MongoConnectionStore) Counterparts(ctx context.Context, userID primitive.ObjectID, view ConnectionView) ([]primitive.ObjectID, error) {
	var filter bson.M
	switch view {
	case ViewSent:
		filter = bson.M{"sender": userID, "status": models.ConnectionStatusPending}
	case ViewReceived:
		filter = bson.M{"recipient": userID, "status": models.ConnectionStatusPending}
	case ViewConnected:
		filter = bson.M{
			"$or":    bson.A{bson.M{"sender": userID}, bson.M{"recipient": userID}},
			"status": models.ConnectionStatusAccepted,
		}
	default:
		return nil, errors.Errorf("unknown connection view %q", view)
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	conns, err := findAll[models.Connection](ctx, s.coll, filter, opts)
	if err != nil {
		return nil, err
	}

	ids := make([]primitive.ObjectID, 0, len(conns))
	for _, c := range conns {
		ids = append(ids, c.Other(userID))
	}
	return ids, nil
}
