package repositories

import (
	"context"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type MongoExperienceStore struct {
	coll *mongo.Collection
}

func NewExperienceStore(db *mongo.Database) *MongoExperienceStore {
	return &MongoExperienceStore{coll: db.Collection(lib.ExperiencesCollection)}
}

func (s *MongoExperienceStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Experience, error) {
	return findAll[models.Experience](ctx, s.coll, bson.M{"user": userID})
}

// EachByUser decodes one document at a time from the cursor, so a slow fn
// holds back the cursor instead of buffering the whole result.
func (s *MongoExperienceStore) EachByUser(ctx context.Context, userID primitive.ObjectID, fn func(models.Experience) error) error {
	cursor, err := s.coll.Find(ctx, bson.M{"user": userID})
	if err != nil {
		return errors.Wrap(err, "find experiences")
	}
	defer cursor.Close(ctx)

	for cursor.Next(ctx) {
		var exp models.Experience
		if err := cursor.Decode(&exp); err != nil {
			return errors.Wrap(err, "decode experience")
		}
		if err := fn(exp); err != nil {
			return err
		}
	}
	return errors.Wrap(cursor.Err(), "iterate experiences")
}

func (s *MongoExperienceStore) FindForUser(ctx context.Context, userID, id primitive.ObjectID) (models.Experience, error) {
	return findOne[models.Experience](ctx, s.coll, bson.M{"_id": id, "user": userID})
}

func (s *MongoExperienceStore) Create(ctx context.Context, exp *models.Experience) error {
	if exp.Id.IsZero() {
		exp.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, exp)
	return errors.Wrap(err, "insert experience")
}

func (s *MongoExperienceStore) Update(ctx context.Context, userID, id primitive.ObjectID, set bson.M) (models.Experience, error) {
	return updateOne[models.Experience](ctx, s.coll, bson.M{"_id": id, "user": userID}, set)
}

func (s *MongoExperienceStore) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	return deleteOne(ctx, s.coll, bson.M{"_id": id, "user": userID})
}
