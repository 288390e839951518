package repositories

import (
	"context"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoCommentStore struct {
	coll *mongo.Collection
}

func NewCommentStore(db *mongo.Database) *MongoCommentStore {
	return &MongoCommentStore{coll: db.Collection(lib.CommentsCollection)}
}

func (s *MongoCommentStore) ListByPost(ctx context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: 1}})
	return findAll[models.Comment](ctx, s.coll, bson.M{"post": postID}, opts)
}

func (s *MongoCommentStore) FindInPost(ctx context.Context, postID, id primitive.ObjectID) (models.Comment, error) {
	return findOne[models.Comment](ctx, s.coll, bson.M{"_id": id, "post": postID})
}

func (s *MongoCommentStore) Create(ctx context.Context, comment *models.Comment) error {
	if comment.Id.IsZero() {
		comment.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, comment)
	return errors.Wrap(err, "insert comment")
}

func (s *MongoCommentStore) Update(ctx context.Context, postID, id primitive.ObjectID, set bson.M) (models.Comment, error) {
	return updateOne[models.Comment](ctx, s.coll, bson.M{"_id": id, "post": postID}, set)
}

func (s *MongoCommentStore) Delete(ctx context.Context, postID, id primitive.ObjectID) error {
	return deleteOne(ctx, s.coll, bson.M{"_id": id, "post": postID})
}
