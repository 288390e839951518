package repositories

import (
	"context"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoPostStore struct {
	coll *mongo.Collection
}

func NewPostStore(db *mongo.Database) *MongoPostStore {
	return &MongoPostStore{coll: db.Collection(lib.PostsCollection)}
}

func (s *MongoPostStore) List(ctx context.Context, q *query.Query) ([]models.Post, int64, error) {
	return findPage[models.Post](ctx, s.coll, q)
}

func (s *MongoPostStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.Post, error) {
	return findOne[models.Post](ctx, s.coll, bson.M{"_id": id})
}

func (s *MongoPostStore) Create(ctx context.Context, post *models.Post) error {
	if post.Id.IsZero() {
		post.Id = primitive.NewObjectID()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	_, err := s.coll.InsertOne(ctx, post)
	return errors.Wrap(err, "insert post")
}

func (s *MongoPostStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.Post, error) {
	return updateOne[models.Post](ctx, s.coll, bson.M{"_id": id}, set)
}

func (s *MongoPostStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, s.coll, bson.M{"_id": id})
}

// ToggleLike uses an aggregation pipeline update so the membership test and the
// write happen in the same document update.
func (s *MongoPostStore) ToggleLike(ctx context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	likes := bson.M{"$ifNull": bson.A{"$likes", bson.A{}}}
	update := mongo.Pipeline{
		{{Key: "$set", Value: bson.M{
			"likes": bson.M{"$cond": bson.A{
				bson.M{"$in": bson.A{userID, likes}},
				bson.M{"$filter": bson.M{
					"input": likes,
					"cond":  bson.M{"$ne": bson.A{"$$this", userID}},
				}},
				bson.M{"$concatArrays": bson.A{likes, bson.A{userID}}},
			}},
			"updatedAt": "$$NOW",
		}}},
	}

	var post models.Post
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.coll.FindOneAndUpdate(ctx, bson.M{"_id": postID}, update, opts).Decode(&post)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return post, lib.ErrNotFound
	}
	return post, errors.Wrap(err, "toggle like")
}
