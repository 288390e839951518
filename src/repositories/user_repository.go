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

type MongoUserStore struct {
	coll *mongo.Collection
}

func NewUserStore(db *mongo.Database) *MongoUserStore {
	return &MongoUserStore{coll: db.Collection(lib.UsersCollection)}
}

func (s *MongoUserStore) List(ctx context.Context, q *query.Query) ([]models.User, int64, error) {
	return findPage[models.User](ctx, s.coll, q)
}

func (s *MongoUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return findOne[models.User](ctx, s.coll, bson.M{"_id": id})
}

func (s *MongoUserStore) FindDtos(ctx context.Context, ids []primitive.ObjectID) ([]models.UserDto, error) {
	if len(ids) == 0 {
		return []models.UserDto{}, nil
	}

	opts := options.Find().SetProjection(models.UserDtoProjection)
	found, err := findAll[models.UserDto](ctx, s.coll, bson.M{"_id": bson.M{"$in": ids}}, opts)
	if err != nil {
		return nil, err
	}

	byID := make(map[primitive.ObjectID]models.UserDto, len(found))
	for _, u := range found {
		byID[u.ID] = u
	}

	users := make([]models.UserDto, 0, len(ids))
	for _, id := range ids {
		if u, ok := byID[id]; ok {
			users = append(users, u)
		}
	}
	return users, nil
}

func (s *MongoUserStore) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	n, err := s.coll.CountDocuments(ctx, bson.M{"_id": id}, options.Count().SetLimit(1))
	if err != nil {
		return false, errors.Wrap(err, "count users")
	}
	return n > 0, nil
}

func (s *MongoUserStore) Create(ctx context.Context, user *models.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	_, err := s.coll.InsertOne(ctx, user)
	return errors.Wrap(err, "insert user")
}

func (s *MongoUserStore) Update(ctx context.Context, id primitive.ObjectID, set bson.M) (models.User, error) {
	return updateOne[models.User](ctx, s.coll, bson.M{"_id": id}, set)
}

func (s *MongoUserStore) Delete(ctx context.Context, id primitive.ObjectID) error {
	return deleteOne(ctx, s.coll, bson.M{"_id": id})
}
