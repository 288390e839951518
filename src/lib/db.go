package lib

import (
	"context"
	stderrors "errors"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Collection names
const (
	UsersCollection         = "users"
	PostsCollection         = "posts"
	CommentsCollection      = "comments"
	ExperiencesCollection   = "experiences"
	ConnectionsCollection   = "connections"
	NotificationsCollection = "notifications"
)

var (
	ErrNotFound = stderrors.New("document not found")
	ErrConflict = stderrors.New("document changed concurrently")
)

var DB *mongo.Database

// ConnectDB connects to MongoDB, pings it and sets the global DB handle
func ConnectDB(ctx context.Context, url, database string) (*mongo.Client, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	clientOpts := options.Client().
		ApplyURI(url).
		SetMaxPoolSize(100).
		SetMaxConnIdleTime(30 * time.Second)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, errors.Wrap(err, "connect to MongoDB")
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, errors.Wrap(err, "ping MongoDB")
	}

	DB = client.Database(database)
	Log.Info().Str("database", database).Msg("Connected to MongoDB!")
	return client, nil
}

// EnsureIndexes creates the indexes the repositories rely on.
// connections.pair is unique: a pair of users has at most one relationship document.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	indexes := map[string][]mongo.IndexModel{
		ConnectionsCollection: {
			{Keys: bson.D{{Key: "pair", Value: 1}}, Options: options.Index().SetUnique(true)},
			{Keys: bson.D{{Key: "sender", Value: 1}, {Key: "status", Value: 1}}},
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "status", Value: 1}}},
		},
		CommentsCollection: {
			{Keys: bson.D{{Key: "post", Value: 1}}},
		},
		ExperiencesCollection: {
			{Keys: bson.D{{Key: "user", Value: 1}}},
		},
		NotificationsCollection: {
			{Keys: bson.D{{Key: "recipient", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}

	for collection, models := range indexes {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return errors.Wrapf(err, "create indexes on %s", collection)
		}
	}
	return nil
}

// IsDuplicateKey reports whether err is a unique index violation
func IsDuplicateKey(err error) bool {
	return mongo.IsDuplicateKeyError(err)
}

// Transactor runs fn as one unit of work.
// Atomic reports whether a failure inside fn rolls back every write fn made.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Atomic() bool
}

type MongoTransactor struct {
	client  *mongo.Client
	enabled bool
}

// NewTransactor returns a transactor; multi-document transactions need a replica set,
// so they are opt-in through MONGO_TRANSACTIONS.
func NewTransactor(client *mongo.Client, enabled bool) *MongoTransactor {
	return &MongoTransactor{client: client, enabled: enabled}
}

func (t *MongoTransactor) Atomic() bool {
	return t.enabled
}

func (t *MongoTransactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !t.enabled {
		return fn(ctx)
	}

	session, err := t.client.StartSession()
	if err != nil {
		return errors.Wrap(err, "start mongo session")
	}
	defer session.EndSession(context.Background())

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}
