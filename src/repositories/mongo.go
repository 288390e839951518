package repositories

import (
	"context"
	"time"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"
)

// findPage runs the count and the page query concurrently
func findPage[T any](ctx context.Context, coll *mongo.Collection, q *query.Query) ([]T, int64, error) {
	var (
		items []T
		total int64
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		n, err := coll.CountDocuments(gctx, q.Criteria)
		if err != nil {
			return errors.Wrapf(err, "count %s", coll.Name())
		}
		total = n
		return nil
	})
	g.Go(func() error {
		cursor, err := coll.Find(gctx, q.Criteria, q.FindOptions())
		if err != nil {
			return errors.Wrapf(err, "find %s", coll.Name())
		}
		defer cursor.Close(gctx)

		items = make([]T, 0, q.Limit)
		return errors.Wrapf(cursor.All(gctx, &items), "decode %s", coll.Name())
	})

	if err := g.Wait(); err != nil {
		return nil, 0, err
	}
	return items, total, nil
}

func findAll[T any](ctx context.Context, coll *mongo.Collection, filter any, opts ...*options.FindOptions) ([]T, error) {
	cursor, err := coll.Find(ctx, filter, opts...)
	if err != nil {
		return nil, errors.Wrapf(err, "find %s", coll.Name())
	}
	defer cursor.Close(ctx)

	items := []T{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, errors.Wrapf(err, "decode %s", coll.Name())
	}
	return items, nil
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter any) (T, error) {
	var doc T
	err := coll.FindOne(ctx, filter).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, lib.ErrNotFound
	}
	return doc, errors.Wrapf(err, "find one %s", coll.Name())
}

// updateOne applies $set and returns the document after the update
func updateOne[T any](ctx context.Context, coll *mongo.Collection, filter any, set bson.M) (T, error) {
	var doc T
	if _, ok := set["updatedAt"]; !ok {
		set["updatedAt"] = time.Now().UTC()
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return doc, lib.ErrNotFound
	}
	return doc, errors.Wrapf(err, "update %s", coll.Name())
}

func deleteOne(ctx context.Context, coll *mongo.Collection, filter any) error {
	result, err := coll.DeleteOne(ctx, filter)
	if err != nil {
		return errors.Wrapf(err, "delete %s", coll.Name())
	}
	if result.DeletedCount == 0 {
		return lib.ErrNotFound
	}
	return nil
}
