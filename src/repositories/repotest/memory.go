// Package repotest provides in-memory stores for handler and service tests.
package repotest

import (
	"context"
	"sort"
	"sync"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// table is an insertion-ordered collection of documents
type table[T any] struct {
	mu    sync.Mutex
	order []primitive.ObjectID
	docs  map[primitive.ObjectID]T
}

func newTable[T any]() *table[T] {
	return &table[T]{docs: map[primitive.ObjectID]T{}}
}

func (t *table[T]) put(id primitive.ObjectID, doc T) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; !ok {
		t.order = append(t.order, id)
	}
	t.docs[id] = doc
}

func (t *table[T]) get(id primitive.ObjectID) (T, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, ok := t.docs[id]
	return doc, ok
}

func (t *table[T]) remove(id primitive.ObjectID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.docs[id]; !ok {
		return false
	}
	delete(t.docs, id)
	for i, o := range t.order {
		if o == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

func (t *table[T]) filter(match func(T) bool) []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := []T{}
	for _, id := range t.order {
		if doc := t.docs[id]; match == nil || match(doc) {
			out = append(out, doc)
		}
	}
	return out
}

// update applies set to the first matching document
func (t *table[T]) update(id primitive.ObjectID, match func(T) bool, set bson.M) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	doc, ok := t.docs[id]
	if !ok || (match != nil && !match(doc)) {
		var zero T
		return zero, lib.ErrNotFound
	}
	updated, err := applySet(doc, set)
	if err != nil {
		return doc, err
	}
	t.docs[id] = updated
	return updated, nil
}

func (t *table[T]) snapshot() func() {
	t.mu.Lock()
	defer t.mu.Unlock()
	order := append([]primitive.ObjectID(nil), t.order...)
	docs := make(map[primitive.ObjectID]T, len(t.docs))
	for k, v := range t.docs {
		docs[k] = v
	}
	return func() {
		t.mu.Lock()
		defer t.mu.Unlock()
		t.order, t.docs = order, docs
	}
}

// applySet round-trips doc through BSON so $set keys use the bson field names
func applySet[T any](doc T, set bson.M) (T, error) {
	var out T
	raw, err := bson.Marshal(doc)
	if err != nil {
		return out, err
	}
	m := bson.M{}
	if err := bson.Unmarshal(raw, &m); err != nil {
		return out, err
	}
	for k, v := range set {
		m[k] = v
	}
	if raw, err = bson.Marshal(m); err != nil {
		return out, err
	}
	err = bson.Unmarshal(raw, &out)
	return out, err
}

func page[T any](items []T, q *query.Query) ([]T, int64) {
	total := int64(len(items))
	start := q.Skip
	if start > total {
		start = total
	}
	end := start + q.Limit
	if end > total {
		end = total
	}
	return items[start:end], total
}

// Transactor runs fn directly. With Atomic set, a failing fn restores every
// registered store to its state before the call.
type Transactor struct {
	AtomicMode bool
	// Calls counts WithTransaction invocations
	Calls  int
	stores []interface{ snapshot() func() }
	mu     sync.Mutex
}

func NewTransactor(atomic bool, stores ...interface{ snapshot() func() }) *Transactor {
	return &Transactor{AtomicMode: atomic, stores: stores}
}

func (t *Transactor) Atomic() bool {
	return t.AtomicMode
}

func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.mu.Lock()
	t.Calls++
	t.mu.Unlock()

	if !t.AtomicMode {
		return fn(ctx)
	}

	restores := make([]func(), 0, len(t.stores))
	for _, s := range t.stores {
		restores = append(restores, s.snapshot())
	}
	if err := fn(ctx); err != nil {
		for _, restore := range restores {
			restore()
		}
		return err
	}
	return nil
}

func sortByCreated[T any](items []T, created func(T) int64, desc bool) {
	sort.SliceStable(items, func(i, j int) bool {
		if desc {
			return created(items[i]) > created(items[j])
		}
		return created(items[i]) < created(items[j])
	})
}
