package repotest

import (
	"context"
	"sync"
	"time"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	_ repositories.UserStore         = (*Users)(nil)
	_ repositories.PostStore         = (*Posts)(nil)
	_ repositories.CommentStore      = (*Comments)(nil)
	_ repositories.ExperienceStore   = (*Experiences)(nil)
	_ repositories.NotificationStore = (*Notifications)(nil)
	_ repositories.ConnectionStore   = (*Connections)(nil)
)

type Users struct{ t *table[models.User] }

func NewUsers(users ...models.User) *Users {
	s := &Users{t: newTable[models.User]()}
	for _, u := range users {
		_ = s.Create(context.Background(), &u)
	}
	return s
}

func (s *Users) snapshot() func() { return s.t.snapshot() }

func (s *Users) List(_ context.Context, q *query.Query) ([]models.User, int64, error) {
	items, total := page(s.t.filter(nil), q)
	return items, total, nil
}

func (s *Users) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	u, ok := s.t.get(id)
	if !ok {
		return u, lib.ErrNotFound
	}
	return u, nil
}

func (s *Users) FindDtos(_ context.Context, ids []primitive.ObjectID) ([]models.UserDto, error) {
	out := []models.UserDto{}
	for _, id := range ids {
		if u, ok := s.t.get(id); ok {
			out = append(out, u.Dto())
		}
	}
	return out, nil
}

func (s *Users) Exists(_ context.Context, id primitive.ObjectID) (bool, error) {
	_, ok := s.t.get(id)
	return ok, nil
}

func (s *Users) Create(_ context.Context, user *models.User) error {
	if user.Id.IsZero() {
		user.Id = primitive.NewObjectID()
	}
	s.t.put(user.Id, *user)
	return nil
}

func (s *Users) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.User, error) {
	return s.t.update(id, nil, set)
}

func (s *Users) Delete(_ context.Context, id primitive.ObjectID) error {
	if !s.t.remove(id) {
		return lib.ErrNotFound
	}
	return nil
}

type Posts struct{ t *table[models.Post] }

func NewPosts() *Posts { return &Posts{t: newTable[models.Post]()} }

func (s *Posts) snapshot() func() { return s.t.snapshot() }

func (s *Posts) List(_ context.Context, q *query.Query) ([]models.Post, int64, error) {
	items, total := page(s.t.filter(nil), q)
	return items, total, nil
}

func (s *Posts) FindByID(_ context.Context, id primitive.ObjectID) (models.Post, error) {
	p, ok := s.t.get(id)
	if !ok {
		return p, lib.ErrNotFound
	}
	return p, nil
}

func (s *Posts) Create(_ context.Context, post *models.Post) error {
	if post.Id.IsZero() {
		post.Id = primitive.NewObjectID()
	}
	if post.Likes == nil {
		post.Likes = []primitive.ObjectID{}
	}
	s.t.put(post.Id, *post)
	return nil
}

func (s *Posts) Update(_ context.Context, id primitive.ObjectID, set bson.M) (models.Post, error) {
	return s.t.update(id, nil, set)
}

func (s *Posts) Delete(_ context.Context, id primitive.ObjectID) error {
	if !s.t.remove(id) {
		return lib.ErrNotFound
	}
	return nil
}

func (s *Posts) ToggleLike(_ context.Context, postID, userID primitive.ObjectID) (models.Post, error) {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()

	post, ok := s.t.docs[postID]
	if !ok {
		return post, lib.ErrNotFound
	}
	likes := make([]primitive.ObjectID, 0, len(post.Likes)+1)
	for _, id := range post.Likes {
		if id != userID {
			likes = append(likes, id)
		}
	}
	if len(likes) == len(post.Likes) {
		likes = append(likes, userID)
	}
	post.Likes = likes
	post.UpdatedAt = time.Now().UTC()
	s.t.docs[postID] = post
	return post, nil
}

type Comments struct{ t *table[models.Comment] }

func NewComments() *Comments { return &Comments{t: newTable[models.Comment]()} }

func (s *Comments) snapshot() func() { return s.t.snapshot() }

func (s *Comments) ListByPost(_ context.Context, postID primitive.ObjectID) ([]models.Comment, error) {
	return s.t.filter(func(c models.Comment) bool { return c.Post == postID }), nil
}

func (s *Comments) FindInPost(_ context.Context, postID, id primitive.ObjectID) (models.Comment, error) {
	c, ok := s.t.get(id)
	if !ok || c.Post != postID {
		return models.Comment{}, lib.ErrNotFound
	}
	return c, nil
}

func (s *Comments) Create(_ context.Context, comment *models.Comment) error {
	if comment.Id.IsZero() {
		comment.Id = primitive.NewObjectID()
	}
	s.t.put(comment.Id, *comment)
	return nil
}

func (s *Comments) Update(_ context.Context, postID, id primitive.ObjectID, set bson.M) (models.Comment, error) {
	return s.t.update(id, func(c models.Comment) bool { return c.Post == postID }, set)
}

func (s *Comments) Delete(ctx context.Context, postID, id primitive.ObjectID) error {
	if _, err := s.FindInPost(ctx, postID, id); err != nil {
		return err
	}
	s.t.remove(id)
	return nil
}

type Experiences struct{ t *table[models.Experience] }

func NewExperiences() *Experiences { return &Experiences{t: newTable[models.Experience]()} }

func (s *Experiences) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Experience, error) {
	return s.t.filter(func(e models.Experience) bool { return e.User == userID }), nil
}

func (s *Experiences) EachByUser(ctx context.Context, userID primitive.ObjectID, fn func(models.Experience) error) error {
	exps, _ := s.ListByUser(ctx, userID)
	for _, e := range exps {
		if err := fn(e); err != nil {
			return err
		}
	}
	return nil
}

func (s *Experiences) FindForUser(_ context.Context, userID, id primitive.ObjectID) (models.Experience, error) {
	e, ok := s.t.get(id)
	if !ok || e.User != userID {
		return models.Experience{}, lib.ErrNotFound
	}
	return e, nil
}

func (s *Experiences) Create(_ context.Context, exp *models.Experience) error {
	if exp.Id.IsZero() {
		exp.Id = primitive.NewObjectID()
	}
	s.t.put(exp.Id, *exp)
	return nil
}

func (s *Experiences) Update(_ context.Context, userID, id primitive.ObjectID, set bson.M) (models.Experience, error) {
	return s.t.update(id, func(e models.Experience) bool { return e.User == userID }, set)
}

func (s *Experiences) Delete(ctx context.Context, userID, id primitive.ObjectID) error {
	if _, err := s.FindForUser(ctx, userID, id); err != nil {
		return err
	}
	s.t.remove(id)
	return nil
}

// Notifications fails every Create while FailCreate is set
type Notifications struct {
	t          *table[models.Notification]
	mu         sync.Mutex
	FailCreate error
}

func NewNotifications() *Notifications {
	return &Notifications{t: newTable[models.Notification]()}
}

func (s *Notifications) snapshot() func() { return s.t.snapshot() }

func (s *Notifications) SetFailCreate(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.FailCreate = err
}

func (s *Notifications) Create(_ context.Context, n *models.Notification) error {
	s.mu.Lock()
	fail := s.FailCreate
	s.mu.Unlock()
	if fail != nil {
		return errors.Wrap(fail, "insert notification")
	}
	if n.Id.IsZero() {
		n.Id = primitive.NewObjectID()
	}
	s.t.put(n.Id, *n)
	return nil
}

// All returns every stored notification in insertion order
func (s *Notifications) All() []models.Notification {
	return s.t.filter(nil)
}

func (s *Notifications) ListForUser(_ context.Context, userID primitive.ObjectID) ([]models.Notification, error) {
	items := s.t.filter(func(n models.Notification) bool { return n.Recipient == userID })
	sortByCreated(items, func(n models.Notification) int64 { return n.CreatedAt.UnixNano() }, true)
	return items, nil
}

func (s *Notifications) MarkRead(_ context.Context, userID, id primitive.ObjectID) (models.Notification, error) {
	return s.t.update(id, func(n models.Notification) bool { return n.Recipient == userID }, bson.M{
		"read":      true,
		"updatedAt": time.Now().UTC(),
	})
}

func (s *Notifications) Delete(_ context.Context, userID, id primitive.ObjectID) error {
	n, ok := s.t.get(id)
	if !ok || n.Recipient != userID {
		return lib.ErrNotFound
	}
	s.t.remove(id)
	return nil
}

// Connections enforces the unique pair key like the MongoDB index does
type Connections struct{ t *table[models.Connection] }

func NewConnections() *Connections {
	return &Connections{t: newTable[models.Connection]()}
}

func (s *Connections) snapshot() func() { return s.t.snapshot() }

// All returns every relationship document
func (s *Connections) All() []models.Connection {
	return s.t.filter(nil)
}

func (s *Connections) FindPair(_ context.Context, a, b primitive.ObjectID) (models.Connection, error) {
	key := models.PairKey(a, b)
	found := s.t.filter(func(c models.Connection) bool { return c.Pair == key })
	if len(found) == 0 {
		return models.Connection{}, lib.ErrNotFound
	}
	return found[0], nil
}

func (s *Connections) Insert(_ context.Context, conn *models.Connection) error {
	s.t.mu.Lock()
	defer s.t.mu.Unlock()
	for _, c := range s.t.docs {
		if c.Pair == conn.Pair {
			return lib.ErrConflict
		}
	}
	if conn.Id.IsZero() {
		conn.Id = primitive.NewObjectID()
	}
	s.t.docs[conn.Id] = *conn
	s.t.order = append(s.t.order, conn.Id)
	return nil
}

func matches(stored, read models.Connection) bool {
	return stored.Sender == read.Sender && stored.Status == read.Status
}

func (s *Connections) DeleteIf(_ context.Context, conn models.Connection) error {
	stored, ok := s.t.get(conn.Id)
	if !ok || !matches(stored, conn) {
		return lib.ErrConflict
	}
	s.t.remove(conn.Id)
	return nil
}

func (s *Connections) SetStatusIf(_ context.Context, conn models.Connection, status models.ConnectionStatus) error {
	_, err := s.t.update(conn.Id, func(stored models.Connection) bool { return matches(stored, conn) }, bson.M{
		"status":    status,
		"updatedAt": time.Now().UTC(),
	})
	if errors.Is(err, lib.ErrNotFound) {
		return lib.ErrConflict
	}
	return err
}

func (s *Connections) Counterparts(_ context.Context, userID primitive.ObjectID, view repositories.ConnectionView) ([]primitive.ObjectID, error) {
	var match func(models.Connection) bool
	switch view {
	case repositories.ViewSent:
		match = func(c models.Connection) bool {
			return c.Sender == userID && c.Status == models.ConnectionStatusPending
		}
	case repositories.ViewReceived:
		match = func(c models.Connection) bool {
			return c.Recipient == userID && c.Status == models.ConnectionStatusPending
		}
	case repositories.ViewConnected:
		match = func(c models.Connection) bool {
			return (c.Sender == userID || c.Recipient == userID) && c.Status == models.ConnectionStatusAccepted
		}
	default:
		return nil, errors.Errorf("unknown connection view %q", view)
	}

	ids := []primitive.ObjectID{}
	for _, c := range s.t.filter(match) {
		ids = append(ids, c.Other(userID))
	}
	return ids, nil
}
