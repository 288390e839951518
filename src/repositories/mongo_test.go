package repositories

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/query"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// testDB connects to MONGO_URL and returns a fresh database with the
// application indexes, dropped when the test ends.
func testDB(t *testing.T) *mongo.Database {
	t.Helper()
	url := os.Getenv("MONGO_URL")
	if url == "" {
		t.Skip("MONGO_URL not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := lib.ConnectDB(ctx, url, "linkedin_test_"+primitive.NewObjectID().Hex())
	require.NoError(t, err)
	db := lib.DB
	require.NoError(t, lib.EnsureIndexes(ctx, db))

	t.Cleanup(func() {
		_ = db.Drop(context.Background())
		_ = client.Disconnect(context.Background())
	})
	return db
}

func TestMongoPostStore_ToggleLike(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	posts := NewPostStore(db)
	ada, alan := primitive.NewObjectID(), primitive.NewObjectID()

	post := models.Post{Text: "Hello", User: ada, CreatedAt: time.Now().UTC()}
	require.NoError(t, posts.Create(ctx, &post))

	liked, err := posts.ToggleLike(ctx, post.Id, alan)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{alan}, liked.Likes)

	liked, err = posts.ToggleLike(ctx, post.Id, ada)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{alan, ada}, liked.Likes)

	unliked, err := posts.ToggleLike(ctx, post.Id, alan)
	require.NoError(t, err)
	assert.Equal(t, []primitive.ObjectID{ada}, unliked.Likes)

	unliked, err = posts.ToggleLike(ctx, post.Id, ada)
	require.NoError(t, err)
	assert.Empty(t, unliked.Likes)

	stored, err := posts.FindByID(ctx, post.Id)
	require.NoError(t, err)
	assert.Empty(t, stored.Likes)

	_, err = posts.ToggleLike(ctx, primitive.NewObjectID(), alan)
	assert.True(t, errors.Is(err, lib.ErrNotFound))
}

func TestMongoConnectionStore_UniquePair(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	connections := NewConnectionStore(db)
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	first := models.NewConnectionRequest(a, b)
	require.NoError(t, connections.Insert(ctx, &first))

	// the reverse direction is the same pair
	reverse := models.NewConnectionRequest(b, a)
	err := connections.Insert(ctx, &reverse)
	assert.True(t, errors.Is(err, lib.ErrConflict), "got %v", err)

	stored, err := connections.FindPair(ctx, b, a)
	require.NoError(t, err)
	assert.Equal(t, first.Id, stored.Id)
	assert.Equal(t, a, stored.Sender)
}

func TestMongoConnectionStore_CompareAndSwap(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	connections := NewConnectionStore(db)
	a, b := primitive.NewObjectID(), primitive.NewObjectID()

	conn := models.NewConnectionRequest(a, b)
	require.NoError(t, connections.Insert(ctx, &conn))
	stale := conn

	require.NoError(t, connections.SetStatusIf(ctx, conn, models.ConnectionStatusAccepted))

	// stale still says pending
	err := connections.SetStatusIf(ctx, stale, models.ConnectionStatusAccepted)
	assert.True(t, errors.Is(err, lib.ErrConflict), "got %v", err)
	err = connections.DeleteIf(ctx, stale)
	assert.True(t, errors.Is(err, lib.ErrConflict), "got %v", err)

	current, err := connections.FindPair(ctx, a, b)
	require.NoError(t, err)
	assert.Equal(t, models.ConnectionStatusAccepted, current.Status)

	require.NoError(t, connections.DeleteIf(ctx, current))
	_, err = connections.FindPair(ctx, a, b)
	assert.True(t, errors.Is(err, lib.ErrNotFound))

	err = connections.DeleteIf(ctx, current)
	assert.True(t, errors.Is(err, lib.ErrConflict))
}

func TestMongoConnectionStore_Counterparts(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	connections := NewConnectionStore(db)
	a, b, c := primitive.NewObjectID(), primitive.NewObjectID(), primitive.NewObjectID()

	pending := models.NewConnectionRequest(a, b)
	require.NoError(t, connections.Insert(ctx, &pending))
	accepted := models.NewConnectionRequest(c, a)
	require.NoError(t, connections.Insert(ctx, &accepted))
	require.NoError(t, connections.SetStatusIf(ctx, accepted, models.ConnectionStatusAccepted))

	tests := []struct {
		name string
		user primitive.ObjectID
		view ConnectionView
		want []primitive.ObjectID
	}{
		{"a sent", a, ViewSent, []primitive.ObjectID{b}},
		{"b received", b, ViewReceived, []primitive.ObjectID{a}},
		{"a received", a, ViewReceived, []primitive.ObjectID{}},
		{"b sent", b, ViewSent, []primitive.ObjectID{}},
		{"a connected", a, ViewConnected, []primitive.ObjectID{c}},
		{"c connected", c, ViewConnected, []primitive.ObjectID{a}},
		{"b connected", b, ViewConnected, []primitive.ObjectID{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ids, err := connections.Counterparts(ctx, tt.user, tt.view)
			require.NoError(t, err)
			assert.Equal(t, tt.want, ids)
		})
	}
}

func TestMongoUserStore_ListFiltersSortsThenPages(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewUserStore(db)

	for _, u := range []struct{ name, area string }{
		{"Bob", "Berlin"},
		{"Eve", "London"},
		{"Dan", "Berlin"},
		{"Ada", "Berlin"},
		{"Cid", "Berlin"},
	} {
		user := models.User{Name: u.name, Surname: "Test", Email: u.name + "@example.com", Area: u.area}
		require.NoError(t, users.Create(ctx, &user))
	}

	// sort must apply to the whole match before skip and limit cut the page
	q, err := query.Parse("area=Berlin&sort=-name&offset=1&limit=2", query.Options{})
	require.NoError(t, err)
	page, total, err := users.List(ctx, q)
	require.NoError(t, err)

	assert.Equal(t, int64(4), total)
	names := make([]string, 0, len(page))
	for _, u := range page {
		names = append(names, u.Name)
	}
	assert.Equal(t, []string{"Cid", "Bob"}, names)

	q, err = query.Parse("fields=name&sort=name&limit=1", query.Options{})
	require.NoError(t, err)
	page, total, err = users.List(ctx, q)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, page, 1)
	assert.Equal(t, "Ada", page[0].Name)
	assert.Empty(t, page[0].Email)
}

func TestMongoUserStore_FindDtosKeepsOrder(t *testing.T) {
	db := testDB(t)
	ctx := context.Background()
	users := NewUserStore(db)

	ada := models.User{Name: "Ada", Email: "ada@example.com", Bio: "hidden"}
	alan := models.User{Name: "Alan", Email: "alan@example.com"}
	require.NoError(t, users.Create(ctx, &ada))
	require.NoError(t, users.Create(ctx, &alan))

	dtos, err := users.FindDtos(ctx, []primitive.ObjectID{alan.Id, primitive.NewObjectID(), ada.Id})
	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, "Alan", dtos[0].Name)
	assert.Equal(t, "Ada", dtos[1].Name)

	require.NoError(t, users.Delete(ctx, ada.Id))
	err = users.Delete(ctx, ada.Id)
	assert.True(t, errors.Is(err, lib.ErrNotFound))
}
