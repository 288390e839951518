package services

import (
	"context"
	"sync"
	"testing"

	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/lock"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories/repotest"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fixture struct {
	svc           *RelationshipService
	users         *repotest.Users
	connections   *repotest.Connections
	notifications *repotest.Notifications
	tx            *repotest.Transactor
	a, b          primitive.ObjectID
}

func newFixture(t *testing.T, atomic bool) *fixture {
	t.Helper()
	a := models.User{Id: primitive.NewObjectID(), Name: "Ada", Surname: "Lovelace"}
	b := models.User{Id: primitive.NewObjectID(), Name: "Alan", Surname: "Turing"}

	f := &fixture{
		users:         repotest.NewUsers(a, b),
		connections:   repotest.NewConnections(),
		notifications: repotest.NewNotifications(),
		a:             a.Id,
		b:             b.Id,
	}
	f.tx = repotest.NewTransactor(atomic, f.connections, f.notifications)
	f.svc = NewRelationshipService(f.users, f.connections, f.notifications, f.tx, lock.NewKeyedMutex(), zerolog.Nop())
	return f
}

func (f *fixture) ids(t *testing.T, user primitive.ObjectID, view repositories.ConnectionView) []primitive.ObjectID {
	t.Helper()
	ids, err := f.connections.Counterparts(context.Background(), user, view)
	require.NoError(t, err)
	return ids
}

// assertState checks both users' views against the expected state of (a, b)
func (f *fixture) assertState(t *testing.T, want RelationshipState) {
	t.Helper()
	ctx := context.Background()

	state, err := f.svc.Status(ctx, f.a, f.b)
	require.NoError(t, err)
	assert.Equal(t, want, state)

	empty := []primitive.ObjectID{}
	sentA, receivedB := f.ids(t, f.a, repositories.ViewSent), f.ids(t, f.b, repositories.ViewReceived)
	sentB, receivedA := f.ids(t, f.b, repositories.ViewSent), f.ids(t, f.a, repositories.ViewReceived)
	connectedA, connectedB := f.ids(t, f.a, repositories.ViewConnected), f.ids(t, f.b, repositories.ViewConnected)

	switch want {
	case StateNone:
		assert.Empty(t, f.connections.All())
		assert.Equal(t, empty, sentA)
		assert.Equal(t, empty, receivedB)
		assert.Equal(t, empty, connectedA)
	case StateRequested:
		assert.Equal(t, []primitive.ObjectID{f.b}, sentA)
		assert.Equal(t, []primitive.ObjectID{f.a}, receivedB)
		assert.Equal(t, empty, connectedA)
		assert.Equal(t, empty, connectedB)
	case StateReceived:
		assert.Equal(t, []primitive.ObjectID{f.a}, sentB)
		assert.Equal(t, []primitive.ObjectID{f.b}, receivedA)
		assert.Equal(t, empty, connectedA)
	case StateConnected:
		assert.Equal(t, []primitive.ObjectID{f.b}, connectedA)
		assert.Equal(t, []primitive.ObjectID{f.a}, connectedB)
		assert.Equal(t, empty, sentA)
		assert.Equal(t, empty, sentB)
		assert.Equal(t, empty, receivedA)
		assert.Equal(t, empty, receivedB)
	}
	assert.LessOrEqual(t, len(f.connections.All()), 1)
}

func TestSendRequest_FromNoneRequests(t *testing.T) {
	f := newFixture(t, false)

	res, err := f.svc.SendRequest(context.Background(), f.a, f.b)
	require.NoError(t, err)
	assert.Equal(t, RelationshipResult{Status: StateRequested, Action: ActionRequest}, res)
	f.assertState(t, StateRequested)
}

func TestSendRequest_TwiceCancels(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	res, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)

	assert.Equal(t, ActionCancel, res.Action)
	f.assertState(t, StateNone)
}

func TestManageRequest_Accept(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	res, err := f.svc.ManageRequest(ctx, f.b, f.a, true)
	require.NoError(t, err)

	assert.Equal(t, RelationshipResult{Status: StateConnected, Action: ActionAccept}, res)
	f.assertState(t, StateConnected)

	notifications := f.notifications.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, f.a, notifications[0].Recipient)
	assert.Equal(t, f.b, notifications[0].RelatedUser)
	assert.Equal(t, models.NotificationTypeConnectionAccepted, notifications[0].Type)
}

func TestManageRequest_Decline(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	res, err := f.svc.ManageRequest(ctx, f.b, f.a, false)
	require.NoError(t, err)

	assert.Equal(t, ActionDecline, res.Action)
	f.assertState(t, StateNone)
	assert.Empty(t, f.notifications.All())
}

func TestManageRequest_WithoutPendingRequest(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.ManageRequest(ctx, f.b, f.a, true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))

	// the requester cannot answer their own request
	_, err = f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	_, err = f.svc.ManageRequest(ctx, f.a, f.b, true)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	f.assertState(t, StateRequested)
}

func TestSendRequest_ConnectedDisconnects(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	_, err = f.svc.ManageRequest(ctx, f.b, f.a, true)
	require.NoError(t, err)

	res, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	assert.Equal(t, ActionDisconnect, res.Action)
	f.assertState(t, StateNone)
}

func TestSendRequest_BackToRequesterAccepts(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.b, f.a)
	require.NoError(t, err)
	f.assertState(t, StateReceived)

	res, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)
	assert.Equal(t, RelationshipResult{Status: StateConnected, Action: ActionAccept}, res)
	f.assertState(t, StateConnected)
	require.Len(t, f.notifications.All(), 1)
	assert.Equal(t, f.b, f.notifications.All()[0].Recipient)
}

func TestSendRequest_InvalidPairs(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.a)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))

	_, err = f.svc.SendRequest(ctx, f.a, primitive.NewObjectID())
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Empty(t, f.connections.All())
}

func TestAccept_NotificationFailureIsRolledBack(t *testing.T) {
	for _, atomic := range []bool{false, true} {
		name := "compensated"
		if atomic {
			name = "transaction"
		}
		t.Run(name, func(t *testing.T) {
			f := newFixture(t, atomic)
			ctx := context.Background()

			_, err := f.svc.SendRequest(ctx, f.a, f.b)
			require.NoError(t, err)

			f.notifications.SetFailCreate(errors.New("write concern error"))
			_, err = f.svc.ManageRequest(ctx, f.b, f.a, true)
			require.Error(t, err)
			assert.Equal(t, apperr.KindPartialUpdate, apperr.KindOf(err))

			f.assertState(t, StateRequested)
			assert.Empty(t, f.notifications.All())
		})
	}
}

// staleConnections simulates another writer changing the pair between read and write
type staleConnections struct {
	*repotest.Connections
}

func (s staleConnections) DeleteIf(context.Context, models.Connection) error {
	return lib.ErrConflict
}

func TestSendRequest_LostCompareAndSwap(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)

	svc := NewRelationshipService(f.users, staleConnections{f.connections}, f.notifications, f.tx, lock.NewKeyedMutex(), zerolog.Nop())
	_, err = svc.SendRequest(ctx, f.a, f.b)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	f.assertState(t, StateRequested)
}

type busyLocker struct{}

func (busyLocker) Acquire(ctx context.Context, _ string) (func(), error) {
	return nil, context.DeadlineExceeded
}

func TestSendRequest_PairLockUnavailable(t *testing.T) {
	f := newFixture(t, false)
	svc := NewRelationshipService(f.users, f.connections, f.notifications, f.tx, busyLocker{}, zerolog.Nop())

	_, err := svc.SendRequest(context.Background(), f.a, f.b)
	assert.Equal(t, apperr.KindConflict, apperr.KindOf(err))
	assert.Empty(t, f.connections.All())
}

func TestSendRequest_ConcurrentTogglesStaySymmetric(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sender, receiver := f.a, f.b
			if i%2 == 1 {
				sender, receiver = f.b, f.a
			}
			_, err := f.svc.SendRequest(ctx, sender, receiver)
			assert.NoError(t, err)
		}(i)
	}
	wg.Wait()

	conns := f.connections.All()
	require.LessOrEqual(t, len(conns), 1)
	state, err := f.svc.Status(ctx, f.a, f.b)
	require.NoError(t, err)
	f.assertState(t, state)
}

func TestList_PopulatesUsers(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.svc.SendRequest(ctx, f.a, f.b)
	require.NoError(t, err)

	sent, err := f.svc.List(ctx, f.a, repositories.ViewSent)
	require.NoError(t, err)
	require.Len(t, sent, 1)
	assert.Equal(t, "Alan", sent[0].Name)

	_, err = f.svc.List(ctx, primitive.NewObjectID(), repositories.ViewSent)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}
