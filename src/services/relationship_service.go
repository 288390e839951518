package services

import (
	"context"
	"errors"

	"github.com/hardika-spec-610/linkedIn-BE/src/apperr"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/lock"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
	pkgerrors "github.com/pkg/errors"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipResult is returned by the mutating operations
type RelationshipResult struct {
	Status RelationshipState `json:"status"`
	Action Action            `json:"action"`
}

type RelationshipService struct {
	users         repositories.UserStore
	connections   repositories.ConnectionStore
	notifications repositories.NotificationStore
	tx            lib.Transactor
	locker        lock.Locker
	logger        zerolog.Logger
}

func NewRelationshipService(
	users repositories.UserStore,
	connections repositories.ConnectionStore,
	notifications repositories.NotificationStore,
	tx lib.Transactor,
	locker lock.Locker,
	logger zerolog.Logger,
) *RelationshipService {
	return &RelationshipService{
		users:         users,
		connections:   connections,
		notifications: notifications,
		tx:            tx,
		locker:        locker,
		logger:        logger.With().Str("component", "relationships").Logger(),
	}
}

// SendRequest requests, cancels, disconnects or accepts depending on the pair state.
func (s *RelationshipService) SendRequest(ctx context.Context, senderID, receiverID primitive.ObjectID) (RelationshipResult, error) {
	return s.apply(ctx, senderID, receiverID, func(state RelationshipState) (RelationshipState, Action, error) {
		next, action := NextOnSend(state)
		return next, action, nil
	})
}

// ManageRequest accepts or declines the pending request senderID sent to userID
func (s *RelationshipService) ManageRequest(ctx context.Context, userID, senderID primitive.ObjectID, accept bool) (RelationshipResult, error) {
	return s.apply(ctx, userID, senderID, func(state RelationshipState) (RelationshipState, Action, error) {
		next, action, ok := NextOnManage(state, accept)
		if !ok {
			return state, "", apperr.NotFound("No pending request from user %s", senderID.Hex())
		}
		return next, action, nil
	})
}

func (s *RelationshipService) Status(ctx context.Context, userID, otherID primitive.ObjectID) (RelationshipState, error) {
	if err := s.ensureUsers(ctx, userID, otherID); err != nil {
		return "", err
	}
	conn, err := s.findPair(ctx, userID, otherID)
	if err != nil {
		return "", err
	}
	return StateOf(conn, userID), nil
}

// List returns the populated users of one of userID's relationship views
func (s *RelationshipService) List(ctx context.Context, userID primitive.ObjectID, view repositories.ConnectionView) ([]models.UserDto, error) {
	if err := s.ensureUsers(ctx, userID); err != nil {
		return nil, err
	}
	ids, err := s.connections.Counterparts(ctx, userID, view)
	if err != nil {
		return nil, err
	}
	return s.users.FindDtos(ctx, ids)
}

type decideFunc func(state RelationshipState) (RelationshipState, Action, error)

// apply runs one transition of the (actor, other) pair under the pair lock and
// inside a transaction. Every write is conditional on the document read at the
// start, so a concurrent change makes the whole operation fail with a conflict.
func (s *RelationshipService) apply(ctx context.Context, actor, other primitive.ObjectID, decide decideFunc) (RelationshipResult, error) {
	if actor == other {
		return RelationshipResult{}, apperr.Validation("Validation failed", "a user cannot have a relationship with themselves")
	}
	if err := s.ensureUsers(ctx, actor, other); err != nil {
		return RelationshipResult{}, err
	}

	pair := models.PairKey(actor, other)
	release, err := s.locker.Acquire(ctx, "pair:"+pair)
	if err != nil {
		s.logger.Warn().Err(err).Str("pair", pair).Msg("pair lock not acquired")
		return RelationshipResult{}, apperr.Conflict("Another request is updating this relationship, please retry")
	}
	defer release()

	var result RelationshipResult
	err = s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		conn, err := s.findPair(ctx, actor, other)
		if err != nil {
			return err
		}

		next, action, err := decide(StateOf(conn, actor))
		if err != nil {
			return err
		}
		if err := s.write(ctx, actor, other, conn, action); err != nil {
			return err
		}
		result = RelationshipResult{Status: next, Action: action}
		return nil
	})

	switch {
	case err == nil:
		s.logger.Info().
			Str("actor", actor.Hex()).
			Str("other", other.Hex()).
			Str("action", string(result.Action)).
			Str("status", string(result.Status)).
			Msg("relationship updated")
		return result, nil
	case errors.Is(err, lib.ErrConflict):
		return RelationshipResult{}, apperr.Conflict("The relationship was changed by another request, please retry")
	default:
		var appErr *apperr.AppError
		if errors.As(err, &appErr) {
			return RelationshipResult{}, err
		}
		return RelationshipResult{}, pkgerrors.Wrapf(err, "update relationship %s", pair)
	}
}

func (s *RelationshipService) write(ctx context.Context, actor, other primitive.ObjectID, conn *models.Connection, action Action) error {
	switch action {
	case ActionRequest:
		req := models.NewConnectionRequest(actor, other)
		return s.connections.Insert(ctx, &req)
	case ActionCancel, ActionDecline, ActionDisconnect:
		return s.connections.DeleteIf(ctx, *conn)
	case ActionAccept:
		return s.accept(ctx, actor, *conn)
	}
	return pkgerrors.Errorf("unknown relationship action %q", action)
}

// accept connects the pair and notifies the requester. Without transactions a
// failed notification is compensated by moving the pair back to pending.
func (s *RelationshipService) accept(ctx context.Context, actor primitive.ObjectID, conn models.Connection) error {
	if err := s.connections.SetStatusIf(ctx, conn, models.ConnectionStatusAccepted); err != nil {
		return err
	}

	n := models.NewNotification(conn.Sender, models.NotificationTypeConnectionAccepted, actor, primitive.NilObjectID)
	err := s.notifications.Create(ctx, &n)
	if err == nil {
		return nil
	}

	if s.tx.Atomic() {
		// the transaction rolls back the status change
		return apperr.PartialUpdate(err)
	}

	accepted := conn
	accepted.Status = models.ConnectionStatusAccepted
	if revertErr := s.connections.SetStatusIf(ctx, accepted, models.ConnectionStatusPending); revertErr != nil {
		s.logger.Error().
			Err(revertErr).
			Str("pair", conn.Pair).
			Msg("could not revert accepted connection after notification failure")
		return pkgerrors.Wrap(err, "accept connection")
	}
	return apperr.PartialUpdate(err)
}

func (s *RelationshipService) findPair(ctx context.Context, a, b primitive.ObjectID) (*models.Connection, error) {
	conn, err := s.connections.FindPair(ctx, a, b)
	if errors.Is(err, lib.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conn, nil
}

func (s *RelationshipService) ensureUsers(ctx context.Context, ids ...primitive.ObjectID) error {
	for _, id := range ids {
		ok, err := s.users.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return apperr.NotFound("User with id %s not found!", id.Hex())
		}
	}
	return nil
}
