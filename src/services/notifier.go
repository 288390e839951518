package services

import (
	"context"

	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Notifier records like and comment notifications. They are best effort: a
// failure is logged and never fails the request that triggered it.
type Notifier struct {
	store  repositories.NotificationStore
	logger zerolog.Logger
}

func NewNotifier(store repositories.NotificationStore, logger zerolog.Logger) *Notifier {
	return &Notifier{
		store:  store,
		logger: logger.With().Str("component", "notifier").Logger(),
	}
}

// Notify does nothing when users act on their own content
func (n *Notifier) Notify(ctx context.Context, recipient primitive.ObjectID, kind models.NotificationType, actor, post primitive.ObjectID) {
	if recipient == actor {
		return
	}

	notification := models.NewNotification(recipient, kind, actor, post)
	if err := n.store.Create(ctx, &notification); err != nil {
		n.logger.Error().
			Err(err).
			Str("recipient", recipient.Hex()).
			Str("type", string(kind)).
			Msg("could not create notification")
	}
}
