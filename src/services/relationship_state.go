package services

import (
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RelationshipState is the state of a pair seen from one of its users (the actor)
type RelationshipState string

const (
	StateNone      RelationshipState = "none"
	StateRequested RelationshipState = "pending"  // the actor asked the other user
	StateReceived  RelationshipState = "received" // the other user asked the actor
	StateConnected RelationshipState = "connected"
)

// Action is the write needed to move between two states
type Action string

const (
	ActionRequest    Action = "requested"
	ActionCancel     Action = "cancelled"
	ActionAccept     Action = "accepted"
	ActionDecline    Action = "declined"
	ActionDisconnect Action = "disconnected"
)

// StateOf derives the actor's state from the pair document; conn is nil when
// the pair has none.
func StateOf(conn *models.Connection, actor primitive.ObjectID) RelationshipState {
	switch {
	case conn == nil:
		return StateNone
	case conn.Status == models.ConnectionStatusAccepted:
		return StateConnected
	case conn.Sender == actor:
		return StateRequested
	default:
		return StateReceived
	}
}

// NextOnSend is the transition for the actor sending a request.
// Sending to someone who already asked the actor accepts their request.
func NextOnSend(state RelationshipState) (RelationshipState, Action) {
	switch state {
	case StateConnected:
		return StateNone, ActionDisconnect
	case StateRequested:
		return StateNone, ActionCancel
	case StateReceived:
		return StateConnected, ActionAccept
	default:
		return StateRequested, ActionRequest
	}
}

// NextOnManage is the transition for the actor answering a received request.
// ok is false when there is no request to answer.
func NextOnManage(state RelationshipState, accept bool) (next RelationshipState, action Action, ok bool) {
	if state != StateReceived {
		return state, "", false
	}
	if accept {
		return StateConnected, ActionAccept, true
	}
	return StateNone, ActionDecline, true
}
