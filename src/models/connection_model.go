package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Connection is the single relationship document of an unordered pair of users.
// Pair is unique, so a pair is either pending in one direction or accepted.
type Connection struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Pair      string             `json:"pair" bson:"pair"`
	Sender    primitive.ObjectID `json:"sender" bson:"sender"`
	Recipient primitive.ObjectID `json:"recipient" bson:"recipient"`
	Status    ConnectionStatus   `json:"status" bson:"status"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "pending"
	ConnectionStatusAccepted ConnectionStatus = "accepted"
)

// PairKey is the same for (a, b) and (b, a)
func PairKey(a, b primitive.ObjectID) string {
	lo, hi := a.Hex(), b.Hex()
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + ":" + hi
}

// NewConnectionRequest returns a pending request from sender to recipient
func NewConnectionRequest(sender, recipient primitive.ObjectID) Connection {
	now := time.Now().UTC()
	return Connection{
		Id:        primitive.NewObjectID(),
		Pair:      PairKey(sender, recipient),
		Sender:    sender,
		Recipient: recipient,
		Status:    ConnectionStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Other returns the member of the pair that is not userID
func (c Connection) Other(userID primitive.ObjectID) primitive.ObjectID {
	if c.Sender == userID {
		return c.Recipient
	}
	return c.Sender
}
