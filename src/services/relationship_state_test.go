package services

import (
	"testing"

	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStateOf(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	pending := models.NewConnectionRequest(a, b)
	accepted := pending
	accepted.Status = models.ConnectionStatusAccepted

	assert.Equal(t, StateNone, StateOf(nil, a))
	assert.Equal(t, StateRequested, StateOf(&pending, a))
	assert.Equal(t, StateReceived, StateOf(&pending, b))
	assert.Equal(t, StateConnected, StateOf(&accepted, a))
	assert.Equal(t, StateConnected, StateOf(&accepted, b))
}

func TestNextOnSend(t *testing.T) {
	tests := []struct {
		from   RelationshipState
		to     RelationshipState
		action Action
	}{
		{StateNone, StateRequested, ActionRequest},
		{StateRequested, StateNone, ActionCancel},
		{StateReceived, StateConnected, ActionAccept},
		{StateConnected, StateNone, ActionDisconnect},
	}
	for _, tt := range tests {
		t.Run(string(tt.from), func(t *testing.T) {
			to, action := NextOnSend(tt.from)
			assert.Equal(t, tt.to, to)
			assert.Equal(t, tt.action, action)
		})
	}
}

func TestNextOnManage(t *testing.T) {
	to, action, ok := NextOnManage(StateReceived, true)
	assert.True(t, ok)
	assert.Equal(t, StateConnected, to)
	assert.Equal(t, ActionAccept, action)

	to, action, ok = NextOnManage(StateReceived, false)
	assert.True(t, ok)
	assert.Equal(t, StateNone, to)
	assert.Equal(t, ActionDecline, action)

	for _, state := range []RelationshipState{StateNone, StateRequested, StateConnected} {
		_, _, ok := NextOnManage(state, true)
		assert.False(t, ok, "state %s", state)
	}
}

func TestPairKey_Unordered(t *testing.T) {
	a, b := primitive.NewObjectID(), primitive.NewObjectID()
	assert.Equal(t, models.PairKey(a, b), models.PairKey(b, a))
	assert.NotEqual(t, models.PairKey(a, a), models.PairKey(a, b))
}
