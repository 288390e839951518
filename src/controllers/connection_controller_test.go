package controllers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type relationshipBody struct {
	Message string `json:"message"`
	Status  string `json:"status"`
	Action  string `json:"action"`
}

func relationshipStatus(t *testing.T, h *harness, user, other primitive.ObjectID) string {
	t.Helper()
	resp, body := h.do(t, http.MethodGet, "/users/"+user.Hex()+"/connections/"+other.Hex()+"/status", nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	return decode[struct {
		Status string `json:"status"`
	}](t, body).Status
}

func listIDs(t *testing.T, h *harness, path string) []primitive.ObjectID {
	t.Helper()
	resp, body := h.do(t, http.MethodGet, path, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	ids := []primitive.ObjectID{}
	for _, u := range decode[[]models.UserDto](t, body) {
		ids = append(ids, u.ID)
	}
	return ids
}

func TestConnectionRequest_Accept(t *testing.T) {
	ada, alan := newUser("Ada", "Lovelace"), newUser("Alan", "Turing")
	h := newHarness(t, ada, alan)

	resp, body := h.do(t, http.MethodPost, "/users/"+ada.Id.Hex()+"/sendRequest", map[string]any{"receiverId": alan.Id.Hex()})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	sent := decode[relationshipBody](t, body)
	assert.Equal(t, "pending", sent.Status)
	assert.Equal(t, "requested", sent.Action)
	assert.Equal(t, "Connection request sent successfully", sent.Message)

	assert.Equal(t, "pending", relationshipStatus(t, h, ada.Id, alan.Id))
	assert.Equal(t, "received", relationshipStatus(t, h, alan.Id, ada.Id))
	assert.Equal(t, []primitive.ObjectID{alan.Id}, listIDs(t, h, "/users/"+ada.Id.Hex()+"/sentRequests"))
	assert.Equal(t, []primitive.ObjectID{ada.Id}, listIDs(t, h, "/users/"+alan.Id.Hex()+"/receivedRequests"))

	resp, body = h.do(t, http.MethodPost, "/users/"+alan.Id.Hex()+"/manageRequest",
		map[string]any{"senderId": ada.Id.Hex(), "action": true})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "connected", decode[relationshipBody](t, body).Status)

	assert.Equal(t, []primitive.ObjectID{alan.Id}, listIDs(t, h, "/users/"+ada.Id.Hex()+"/connections"))
	assert.Equal(t, []primitive.ObjectID{ada.Id}, listIDs(t, h, "/users/"+alan.Id.Hex()+"/connections"))
	assert.Empty(t, listIDs(t, h, "/users/"+alan.Id.Hex()+"/receivedRequests"))

	notifications := h.notifications.All()
	require.Len(t, notifications, 1)
	assert.Equal(t, models.NotificationTypeConnectionAccepted, notifications[0].Type)
	assert.Equal(t, ada.Id, notifications[0].Recipient)
}

func TestConnectionRequest_DeclineAndResend(t *testing.T) {
	ada, alan := newUser("Ada", "Lovelace"), newUser("Alan", "Turing")
	h := newHarness(t, ada, alan)

	// the root path is kept for older clients
	resp, _ := h.do(t, http.MethodPost, "/"+ada.Id.Hex()+"/sendRequest", map[string]any{"receiverId": alan.Id.Hex()})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, body := h.do(t, http.MethodPost, "/users/"+alan.Id.Hex()+"/manageRequest",
		map[string]any{"senderId": ada.Id.Hex(), "action": false})
	require.Equal(t, fiber.StatusOK, resp.StatusCode, string(body))
	assert.Equal(t, "declined", decode[relationshipBody](t, body).Action)
	assert.Equal(t, "none", relationshipStatus(t, h, ada.Id, alan.Id))

	resp, _ = h.do(t, http.MethodPost, "/users/"+ada.Id.Hex()+"/sendRequest", map[string]any{"receiverId": alan.Id.Hex()})
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "pending", relationshipStatus(t, h, ada.Id, alan.Id))
}

func TestConnectionRequest_Errors(t *testing.T) {
	ada, alan := newUser("Ada", "Lovelace"), newUser("Alan", "Turing")
	h := newHarness(t, ada, alan)

	tests := []struct {
		name string
		path string
		body map[string]any
		want int
	}{
		{"self request", "/users/" + ada.Id.Hex() + "/sendRequest", map[string]any{"receiverId": ada.Id.Hex()}, fiber.StatusBadRequest},
		{"unknown receiver", "/users/" + ada.Id.Hex() + "/sendRequest", map[string]any{"receiverId": primitive.NewObjectID().Hex()}, fiber.StatusNotFound},
		{"bad sender id", "/users/nope/sendRequest", map[string]any{"receiverId": alan.Id.Hex()}, fiber.StatusBadRequest},
		{"manage without request", "/users/" + alan.Id.Hex() + "/manageRequest", map[string]any{"senderId": ada.Id.Hex(), "action": true}, fiber.StatusNotFound},
		{"manage without action", "/users/" + alan.Id.Hex() + "/manageRequest", map[string]any{"senderId": ada.Id.Hex()}, fiber.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := h.do(t, http.MethodPost, tt.path, tt.body)
			assert.Equal(t, tt.want, resp.StatusCode, string(body))
		})
	}
	assert.Empty(t, h.connections.All())
}
