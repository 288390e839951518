package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"github.com/hardika-spec-610/linkedIn-BE/src/repositories"
)

var relationshipMessages = map[string]string{
	"requested":    "Connection request sent successfully",
	"cancelled":    "Connection request cancelled",
	"accepted":     "Connection request accepted",
	"declined":     "Connection request declined",
	"disconnected": "Connection removed",
}

// SendConnectionRequest toggles a request from :senderId to the body's receiverId.
// It also cancels a pending request, removes a connection, or accepts the
// receiver's own pending request.
func (ctl *Controller) SendConnectionRequest(c *fiber.Ctx) error {
	senderID, err := lib.ParamObjectID(c, "senderId")
	if err != nil {
		return err
	}

	var in models.SendRequestInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}
	receiverID, err := lib.ObjectIDFromInput("receiverId", in.ReceiverID)
	if err != nil {
		return err
	}

	result, err := ctl.Relationships.SendRequest(c.Context(), senderID, receiverID)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": relationshipMessages[string(result.Action)],
		"status":  result.Status,
		"action":  result.Action,
	})
}

// ManageConnectionRequest accepts (action=true) or declines the request senderId sent to :id
func (ctl *Controller) ManageConnectionRequest(c *fiber.Ctx) error {
	userID, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	var in models.ManageRequestInput
	if err := lib.ParseBody(c, &in); err != nil {
		return err
	}
	senderID, err := lib.ObjectIDFromInput("senderId", in.SenderID)
	if err != nil {
		return err
	}

	result, err := ctl.Relationships.ManageRequest(c.Context(), userID, senderID, *in.Action)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": relationshipMessages[string(result.Action)],
		"status":  result.Status,
		"action":  result.Action,
	})
}

func (ctl *Controller) GetReceivedRequests(c *fiber.Ctx) error {
	return ctl.listRelationships(c, repositories.ViewReceived)
}

func (ctl *Controller) GetSentRequests(c *fiber.Ctx) error {
	return ctl.listRelationships(c, repositories.ViewSent)
}

func (ctl *Controller) GetUserConnections(c *fiber.Ctx) error {
	return ctl.listRelationships(c, repositories.ViewConnected)
}

func (ctl *Controller) listRelationships(c *fiber.Ctx, view repositories.ConnectionView) error {
	userID, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}

	users, err := ctl.Relationships.List(c.Context(), userID, view)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(users)
}

// GetConnectionStatus returns none, pending, received or connected as seen by :id
func (ctl *Controller) GetConnectionStatus(c *fiber.Ctx) error {
	userID, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}
	otherID, err := lib.ParamObjectID(c, "otherId")
	if err != nil {
		return err
	}

	status, err := ctl.Relationships.Status(c.Context(), userID, otherID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": status})
}
