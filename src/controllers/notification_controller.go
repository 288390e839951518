package controllers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/hardika-spec-610/linkedIn-BE/src/lib"
	"github.com/hardika-spec-610/linkedIn-BE/src/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GetUserNotifications returns the user's notifications, newest first
func (ctl *Controller) GetUserNotifications(c *fiber.Ctx) error {
	userID, err := ctl.findUser(c, "id")
	if err != nil {
		return err
	}

	notifications, err := ctl.Notifications.ListForUser(c.Context(), userID)
	if err != nil {
		return err
	}

	related := make([]primitive.ObjectID, 0, len(notifications))
	for _, n := range notifications {
		related = append(related, n.RelatedUser)
	}
	users, err := ctl.populateUsers(c, related)
	if err != nil {
		return err
	}

	out := make([]models.NotificationDto, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, models.NotificationDto{
			ID:          n.Id,
			Type:        n.Type,
			RelatedUser: users[n.RelatedUser],
			RelatedPost: n.RelatedPost,
			Read:        n.Read,
			CreatedAt:   n.CreatedAt,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}

func (ctl *Controller) MarkNotificationAsRead(c *fiber.Ctx) error {
	userID, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}
	id, err := lib.ParamObjectID(c, "notificationId")
	if err != nil {
		return err
	}

	n, err := ctl.Notifications.MarkRead(c.Context(), userID, id)
	if err != nil {
		return notFound(err, "Notification with id %s not found!", id.Hex())
	}
	return c.Status(fiber.StatusOK).JSON(n)
}

func (ctl *Controller) DeleteNotification(c *fiber.Ctx) error {
	userID, err := lib.ParamObjectID(c, "id")
	if err != nil {
		return err
	}
	id, err := lib.ParamObjectID(c, "notificationId")
	if err != nil {
		return err
	}

	if err := ctl.Notifications.Delete(c.Context(), userID, id); err != nil {
		return notFound(err, "Notification with id %s not found!", id.Hex())
	}
	return c.SendStatus(fiber.StatusNoContent)
}
