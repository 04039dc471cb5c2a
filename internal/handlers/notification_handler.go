package handlers

import (
	"github.com/gofiber/fiber/v2"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/services"
)

func AddNotificationHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.NotificationAppendRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.AddNotifications(ctx, repos.Patients, repos.Notifications, body)
		return c.Status(status).JSON(payload)
	}
}

func MarkAsReadHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.MarkReadRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.MarkNotificationRead(ctx, repos.Notifications, body)
		return c.Status(status).JSON(payload)
	}
}
