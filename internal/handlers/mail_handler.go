package handlers

import (
	"github.com/gofiber/fiber/v2"

	"promcare/dto"
	"promcare/internal/mailer"
)

// SendEmailHandler acknowledges immediately and delivers in the background.
// Mail failures never reach the caller; they are logged by the dispatcher.
func SendEmailHandler(dispatcher *mailer.Dispatcher) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.EmailRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		dispatcher.Dispatch(body.Email, body.Subject, body.Message)

		return c.JSON(dto.StatusResponse{Status: "success", Message: "Email sending initiated"})
	}
}
