package handlers

import (
	"github.com/gofiber/fiber/v2"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/services"
)

// LoginHandler godoc
// @Summary Login by email, uhid or phone number
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Identifier, password and role"
// @Success 200 {object} dto.LoginResponse
// @Failure 401 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /login [post]
func LoginHandler(repos repository.Registry, jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.LoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.Login(ctx, repos, jwtSecret, body)
		return c.Status(status).JSON(payload)
	}
}

func GoogleLoginHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.GoogleLoginRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.GoogleLogin(ctx, repos, body)
		return c.Status(status).JSON(payload)
	}
}

func ResetPatientPasswordHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PasswordResetRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.ResetPatientPassword(ctx, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}

func ResetDoctorPasswordHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PasswordResetRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.ResetDoctorPassword(ctx, repos.Doctors, body)
		return c.Status(status).JSON(payload)
	}
}

func ResetAdminPasswordHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PasswordResetRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.ResetAdminPassword(ctx, repos.Admins, body)
		return c.Status(status).JSON(payload)
	}
}
