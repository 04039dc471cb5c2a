package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/model"
	"promcare/services"
)

const requestTimeout = 5 * time.Second

func requestCtx() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// RegisterAdminHandler godoc
// @Summary Register a new admin
// @Tags auth
// @Accept json
// @Produce json
// @Param admin body model.Admin true "Admin record"
// @Success 200 {object} dto.RegisterAdminResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /registeradmin [post]
func RegisterAdminHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Admin
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.RegisterAdmin(ctx, repos.Admins, body)
		return c.Status(status).JSON(payload)
	}
}

// RegisterDoctorHandler godoc
// @Summary Register a new doctor under an existing admin
// @Tags auth
// @Accept json
// @Produce json
// @Param doctor body model.Doctor true "Doctor record"
// @Success 200 {object} dto.RegisterDoctorResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /registerdoctor [post]
func RegisterDoctorHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Doctor
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.RegisterDoctor(ctx, repos.Admins, repos.Doctors, body)
		return c.Status(status).JSON(payload)
	}
}

// RegisterPatientHandler godoc
// @Summary Register a new patient under an existing admin
// @Tags auth
// @Accept json
// @Produce json
// @Param patient body model.Patient true "Patient record"
// @Success 200 {object} dto.RegisterPatientResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /registerpatient [post]
func RegisterPatientHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body model.Patient
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.RegisterPatient(ctx, repos.Admins, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}
