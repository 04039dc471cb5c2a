package handlers

import (
	"github.com/gofiber/fiber/v2"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/services"
)

func UpdateDoctorHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.DoctorAssignRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.AssignDoctor(ctx, repos.Patients, repos.Doctors, body)
		return c.Status(status).JSON(payload)
	}
}

// PatientsByAdminHandler godoc
// @Summary List patients assigned to an admin
// @Tags patients
// @Produce json
// @Param admin_email path string true "Admin email"
// @Success 200 {array} model.Patient
// @Failure 404 {object} dto.ErrorResponse
// @Router /patients/by-admin/{admin_email} [get]
func PatientsByAdminHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.PatientsByAdmin(ctx, repos.Patients, c.Params("admin_email"))
		return c.Status(status).JSON(payload)
	}
}

func PatientsByDoctorHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.PatientsByDoctor(ctx, repos.Patients, c.Params("doctor_email"))
		return c.Status(status).JSON(payload)
	}
}

func AllDoctorsHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.AllDoctors(ctx, repos.Doctors)
		return c.Status(status).JSON(payload)
	}
}

func UpdateSurgeryScheduleHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.SurgeryScheduleUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.UpdateSurgerySchedule(ctx, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}

func UpdatePostSurgeryDetailsHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.PostSurgeryDetailsUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.UpdatePostSurgeryDetails(ctx, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}
