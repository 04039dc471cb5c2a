package handlers

import (
	"github.com/gofiber/fiber/v2"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/services"
)

// AddQuestionnaireHandler godoc
// @Summary Assign questionnaires to a patient, skipping (name, period) pairs already assigned
// @Tags questionnaires
// @Accept json
// @Produce json
// @Param batch body dto.QuestionnaireAppendRequest true "Questionnaire batch"
// @Success 200 {object} dto.QuestionnaireAppendResponse
// @Failure 404 {object} dto.ErrorResponse
// @Router /add-questionnaire [put]
func AddQuestionnaireHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.QuestionnaireAppendRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.AddQuestionnaires(ctx, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}

func AddQuestionnaireScoresHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.QuestionnaireScoreAppendRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.AddQuestionnaireScores(ctx, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}

func UpdateQuestionnaireStatusHandler(repos repository.Registry) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body dto.QuestionnaireUpdateRequest
		if err := c.BodyParser(&body); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Message: "invalid body"})
		}

		ctx, cancel := requestCtx()
		defer cancel()

		status, payload := services.UpdateQuestionnaireStatus(ctx, repos.Patients, body)
		return c.Status(status).JSON(payload)
	}
}
