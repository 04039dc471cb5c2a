package services

import (
	"context"
	"net/http"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/model"
)

// AddQuestionnaires appends the batch entries whose (name, period) pair is
// not already on the patient. An all-duplicates batch is a no-op success and
// leaves current_status untouched; otherwise current_status becomes the
// period of the first newly added entry.
func AddQuestionnaires(ctx context.Context, patients repository.PatientRepository, body dto.QuestionnaireAppendRequest) (int, any) {
	patient, err := patients.FindByUHID(ctx, body.UHID)
	if err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Patient not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	fresh := make([]model.QuestionnaireAssigned, 0, len(body.QuestionnaireAssigned))
	for _, q := range body.QuestionnaireAssigned {
		if !patient.HasQuestionnaire(q.Name, q.Period) {
			fresh = append(fresh, q)
		}
	}

	if len(fresh) == 0 {
		return http.StatusOK, dto.QuestionnaireAppendResponse{Message: "No new questionnaire(s) to add"}
	}

	newStatus := fresh[0].Period

	modified, err := patients.PushQuestionnaires(ctx, body.UHID, fresh, newStatus)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if modified {
		return http.StatusOK, dto.QuestionnaireAppendResponse{
			Message:       "Questionnaire(s) added successfully and current_status updated",
			UpdatedStatus: newStatus,
		}
	}
	return http.StatusOK, dto.QuestionnaireAppendResponse{Message: "No changes made"}
}

// AddQuestionnaireScores appends score entries unconditionally; duplicates
// are allowed and current_status is not recomputed.
func AddQuestionnaireScores(ctx context.Context, patients repository.PatientRepository, body dto.QuestionnaireScoreAppendRequest) (int, any) {
	if _, err := patients.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Patient not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	modified, err := patients.PushScores(ctx, body.UHID, body.QuestionnaireScores)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if modified {
		return http.StatusOK, dto.MessageResponse{Message: "Score(s) added successfully"}
	}
	return http.StatusOK, dto.MessageResponse{Message: "No changes made"}
}

// UpdateQuestionnaireStatus flips the completed flag on the (name, period)
// entry. "No such patient" and "no such assignment" both collapse into the
// same NotFound, matching what the matched-element update can observe.
func UpdateQuestionnaireStatus(ctx context.Context, patients repository.PatientRepository, body dto.QuestionnaireUpdateRequest) (int, any) {
	completed := 1
	if body.Completed != nil {
		completed = *body.Completed
	}

	modified, err := patients.SetQuestionnaireCompleted(ctx, body.UHID, body.Name, body.Period, completed)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if !modified {
		return http.StatusNotFound, dto.ErrorResponse{Message: "Questionnaire not found or already completed."}
	}
	return http.StatusOK, dto.MessageResponse{Message: "Questionnaire status updated successfully."}
}
