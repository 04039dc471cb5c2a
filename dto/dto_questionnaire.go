package dto

import "promcare/model"

type QuestionnaireAppendRequest struct {
	UHID                  string                        `json:"uhid"`
	QuestionnaireAssigned []model.QuestionnaireAssigned `json:"questionnaire_assigned"`
}

type QuestionnaireScoreAppendRequest struct {
	UHID                string                     `json:"uhid"`
	QuestionnaireScores []model.QuestionnaireScore `json:"questionnaire_scores"`
}

// QuestionnaireUpdateRequest flips the completed flag on the single assigned
// entry matching (name, period). Completed defaults to 1 when omitted.
type QuestionnaireUpdateRequest struct {
	UHID      string `json:"uhid"`
	Name      string `json:"name"`
	Period    string `json:"period"`
	Completed *int   `json:"completed"`
}

type QuestionnaireAppendResponse struct {
	Message       string `json:"message"`
	UpdatedStatus string `json:"updated_status,omitempty"`
}
