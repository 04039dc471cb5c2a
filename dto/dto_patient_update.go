package dto

import "promcare/model"

type DoctorAssignRequest struct {
	UHID           string `json:"uhid"`
	DoctorAssigned string `json:"doctor_assigned"` // doctor email
}

type SurgeryScheduleUpdateRequest struct {
	UHID             string                 `json:"uhid"`
	SurgeryScheduled model.SurgeryScheduled `json:"surgery_scheduled"`
}

type PostSurgeryDetailsUpdateRequest struct {
	UHID               string                   `json:"uhid"`
	PostSurgeryDetails model.PostSurgeryDetails `json:"post_surgery_details"`
}
