package dto

// Registration responses echo the inserted document id so the frontend can
// link straight to the new record.

type RegisterAdminResponse struct {
	Message string `json:"message"`
	AdminID string `json:"admin_id"`
}

type RegisterDoctorResponse struct {
	Message  string `json:"message"`
	DoctorID string `json:"doctor_id"`
}

type RegisterPatientResponse struct {
	Message   string `json:"message"`
	PatientID string `json:"patient_id"`
}
