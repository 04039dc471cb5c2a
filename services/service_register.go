package services

import (
	"context"
	"net/http"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/model"
)

// RegisterAdmin inserts a new admin after an email uniqueness pre-check.
func RegisterAdmin(ctx context.Context, admins repository.AdminRepository, admin model.Admin) (int, any) {
	if _, err := admins.FindByEmail(ctx, admin.Email); err == nil {
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Admin with this email already exists."}
	} else if !isNotFound(err) {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	if admin.DoctorsCreated == nil {
		admin.DoctorsCreated = []string{}
	}
	if admin.PatientsCreated == nil {
		admin.PatientsCreated = []string{}
	}

	id, err := admins.Insert(ctx, &admin)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	return http.StatusOK, dto.RegisterAdminResponse{
		Message: "Admin registered successfully.",
		AdminID: id,
	}
}

// RegisterDoctor inserts a doctor and then appends its email to the creating
// admin's doctors_created list. The two writes hit different collections and
// are not atomic: a crash between them leaves the doctor present and the
// admin's list short one entry.
func RegisterDoctor(ctx context.Context, admins repository.AdminRepository, doctors repository.DoctorRepository, doctor model.Doctor) (int, any) {
	exists, err := doctors.ExistsByAny(ctx, doctor.Email, doctor.UHID, doctor.PhoneNumber)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if exists {
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Doctor with this UHID or email or phone number already exists."}
	}

	if _, err := admins.FindByEmail(ctx, doctor.AdminCreated); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Admin who created this doctor was not found."}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	if doctor.PatientsAssigned == nil {
		doctor.PatientsAssigned = []string{}
	}

	id, err := doctors.Insert(ctx, &doctor)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	if err := admins.PushDoctorCreated(ctx, doctor.AdminCreated, doctor.Email); err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	return http.StatusOK, dto.RegisterDoctorResponse{
		Message:  "Doctor registered successfully.",
		DoctorID: id,
	}
}

// RegisterPatient inserts a patient, denormalizing the assigned admin's name
// onto the record, then appends the patient email to the admin's
// patients_created list (same non-atomic window as RegisterDoctor).
func RegisterPatient(ctx context.Context, admins repository.AdminRepository, patients repository.PatientRepository, patient model.Patient) (int, any) {
	exists, err := patients.ExistsByAny(ctx, patient.Email, patient.UHID, patient.PhoneNumber)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if exists {
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Patient with this UHID or email or Phone Number already exists."}
	}

	admin, err := admins.FindByEmail(ctx, patient.AdminAssigned)
	if err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Admin not found."}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	patient.AdminName = admin.AdminName
	if patient.QuestionnaireAssigned == nil {
		patient.QuestionnaireAssigned = []model.QuestionnaireAssigned{}
	}
	if patient.QuestionnaireScores == nil {
		patient.QuestionnaireScores = []model.QuestionnaireScore{}
	}

	id, err := patients.Insert(ctx, &patient)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	if err := admins.PushPatientCreated(ctx, patient.AdminAssigned, patient.Email); err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	return http.StatusOK, dto.RegisterPatientResponse{
		Message:   "Patient registered successfully.",
		PatientID: id,
	}
}
