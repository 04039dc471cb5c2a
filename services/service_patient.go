package services

import (
	"context"
	"net/http"

	"promcare/dto"
	"promcare/internal/repository"
)

// AssignDoctor points a patient at a doctor, denormalizing the doctor's name
// onto the patient record. Both references are validated before any write.
func AssignDoctor(ctx context.Context, patients repository.PatientRepository, doctors repository.DoctorRepository, body dto.DoctorAssignRequest) (int, any) {
	if _, err := patients.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Invalid UHID"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	doctor, err := doctors.FindByEmail(ctx, body.DoctorAssigned)
	if err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Doctor not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	modified, err := patients.AssignDoctor(ctx, body.UHID, body.DoctorAssigned, doctor.DoctorName)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if modified {
		return http.StatusOK, dto.MessageResponse{Message: "Doctor updated successfully"}
	}
	return http.StatusOK, dto.MessageResponse{Message: "No update performed. Doctor might already be assigned to this value."}
}

// PatientsByAdmin lists every patient whose admin_assigned equals the email.
func PatientsByAdmin(ctx context.Context, patients repository.PatientRepository, adminEmail string) (int, any) {
	list, err := patients.FindByAdmin(ctx, adminEmail)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if len(list) == 0 {
		return http.StatusNotFound, dto.ErrorResponse{Message: "No patients found for this admin"}
	}
	return http.StatusOK, list
}

// PatientsByDoctor lists every patient whose doctor_assigned equals the email.
func PatientsByDoctor(ctx context.Context, patients repository.PatientRepository, doctorEmail string) (int, any) {
	list, err := patients.FindByDoctor(ctx, doctorEmail)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if len(list) == 0 {
		return http.StatusNotFound, dto.ErrorResponse{Message: "No patients found for this doctor"}
	}
	return http.StatusOK, list
}

// AllDoctors returns the whole doctor lobby.
func AllDoctors(ctx context.Context, doctors repository.DoctorRepository) (int, any) {
	list, err := doctors.FindAll(ctx)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if len(list) == 0 {
		return http.StatusNotFound, dto.ErrorResponse{Message: "No doctors found"}
	}
	return http.StatusOK, list
}

// UpdateSurgerySchedule replaces the patient's surgery_scheduled field.
func UpdateSurgerySchedule(ctx context.Context, patients repository.PatientRepository, body dto.SurgeryScheduleUpdateRequest) (int, any) {
	if _, err := patients.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Patient not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	modified, err := patients.SetSurgerySchedule(ctx, body.UHID, body.SurgeryScheduled)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if modified {
		return http.StatusOK, dto.MessageResponse{Message: "Surgery schedule updated successfully"}
	}
	return http.StatusOK, dto.MessageResponse{Message: "No changes made"}
}

// UpdatePostSurgeryDetails replaces the patient's post_surgery_details field.
func UpdatePostSurgeryDetails(ctx context.Context, patients repository.PatientRepository, body dto.PostSurgeryDetailsUpdateRequest) (int, any) {
	if _, err := patients.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Patient not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	modified, err := patients.SetPostSurgeryDetails(ctx, body.UHID, body.PostSurgeryDetails)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if modified {
		return http.StatusOK, dto.MessageResponse{Message: "Post-surgery details updated successfully"}
	}
	return http.StatusOK, dto.MessageResponse{Message: "No changes made"}
}
