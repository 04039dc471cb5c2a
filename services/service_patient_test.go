package services

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promcare/dto"
	"promcare/model"
)

func TestAssignDoctor_SetsEmailAndDenormalizedName(t *testing.T) {
	ctx := context.Background()
	_, _, doctors, patients, _ := newFakeRegistry()
	seedPatient(patients)
	d := sampleDoctor()
	doctors.doctors = append(doctors.doctors, &d)

	status, payload := AssignDoctor(ctx, patients, doctors, dto.DoctorAssignRequest{
		UHID: "UHP00001", DoctorAssigned: "dr.john@example.com",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Doctor updated successfully", payload.(dto.MessageResponse).Message)

	p, _ := patients.FindByUHID(ctx, "UHP00001")
	assert.Equal(t, "dr.john@example.com", p.DoctorAssigned)
	assert.Equal(t, "Dr. John Smith", p.DoctorName)
}

func TestAssignDoctor_RepeatIsReportedAsNoChange(t *testing.T) {
	ctx := context.Background()
	_, _, doctors, patients, _ := newFakeRegistry()
	seedPatient(patients)
	d := sampleDoctor()
	doctors.doctors = append(doctors.doctors, &d)

	req := dto.DoctorAssignRequest{UHID: "UHP00001", DoctorAssigned: "dr.john@example.com"}
	_, _ = AssignDoctor(ctx, patients, doctors, req)

	status, payload := AssignDoctor(ctx, patients, doctors, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No update performed. Doctor might already be assigned to this value.", payload.(dto.MessageResponse).Message)
}

func TestAssignDoctor_UnresolvedReferences(t *testing.T) {
	ctx := context.Background()
	_, _, doctors, patients, _ := newFakeRegistry()
	seedPatient(patients)

	status, payload := AssignDoctor(ctx, patients, doctors, dto.DoctorAssignRequest{
		UHID: "nope", DoctorAssigned: "dr.john@example.com",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invalid UHID", payload.(dto.ErrorResponse).Message)

	status, payload = AssignDoctor(ctx, patients, doctors, dto.DoctorAssignRequest{
		UHID: "UHP00001", DoctorAssigned: "ghost@example.com",
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Doctor not found", payload.(dto.ErrorResponse).Message)
}

func TestPatientLists(t *testing.T) {
	ctx := context.Background()
	_, _, doctors, patients, _ := newFakeRegistry()
	p1 := samplePatient()
	p2 := samplePatient()
	p2.UHID, p2.Email, p2.PhoneNumber = "UHP00002", "jane@example.com", "5550002222"
	p2.DoctorAssigned = "dr.john@example.com"
	patients.patients = append(patients.patients, &p1, &p2)

	status, payload := PatientsByAdmin(ctx, patients, "alice.admin@example.com")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload.([]model.Patient), 2)

	status, payload = PatientsByDoctor(ctx, patients, "dr.john@example.com")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload.([]model.Patient), 1)

	status, payload = PatientsByAdmin(ctx, patients, "ghost@example.com")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No patients found for this admin", payload.(dto.ErrorResponse).Message)

	status, payload = PatientsByDoctor(ctx, patients, "ghost@example.com")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No patients found for this doctor", payload.(dto.ErrorResponse).Message)

	status, payload = AllDoctors(ctx, doctors)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "No doctors found", payload.(dto.ErrorResponse).Message)

	d := sampleDoctor()
	doctors.doctors = append(doctors.doctors, &d)
	status, payload = AllDoctors(ctx, doctors)
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, payload.([]model.Doctor), 1)
}

func TestUpdateSurgerySchedule(t *testing.T) {
	ctx := context.Background()
	_, _, _, patients, _ := newFakeRegistry()
	seedPatient(patients)

	req := dto.SurgeryScheduleUpdateRequest{
		UHID:             "UHP00001",
		SurgeryScheduled: model.SurgeryScheduled{Date: "2025-05-10", Time: "08:00"},
	}

	status, payload := UpdateSurgerySchedule(ctx, patients, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Surgery schedule updated successfully", payload.(dto.MessageResponse).Message)

	// Same values again: matched but nothing modified.
	status, payload = UpdateSurgerySchedule(ctx, patients, req)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "No changes made", payload.(dto.MessageResponse).Message)

	status, payload = UpdateSurgerySchedule(ctx, patients, dto.SurgeryScheduleUpdateRequest{UHID: "nope"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Patient not found", payload.(dto.ErrorResponse).Message)
}

func TestUpdatePostSurgeryDetails(t *testing.T) {
	ctx := context.Background()
	_, _, _, patients, _ := newFakeRegistry()
	seedPatient(patients)

	status, payload := UpdatePostSurgeryDetails(ctx, patients, dto.PostSurgeryDetailsUpdateRequest{
		UHID: "UHP00001",
		PostSurgeryDetails: model.PostSurgeryDetails{
			DateOfSurgery: "2025-05-10",
			Surgeon:       "Dr. Strange",
			SurgeryName:   "knee replacement",
			Procedure:     "total knee arthroplasty",
			Implant:       "Titanium",
			Technology:    "Robotic Assisted",
		},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Post-surgery details updated successfully", payload.(dto.MessageResponse).Message)

	p, _ := patients.FindByUHID(ctx, "UHP00001")
	require.NotNil(t, p.PostSurgeryDetails)
	assert.Equal(t, "Dr. Strange", p.PostSurgeryDetails.Surgeon)
}
