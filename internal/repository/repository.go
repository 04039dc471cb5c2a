// Package repository wraps the four Mongo collections behind small
// per-collection interfaces so services stay testable against in-memory
// fakes. Every method takes a context; every expected-to-resolve lookup
// returns ErrNotFound instead of a nil document.
package repository

import (
	"context"
	"errors"

	"promcare/model"
)

// ErrNotFound means the referenced identifier did not resolve.
var ErrNotFound = errors.New("document not found")

const (
	adminCollection        = "Admin_Lobby"
	doctorCollection       = "Doctor_Lobby"
	patientCollection      = "Patient_Data"
	notificationCollection = "Notification_Data"
)

type AdminRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Admin, error)
	FindByUHID(ctx context.Context, uhid string) (*model.Admin, error)
	// FindByIdentifier matches email OR uhid OR phone_number.
	FindByIdentifier(ctx context.Context, identifier string) (*model.Admin, error)
	Insert(ctx context.Context, admin *model.Admin) (string, error)
	PushDoctorCreated(ctx context.Context, adminEmail, doctorEmail string) error
	PushPatientCreated(ctx context.Context, adminEmail, patientEmail string) error
	SetPassword(ctx context.Context, uhid, newPassword string) error
}

type DoctorRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Doctor, error)
	FindByUHID(ctx context.Context, uhid string) (*model.Doctor, error)
	FindByIdentifier(ctx context.Context, identifier string) (*model.Doctor, error)
	// ExistsByAny reports whether any doctor already holds one of the three
	// unique identity fields.
	ExistsByAny(ctx context.Context, email, uhid, phone string) (bool, error)
	Insert(ctx context.Context, doctor *model.Doctor) (string, error)
	FindAll(ctx context.Context) ([]model.Doctor, error)
	SetPassword(ctx context.Context, uhid, newPassword string) error
}

type PatientRepository interface {
	FindByUHID(ctx context.Context, uhid string) (*model.Patient, error)
	FindByEmail(ctx context.Context, email string) (*model.Patient, error)
	FindByIdentifier(ctx context.Context, identifier string) (*model.Patient, error)
	ExistsByAny(ctx context.Context, email, uhid, phone string) (bool, error)
	Insert(ctx context.Context, patient *model.Patient) (string, error)
	FindByAdmin(ctx context.Context, adminEmail string) ([]model.Patient, error)
	FindByDoctor(ctx context.Context, doctorEmail string) ([]model.Patient, error)
	// AssignDoctor sets doctor_assigned and the denormalized doctor_name.
	// modified is false when the patient already carried those values.
	AssignDoctor(ctx context.Context, uhid, doctorEmail, doctorName string) (modified bool, err error)
	// PushQuestionnaires appends the batch and sets current_status in one
	// field-targeted update.
	PushQuestionnaires(ctx context.Context, uhid string, items []model.QuestionnaireAssigned, newStatus string) (modified bool, err error)
	PushScores(ctx context.Context, uhid string, scores []model.QuestionnaireScore) (modified bool, err error)
	// SetQuestionnaireCompleted flips completed on the single assigned entry
	// matching (name, period) via a matched-element update. modified is false
	// when nothing matched or the flag already held that value.
	SetQuestionnaireCompleted(ctx context.Context, uhid, name, period string, completed int) (modified bool, err error)
	SetSurgerySchedule(ctx context.Context, uhid string, s model.SurgeryScheduled) (modified bool, err error)
	SetPostSurgeryDetails(ctx context.Context, uhid string, d model.PostSurgeryDetails) (modified bool, err error)
	SetPassword(ctx context.Context, uhid, newPassword string) error
}

type NotificationRepository interface {
	FindByUHID(ctx context.Context, uhid string) (*model.NotificationDoc, error)
	Insert(ctx context.Context, doc *model.NotificationDoc) error
	// PushAlerts appends alerts, preserving caller order, after existing ones.
	PushAlerts(ctx context.Context, uhid string, alerts []model.ReminderAlert) error
	// MarkRead sets read=1 on the first alert whose message equals message
	// exactly. modified is false when nothing matched or it was already read;
	// the two cases are not distinguishable.
	MarkRead(ctx context.Context, uhid, message string) (modified bool, err error)
}

// Registry bundles the four repositories for injection into handlers.
type Registry struct {
	Admins        AdminRepository
	Doctors       DoctorRepository
	Patients      PatientRepository
	Notifications NotificationRepository
}
