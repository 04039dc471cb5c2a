package services

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"promcare/internal/repository"
	"promcare/model"
)

// In-memory fakes for the repository interfaces. They mimic the store's
// observable behavior: first-match updates, modified-count semantics, and
// ErrNotFound on unresolved lookups.

type fakeAdminRepo struct {
	admins         []*model.Admin
	pushDoctorErr  error
	pushPatientErr error
}

func (f *fakeAdminRepo) FindByEmail(_ context.Context, email string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminRepo) FindByUHID(_ context.Context, uhid string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.UHID == uhid {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminRepo) FindByIdentifier(_ context.Context, identifier string) (*model.Admin, error) {
	for _, a := range f.admins {
		if a.Email == identifier || a.UHID == identifier || a.PhoneNumber == identifier {
			return a, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAdminRepo) Insert(_ context.Context, admin *model.Admin) (string, error) {
	f.admins = append(f.admins, admin)
	return bson.NewObjectID().Hex(), nil
}

func (f *fakeAdminRepo) PushDoctorCreated(ctx context.Context, adminEmail, doctorEmail string) error {
	if f.pushDoctorErr != nil {
		return f.pushDoctorErr
	}
	a, err := f.FindByEmail(ctx, adminEmail)
	if err != nil {
		return nil // matched zero documents; UpdateOne does not error
	}
	a.DoctorsCreated = append(a.DoctorsCreated, doctorEmail)
	return nil
}

func (f *fakeAdminRepo) PushPatientCreated(ctx context.Context, adminEmail, patientEmail string) error {
	if f.pushPatientErr != nil {
		return f.pushPatientErr
	}
	a, err := f.FindByEmail(ctx, adminEmail)
	if err != nil {
		return nil
	}
	a.PatientsCreated = append(a.PatientsCreated, patientEmail)
	return nil
}

func (f *fakeAdminRepo) SetPassword(ctx context.Context, uhid, newPassword string) error {
	if a, err := f.FindByUHID(ctx, uhid); err == nil {
		a.Password = newPassword
	}
	return nil
}

type fakeDoctorRepo struct {
	doctors []*model.Doctor
}

func (f *fakeDoctorRepo) FindByEmail(_ context.Context, email string) (*model.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == email {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) FindByUHID(_ context.Context, uhid string) (*model.Doctor, error) {
	for _, d := range f.doctors {
		if d.UHID == uhid {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) FindByIdentifier(_ context.Context, identifier string) (*model.Doctor, error) {
	for _, d := range f.doctors {
		if d.Email == identifier || d.UHID == identifier || d.PhoneNumber == identifier {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeDoctorRepo) ExistsByAny(_ context.Context, email, uhid, phone string) (bool, error) {
	for _, d := range f.doctors {
		if d.Email == email || d.UHID == uhid || d.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeDoctorRepo) Insert(_ context.Context, doctor *model.Doctor) (string, error) {
	f.doctors = append(f.doctors, doctor)
	return bson.NewObjectID().Hex(), nil
}

func (f *fakeDoctorRepo) FindAll(_ context.Context) ([]model.Doctor, error) {
	out := make([]model.Doctor, 0, len(f.doctors))
	for _, d := range f.doctors {
		out = append(out, *d)
	}
	return out, nil
}

func (f *fakeDoctorRepo) SetPassword(ctx context.Context, uhid, newPassword string) error {
	if d, err := f.FindByUHID(ctx, uhid); err == nil {
		d.Password = newPassword
	}
	return nil
}

type fakePatientRepo struct {
	patients []*model.Patient
}

func (f *fakePatientRepo) FindByUHID(_ context.Context, uhid string) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.UHID == uhid {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) FindByEmail(_ context.Context, email string) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.Email == email {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) FindByIdentifier(_ context.Context, identifier string) (*model.Patient, error) {
	for _, p := range f.patients {
		if p.Email == identifier || p.UHID == identifier || p.PhoneNumber == identifier {
			return p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakePatientRepo) ExistsByAny(_ context.Context, email, uhid, phone string) (bool, error) {
	for _, p := range f.patients {
		if p.Email == email || p.UHID == uhid || p.PhoneNumber == phone {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePatientRepo) Insert(_ context.Context, patient *model.Patient) (string, error) {
	f.patients = append(f.patients, patient)
	return bson.NewObjectID().Hex(), nil
}

func (f *fakePatientRepo) FindByAdmin(_ context.Context, adminEmail string) ([]model.Patient, error) {
	var out []model.Patient
	for _, p := range f.patients {
		if p.AdminAssigned == adminEmail {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) FindByDoctor(_ context.Context, doctorEmail string) ([]model.Patient, error) {
	var out []model.Patient
	for _, p := range f.patients {
		if p.DoctorAssigned == doctorEmail {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakePatientRepo) AssignDoctor(ctx context.Context, uhid, doctorEmail, doctorName string) (bool, error) {
	p, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	if p.DoctorAssigned == doctorEmail && p.DoctorName == doctorName {
		return false, nil
	}
	p.DoctorAssigned = doctorEmail
	p.DoctorName = doctorName
	return true, nil
}

func (f *fakePatientRepo) PushQuestionnaires(ctx context.Context, uhid string, items []model.QuestionnaireAssigned, newStatus string) (bool, error) {
	p, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	p.QuestionnaireAssigned = append(p.QuestionnaireAssigned, items...)
	p.CurrentStatus = newStatus
	return true, nil
}

func (f *fakePatientRepo) PushScores(ctx context.Context, uhid string, scores []model.QuestionnaireScore) (bool, error) {
	p, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	p.QuestionnaireScores = append(p.QuestionnaireScores, scores...)
	return true, nil
}

func (f *fakePatientRepo) SetQuestionnaireCompleted(ctx context.Context, uhid, name, period string, completed int) (bool, error) {
	p, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	for i := range p.QuestionnaireAssigned {
		q := &p.QuestionnaireAssigned[i]
		if q.Name == name && q.Period == period {
			if q.Completed == completed {
				return false, nil
			}
			q.Completed = completed
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePatientRepo) SetSurgerySchedule(ctx context.Context, uhid string, s model.SurgeryScheduled) (bool, error) {
	p, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	if p.SurgeryScheduled != nil && *p.SurgeryScheduled == s {
		return false, nil
	}
	p.SurgeryScheduled = &s
	return true, nil
}

func (f *fakePatientRepo) SetPostSurgeryDetails(ctx context.Context, uhid string, d model.PostSurgeryDetails) (bool, error) {
	p, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	if p.PostSurgeryDetails != nil && *p.PostSurgeryDetails == d {
		return false, nil
	}
	p.PostSurgeryDetails = &d
	return true, nil
}

func (f *fakePatientRepo) SetPassword(ctx context.Context, uhid, newPassword string) error {
	if p, err := f.FindByUHID(ctx, uhid); err == nil {
		p.Password = newPassword
	}
	return nil
}

type fakeNotificationRepo struct {
	docs []*model.NotificationDoc
}

func (f *fakeNotificationRepo) FindByUHID(_ context.Context, uhid string) (*model.NotificationDoc, error) {
	for _, d := range f.docs {
		if d.UHID == uhid {
			return d, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeNotificationRepo) Insert(_ context.Context, doc *model.NotificationDoc) error {
	f.docs = append(f.docs, doc)
	return nil
}

func (f *fakeNotificationRepo) PushAlerts(ctx context.Context, uhid string, alerts []model.ReminderAlert) error {
	if d, err := f.FindByUHID(ctx, uhid); err == nil {
		d.Notifications = append(d.Notifications, alerts...)
	}
	return nil
}

func (f *fakeNotificationRepo) MarkRead(ctx context.Context, uhid, message string) (bool, error) {
	d, err := f.FindByUHID(ctx, uhid)
	if err != nil {
		return false, nil
	}
	for i := range d.Notifications {
		if d.Notifications[i].Message == message {
			if d.Notifications[i].Read == 1 {
				return false, nil
			}
			d.Notifications[i].Read = 1
			return true, nil
		}
	}
	return false, nil
}

func newFakeRegistry() (repository.Registry, *fakeAdminRepo, *fakeDoctorRepo, *fakePatientRepo, *fakeNotificationRepo) {
	admins := &fakeAdminRepo{}
	doctors := &fakeDoctorRepo{}
	patients := &fakePatientRepo{}
	notifications := &fakeNotificationRepo{}
	return repository.Registry{
		Admins:        admins,
		Doctors:       doctors,
		Patients:      patients,
		Notifications: notifications,
	}, admins, doctors, patients, notifications
}
