package services

import (
	"context"
	"net/http"

	"promcare/dto"
	"promcare/internal/auth"
	"promcare/internal/repository"
)

const (
	RoleAdmin   = "admin"
	RoleDoctor  = "doctor"
	RolePatient = "patient"
)

// Login resolves the identifier (email, uhid or phone) inside the collection
// the role names, then compares passwords by direct equality. Role scoping is
// strict: a patient phone number submitted under role "doctor" is NotFound,
// never a cross-collection hit. When jwtSecret is non-empty the response
// carries a signed token.
func Login(ctx context.Context, repos repository.Registry, jwtSecret string, body dto.LoginRequest) (int, any) {
	var (
		uhid     string
		password string
		user     any
		err      error
	)

	switch body.Role {
	case RoleAdmin:
		a, e := repos.Admins.FindByIdentifier(ctx, body.Identifier)
		if e == nil {
			uhid, password, user = a.UHID, a.Password, a
		}
		err = e
	case RoleDoctor:
		d, e := repos.Doctors.FindByIdentifier(ctx, body.Identifier)
		if e == nil {
			uhid, password, user = d.UHID, d.Password, d
		}
		err = e
	case RolePatient:
		p, e := repos.Patients.FindByIdentifier(ctx, body.Identifier)
		if e == nil {
			uhid, password, user = p.UHID, p.Password, p
		}
		err = e
	default:
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid role"}
	}

	if err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "User not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	// Passwords are stored and compared in plain text.
	if password != body.Password {
		return http.StatusUnauthorized, dto.ErrorResponse{Message: "Invalid password"}
	}

	resp := dto.LoginResponse{Message: "Login successful", User: user}
	if jwtSecret != "" {
		if token, terr := auth.IssueToken(jwtSecret, uhid, body.Role); terr == nil {
			resp.Token = token
		}
	}
	return http.StatusOK, resp
}

// GoogleLogin looks up a federated identity by verified email within the
// named role's collection. No password is involved.
func GoogleLogin(ctx context.Context, repos repository.Registry, body dto.GoogleLoginRequest) (int, any) {
	var (
		user any
		err  error
	)

	switch body.Role {
	case RoleDoctor:
		user, err = repos.Doctors.FindByEmail(ctx, body.Email)
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Doctor not found"}
		}
	case RoleAdmin:
		user, err = repos.Admins.FindByEmail(ctx, body.Email)
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Admin not found"}
		}
	case RolePatient:
		user, err = repos.Patients.FindByEmail(ctx, body.Email)
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Patient not found"}
		}
	default:
		return http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid role"}
	}

	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	return http.StatusOK, dto.LoginResponse{
		Message: "Login successful",
		Role:    body.Role,
		User:    user,
	}
}

// ResetPatientPassword overwrites the password of the patient with the given
// uhid. The lookup happens first so an unresolved uhid never mutates anything.
func ResetPatientPassword(ctx context.Context, patients repository.PatientRepository, body dto.PasswordResetRequest) (int, any) {
	if _, err := patients.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Patient not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if err := patients.SetPassword(ctx, body.UHID, body.NewPassword); err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	return http.StatusOK, dto.MessageResponse{Message: "Password updated successfully"}
}

func ResetDoctorPassword(ctx context.Context, doctors repository.DoctorRepository, body dto.PasswordResetRequest) (int, any) {
	if _, err := doctors.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Doctor not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if err := doctors.SetPassword(ctx, body.UHID, body.NewPassword); err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	return http.StatusOK, dto.MessageResponse{Message: "Doctor's password updated successfully"}
}

func ResetAdminPassword(ctx context.Context, admins repository.AdminRepository, body dto.PasswordResetRequest) (int, any) {
	if _, err := admins.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Admin not found"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if err := admins.SetPassword(ctx, body.UHID, body.NewPassword); err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	return http.StatusOK, dto.MessageResponse{Message: "Admin's password updated successfully"}
}
