package services

import (
	"context"
	"net/http"

	"promcare/dto"
	"promcare/internal/repository"
	"promcare/model"
)

// AddNotifications validates the uhid against the patient collection, then
// lazily creates the per-patient notification document or appends to it.
// Entries keep caller order, after any existing ones.
func AddNotifications(ctx context.Context, patients repository.PatientRepository, notifications repository.NotificationRepository, body dto.NotificationAppendRequest) (int, any) {
	if _, err := patients.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Invalid UHID"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	_, err := notifications.FindByUHID(ctx, body.UHID)
	switch {
	case err == nil:
		if err := notifications.PushAlerts(ctx, body.UHID, body.Notifications); err != nil {
			return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
		}
	case isNotFound(err):
		doc := &model.NotificationDoc{UHID: body.UHID, Notifications: body.Notifications}
		if err := notifications.Insert(ctx, doc); err != nil {
			return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
		}
	default:
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	return http.StatusOK, dto.StatusResponse{Status: "success", Message: "Notification(s) added"}
}

// MarkNotificationRead sets read=1 on the first alert matching the message
// text exactly. A miss and an already-read alert are indistinguishable; both
// come back as the same NotFound-class failure.
func MarkNotificationRead(ctx context.Context, notifications repository.NotificationRepository, body dto.MarkReadRequest) (int, any) {
	if _, err := notifications.FindByUHID(ctx, body.UHID); err != nil {
		if isNotFound(err) {
			return http.StatusNotFound, dto.ErrorResponse{Message: "Invalid UHID"}
		}
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}

	modified, err := notifications.MarkRead(ctx, body.UHID, body.Message)
	if err != nil {
		return http.StatusInternalServerError, dto.ErrorResponse{Message: err.Error()}
	}
	if !modified {
		return http.StatusNotFound, dto.ErrorResponse{Message: "Message not found or already read"}
	}
	return http.StatusOK, dto.StatusResponse{Status: "success", Message: "Notification marked as read"}
}
