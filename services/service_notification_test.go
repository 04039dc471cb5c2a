package services

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"promcare/dto"
	"promcare/model"
)

func alert(msg string) model.ReminderAlert {
	return model.ReminderAlert{
		Message:   msg,
		Timestamp: time.Date(2025, 4, 5, 12, 0, 0, 0, time.UTC),
	}
}

func TestAddNotifications_LazyCreateThenAppendPreservesOrder(t *testing.T) {
	ctx := context.Background()
	_, _, _, patients, notifications := newFakeRegistry()
	seedPatient(patients)

	status, payload := AddNotifications(ctx, patients, notifications, dto.NotificationAppendRequest{
		UHID:          "UHP00001",
		Notifications: []model.ReminderAlert{alert("first"), alert("second")},
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Notification(s) added", payload.(dto.StatusResponse).Message)

	status, _ = AddNotifications(ctx, patients, notifications, dto.NotificationAppendRequest{
		UHID:          "UHP00001",
		Notifications: []model.ReminderAlert{alert("third")},
	})
	require.Equal(t, http.StatusOK, status)

	doc, err := notifications.FindByUHID(ctx, "UHP00001")
	require.NoError(t, err)
	require.Len(t, doc.Notifications, 3)
	for i, want := range []string{"first", "second", "third"} {
		assert.Equal(t, want, doc.Notifications[i].Message)
	}
}

func TestAddNotifications_UnknownUHID(t *testing.T) {
	ctx := context.Background()
	_, _, _, patients, notifications := newFakeRegistry()

	status, payload := AddNotifications(ctx, patients, notifications, dto.NotificationAppendRequest{
		UHID:          "nope",
		Notifications: []model.ReminderAlert{alert("x")},
	})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invalid UHID", payload.(dto.ErrorResponse).Message)
	assert.Empty(t, notifications.docs, "no document is created for an unresolved uhid")
}

func TestMarkNotificationRead_OnlyTouchesMatchingMessage(t *testing.T) {
	ctx := context.Background()
	_, _, _, patients, notifications := newFakeRegistry()
	seedPatient(patients)
	_, _ = AddNotifications(ctx, patients, notifications, dto.NotificationAppendRequest{
		UHID:          "UHP00001",
		Notifications: []model.ReminderAlert{alert("complete your questionnaire"), alert("surgery on May 10")},
	})

	status, payload := MarkNotificationRead(ctx, notifications, dto.MarkReadRequest{
		UHID: "UHP00001", Message: "surgery on May 10",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "Notification marked as read", payload.(dto.StatusResponse).Message)

	doc, _ := notifications.FindByUHID(ctx, "UHP00001")
	assert.Equal(t, 0, doc.Notifications[0].Read, "other alert stays unread")
	assert.Equal(t, 1, doc.Notifications[1].Read)
}

func TestMarkNotificationRead_NoDocumentForUHID(t *testing.T) {
	ctx := context.Background()
	_, _, _, _, notifications := newFakeRegistry()

	status, payload := MarkNotificationRead(ctx, notifications, dto.MarkReadRequest{UHID: "nope", Message: "x"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Invalid UHID", payload.(dto.ErrorResponse).Message)
}

func TestMarkNotificationRead_MissOrAlreadyReadCollapse(t *testing.T) {
	ctx := context.Background()
	_, _, _, patients, notifications := newFakeRegistry()
	seedPatient(patients)
	_, _ = AddNotifications(ctx, patients, notifications, dto.NotificationAppendRequest{
		UHID:          "UHP00001",
		Notifications: []model.ReminderAlert{alert("hello")},
	})

	// No such message.
	status, payload := MarkNotificationRead(ctx, notifications, dto.MarkReadRequest{UHID: "UHP00001", Message: "goodbye"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Message not found or already read", payload.(dto.ErrorResponse).Message)

	// Already read reports the same failure as a miss.
	_, _ = MarkNotificationRead(ctx, notifications, dto.MarkReadRequest{UHID: "UHP00001", Message: "hello"})
	status, payload = MarkNotificationRead(ctx, notifications, dto.MarkReadRequest{UHID: "UHP00001", Message: "hello"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Message not found or already read", payload.(dto.ErrorResponse).Message)
}
