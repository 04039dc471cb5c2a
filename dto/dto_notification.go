package dto

import "promcare/model"

type NotificationAppendRequest struct {
	UHID          string                `json:"uhid"`
	Notifications []model.ReminderAlert `json:"notifications"`
}

// MarkReadRequest identifies the alert to flip by exact message text. Two
// alerts with identical text are indistinguishable here; only the first match
// in store order is affected.
type MarkReadRequest struct {
	UHID    string `json:"uhid"`
	Message string `json:"message"`
}
