package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ReminderAlert is a single in-app alert. Read is 0 or 1.
type ReminderAlert struct {
	Message   string    `json:"message"   bson:"message"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
	Read      int       `json:"read"      bson:"read"`
}

// NotificationDoc is the per-patient notification document in
// Notification_Data, keyed by uhid and created lazily on the first alert.
// Alerts are append-only and keep insertion order.
type NotificationDoc struct {
	ID            bson.ObjectID   `json:"id,omitempty"  bson:"_id,omitempty"`
	UHID          string          `json:"uhid"          bson:"uhid"`
	Notifications []ReminderAlert `json:"notifications" bson:"notifications"`
}
