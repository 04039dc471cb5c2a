package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Admin lives in the Admin_Lobby collection. DoctorsCreated and
// PatientsCreated are append-only lists of emails; they are soft references
// (string equality), nothing enforces they still resolve.
type Admin struct {
	ID              bson.ObjectID `json:"id,omitempty"       bson:"_id,omitempty"`
	AdminName       string        `json:"admin_name"         bson:"admin_name"`
	Gender          string        `json:"gender"             bson:"gender"`
	Age             int           `json:"age"                bson:"age"`
	Password        string        `json:"password"           bson:"password"`
	UHID            string        `json:"uhid"               bson:"uhid"`
	PhoneNumber     string        `json:"phone_number"       bson:"phone_number"`
	Email           string        `json:"email"              bson:"email"`
	DoctorsCreated  []string      `json:"doctors_created"    bson:"doctors_created"`
	PatientsCreated []string      `json:"patients_created"   bson:"patients_created"`
}
