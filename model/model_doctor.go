package model

import (
	"go.mongodb.org/mongo-driver/v2/bson"
)

// Doctor lives in the Doctor_Lobby collection. AdminCreated is the email of
// the admin that registered this doctor (soft reference). Email, UHID and
// phone number must each be unique across doctors.
type Doctor struct {
	ID               bson.ObjectID `json:"id,omitempty"       bson:"_id,omitempty"`
	DoctorName       string        `json:"doctor_name"        bson:"doctor_name"`
	Gender           string        `json:"gender"             bson:"gender"`
	Age              int           `json:"age"                bson:"age"`
	Email            string        `json:"email"              bson:"email"`
	Designation      string        `json:"designation"        bson:"designation"`
	UHID             string        `json:"uhid"               bson:"uhid"`
	PhoneNumber      string        `json:"phone_number"       bson:"phone_number"`
	BloodGroup       string        `json:"blood_group"        bson:"blood_group"`
	Password         string        `json:"password"           bson:"password"`
	AdminCreated     string        `json:"admin_created"      bson:"admin_created"`
	PatientsAssigned []string      `json:"patients_assigned"  bson:"patients_assigned"`
}
