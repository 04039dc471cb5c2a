package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// QuestionnaireAssigned is one scheduled questionnaire task. A (Name, Period)
// pair appears at most once per patient; the assign path deduplicates on it.
type QuestionnaireAssigned struct {
	Name         string `json:"name"          bson:"name"`
	Period       string `json:"period"        bson:"period"`
	AssignedDate string `json:"assigned_date" bson:"assigned_date"`
	Deadline     string `json:"deadline"      bson:"deadline"`
	Completed    int    `json:"completed"     bson:"completed"`
}

// QuestionnaireScore is one submitted PROM result. Scores are appended as-is,
// duplicates included.
type QuestionnaireScore struct {
	Name      string    `json:"name"      bson:"name"`
	Score     []float64 `json:"score"     bson:"score"`
	Period    string    `json:"period"    bson:"period"`
	Timestamp time.Time `json:"timestamp" bson:"timestamp"`
}

type SurgeryScheduled struct {
	Date string `json:"date" bson:"date"`
	Time string `json:"time" bson:"time"`
}

type PostSurgeryDetails struct {
	DateOfSurgery string `json:"date_of_surgery" bson:"date_of_surgery"`
	Surgeon       string `json:"surgeon"         bson:"surgeon"`
	SurgeryName   string `json:"surgery_name"    bson:"surgery_name"`
	Procedure     string `json:"procedure"       bson:"procedure"`
	Implant       string `json:"implant"         bson:"implant"`
	Technology    string `json:"technology"      bson:"technology"`
}

// Patient lives in the Patient_Data collection. DoctorAssigned and
// AdminAssigned are emails (soft references). CurrentStatus is derived from
// the most recently assigned questionnaire batch and is last-write-wins, not
// authoritative.
type Patient struct {
	ID                    bson.ObjectID           `json:"id,omitempty"           bson:"_id,omitempty"`
	UHID                  string                  `json:"uhid"                   bson:"uhid"`
	FirstName             string                  `json:"first_name"             bson:"first_name"`
	LastName              string                  `json:"last_name"              bson:"last_name"`
	Password              string                  `json:"password"               bson:"password"`
	DOB                   string                  `json:"dob"                    bson:"dob"`
	Age                   int                     `json:"age"                    bson:"age"`
	BloodGroup            string                  `json:"blood_grp"              bson:"blood_grp"`
	Gender                string                  `json:"gender"                 bson:"gender"`
	Height                int                     `json:"height"                 bson:"height"`
	Weight                int                     `json:"weight"                 bson:"weight"`
	BMI                   float64                 `json:"bmi"                    bson:"bmi"`
	Email                 string                  `json:"email"                  bson:"email"`
	PhoneNumber           string                  `json:"phone_number"           bson:"phone_number"`
	DoctorAssigned        string                  `json:"doctor_assigned"        bson:"doctor_assigned"`
	AdminAssigned         string                  `json:"admin_assigned"         bson:"admin_assigned"`
	DoctorName            string                  `json:"doctor_name"            bson:"doctor_name"`
	AdminName             string                  `json:"admin_name"             bson:"admin_name"`
	QuestionnaireAssigned []QuestionnaireAssigned `json:"questionnaire_assigned" bson:"questionnaire_assigned"`
	QuestionnaireScores   []QuestionnaireScore    `json:"questionnaire_scores"   bson:"questionnaire_scores"`
	SurgeryScheduled      *SurgeryScheduled       `json:"surgery_scheduled"      bson:"surgery_scheduled,omitempty"`
	PostSurgeryDetails    *PostSurgeryDetails     `json:"post_surgery_details"   bson:"post_surgery_details,omitempty"`
	CurrentStatus         string                  `json:"current_status"         bson:"current_status"`
}

// HasQuestionnaire reports whether the (name, period) pair is already on the
// patient's assigned list.
func (p *Patient) HasQuestionnaire(name, period string) bool {
	for _, q := range p.QuestionnaireAssigned {
		if q.Name == name && q.Period == period {
			return true
		}
	}
	return false
}
