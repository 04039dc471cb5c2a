package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"promcare/model"
)

type mongoPatientRepo struct {
	col *mongo.Collection
}

func NewPatientRepository(db *mongo.Database) PatientRepository {
	return &mongoPatientRepo{col: db.Collection(patientCollection)}
}

func (r *mongoPatientRepo) FindByUHID(ctx context.Context, uhid string) (*model.Patient, error) {
	return r.findOne(ctx, bson.M{"uhid": uhid})
}

func (r *mongoPatientRepo) FindByEmail(ctx context.Context, email string) (*model.Patient, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoPatientRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.Patient, error) {
	return r.findOne(ctx, identifierFilter(identifier))
}

func (r *mongoPatientRepo) findOne(ctx context.Context, filter bson.M) (*model.Patient, error) {
	var patient model.Patient
	err := r.col.FindOne(ctx, filter).Decode(&patient)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

func (r *mongoPatientRepo) ExistsByAny(ctx context.Context, email, uhid, phone string) (bool, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"uhid": uhid},
		bson.M{"phone_number": phone},
	}}
	err := r.col.FindOne(ctx, filter).Err()
	if errors.Is(err, mongo.ErrNoDocuments) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *mongoPatientRepo) Insert(ctx context.Context, patient *model.Patient) (string, error) {
	res, err := r.col.InsertOne(ctx, patient)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (r *mongoPatientRepo) FindByAdmin(ctx context.Context, adminEmail string) ([]model.Patient, error) {
	return r.findMany(ctx, bson.M{"admin_assigned": adminEmail})
}

func (r *mongoPatientRepo) FindByDoctor(ctx context.Context, doctorEmail string) ([]model.Patient, error) {
	return r.findMany(ctx, bson.M{"doctor_assigned": doctorEmail})
}

func (r *mongoPatientRepo) findMany(ctx context.Context, filter bson.M) ([]model.Patient, error) {
	cursor, err := r.col.Find(ctx, filter)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var patients []model.Patient
	if err := cursor.All(ctx, &patients); err != nil {
		return nil, err
	}
	return patients, nil
}

func (r *mongoPatientRepo) AssignDoctor(ctx context.Context, uhid, doctorEmail, doctorName string) (bool, error) {
	return r.updateByUHID(ctx, uhid, bson.M{"$set": bson.M{
		"doctor_assigned": doctorEmail,
		"doctor_name":     doctorName,
	}})
}

func (r *mongoPatientRepo) PushQuestionnaires(ctx context.Context, uhid string, items []model.QuestionnaireAssigned, newStatus string) (bool, error) {
	return r.updateByUHID(ctx, uhid, bson.M{
		"$push": bson.M{"questionnaire_assigned": bson.M{"$each": items}},
		"$set":  bson.M{"current_status": newStatus},
	})
}

func (r *mongoPatientRepo) PushScores(ctx context.Context, uhid string, scores []model.QuestionnaireScore) (bool, error) {
	return r.updateByUHID(ctx, uhid, bson.M{
		"$push": bson.M{"questionnaire_scores": bson.M{"$each": scores}},
	})
}

func (r *mongoPatientRepo) SetQuestionnaireCompleted(ctx context.Context, uhid, name, period string, completed int) (bool, error) {
	// Matched-element update: only the one assigned entry matching both name
	// and period is touched, leaving concurrent appends on other fields alone.
	filter := bson.M{
		"uhid": uhid,
		"questionnaire_assigned": bson.M{"$elemMatch": bson.M{
			"name":   name,
			"period": period,
		}},
	}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{
		"$set": bson.M{"questionnaire_assigned.$.completed": completed},
	})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}

func (r *mongoPatientRepo) SetSurgerySchedule(ctx context.Context, uhid string, s model.SurgeryScheduled) (bool, error) {
	return r.updateByUHID(ctx, uhid, bson.M{"$set": bson.M{"surgery_scheduled": s}})
}

func (r *mongoPatientRepo) SetPostSurgeryDetails(ctx context.Context, uhid string, d model.PostSurgeryDetails) (bool, error) {
	return r.updateByUHID(ctx, uhid, bson.M{"$set": bson.M{"post_surgery_details": d}})
}

func (r *mongoPatientRepo) SetPassword(ctx context.Context, uhid, newPassword string) error {
	_, err := r.updateByUHID(ctx, uhid, bson.M{"$set": bson.M{"password": newPassword}})
	return err
}

func (r *mongoPatientRepo) updateByUHID(ctx context.Context, uhid string, update bson.M) (bool, error) {
	res, err := r.col.UpdateOne(ctx, bson.M{"uhid": uhid}, update)
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
