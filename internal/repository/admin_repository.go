package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"promcare/model"
)

type mongoAdminRepo struct {
	col *mongo.Collection
}

func NewAdminRepository(db *mongo.Database) AdminRepository {
	return &mongoAdminRepo{col: db.Collection(adminCollection)}
}

func NewRegistry(db *mongo.Database) Registry {
	return Registry{
		Admins:        NewAdminRepository(db),
		Doctors:       NewDoctorRepository(db),
		Patients:      NewPatientRepository(db),
		Notifications: NewNotificationRepository(db),
	}
}

func (r *mongoAdminRepo) FindByEmail(ctx context.Context, email string) (*model.Admin, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoAdminRepo) FindByUHID(ctx context.Context, uhid string) (*model.Admin, error) {
	return r.findOne(ctx, bson.M{"uhid": uhid})
}

func (r *mongoAdminRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.Admin, error) {
	return r.findOne(ctx, identifierFilter(identifier))
}

func (r *mongoAdminRepo) findOne(ctx context.Context, filter bson.M) (*model.Admin, error) {
	var admin model.Admin
	err := r.col.FindOne(ctx, filter).Decode(&admin)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

func (r *mongoAdminRepo) Insert(ctx context.Context, admin *model.Admin) (string, error) {
	res, err := r.col.InsertOne(ctx, admin)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (r *mongoAdminRepo) PushDoctorCreated(ctx context.Context, adminEmail, doctorEmail string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"email": adminEmail},
		bson.M{"$push": bson.M{"doctors_created": doctorEmail}})
	return err
}

func (r *mongoAdminRepo) PushPatientCreated(ctx context.Context, adminEmail, patientEmail string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"email": adminEmail},
		bson.M{"$push": bson.M{"patients_created": patientEmail}})
	return err
}

func (r *mongoAdminRepo) SetPassword(ctx context.Context, uhid, newPassword string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"uhid": uhid},
		bson.M{"$set": bson.M{"password": newPassword}})
	return err
}

// identifierFilter builds the email-or-uhid-or-phone predicate shared by the
// login lookups of all three roles.
func identifierFilter(identifier string) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"email": identifier},
		bson.M{"uhid": identifier},
		bson.M{"phone_number": identifier},
	}}
}

func insertedHex(res *mongo.InsertOneResult) string {
	if id, ok := res.InsertedID.(bson.ObjectID); ok {
		return id.Hex()
	}
	return ""
}
