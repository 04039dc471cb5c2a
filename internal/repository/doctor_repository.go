package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"promcare/model"
)

type mongoDoctorRepo struct {
	col *mongo.Collection
}

func NewDoctorRepository(db *mongo.Database) DoctorRepository {
	return &mongoDoctorRepo{col: db.Collection(doctorCollection)}
}

func (r *mongoDoctorRepo) FindByEmail(ctx context.Context, email string) (*model.Doctor, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *mongoDoctorRepo) FindByUHID(ctx context.Context, uhid string) (*model.Doctor, error) {
	return r.findOne(ctx, bson.M{"uhid": uhid})
}

func (r *mongoDoctorRepo) FindByIdentifier(ctx context.Context, identifier string) (*model.Doctor, error) {
	return r.findOne(ctx, identifierFilter(identifier))
}

func (r *mongoDoctorRepo) findOne(ctx context.Context, filter bson.M) (*model.Doctor, error) {
	var doctor model.Doctor
	err := r.col.FindOne(ctx, filter).Decode(&doctor)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doctor, nil
}

func (r *mongoDoctorRepo) ExistsByAny(ctx context.Context, email, uhid, phone string) (bool, error) {
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

func (r *mongoDoctorRepo) Insert(ctx context.Context, doctor *model.Doctor) (string, error) {
	res, err := r.col.InsertOne(ctx, doctor)
	if err != nil {
		return "", err
	}
	return insertedHex(res), nil
}

func (r *mongoDoctorRepo) FindAll(ctx context.Context) ([]model.Doctor, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var doctors []model.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (r *mongoDoctorRepo) SetPassword(ctx context.Context, uhid, newPassword string) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"uhid": uhid},
		bson.M{"$set": bson.M{"password": newPassword}})
	return err
}
