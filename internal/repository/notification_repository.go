package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"promcare/model"
)

type mongoNotificationRepo struct {
	col *mongo.Collection
}

func NewNotificationRepository(db *mongo.Database) NotificationRepository {
	return &mongoNotificationRepo{col: db.Collection(notificationCollection)}
}

func (r *mongoNotificationRepo) FindByUHID(ctx context.Context, uhid string) (*model.NotificationDoc, error) {
	var doc model.NotificationDoc
	err := r.col.FindOne(ctx, bson.M{"uhid": uhid}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *mongoNotificationRepo) Insert(ctx context.Context, doc *model.NotificationDoc) error {
	_, err := r.col.InsertOne(ctx, doc)
	return err
}

func (r *mongoNotificationRepo) PushAlerts(ctx context.Context, uhid string, alerts []model.ReminderAlert) error {
	_, err := r.col.UpdateOne(ctx,
		bson.M{"uhid": uhid},
		bson.M{"$push": bson.M{"notifications": bson.M{"$each": alerts}}})
	return err
}

func (r *mongoNotificationRepo) MarkRead(ctx context.Context, uhid, message string) (bool, error) {
	// Positional update on the first alert whose message matches exactly.
	// "no match" and "already read" both surface as modified == false.
	res, err := r.col.UpdateOne(ctx,
		bson.M{"uhid": uhid, "notifications.message": message},
		bson.M{"$set": bson.M{"notifications.$.read": 1}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount > 0, nil
}
