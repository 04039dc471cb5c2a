// Package bootstrap runs one-time startup work against the database.
package bootstrap

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func uniqueIndex(field string) mongo.IndexModel {
	return mongo.IndexModel{
		Keys:    bson.D{{Key: field, Value: 1}},
		Options: options.Index().SetUnique(true),
	}
}

// adminIndexes deduplicates admins on email alone; a shared uhid or phone
// number between admins is allowed, mirroring the registration pre-check.
func adminIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{uniqueIndex("email")}
}

// identityIndexes backstops the doctor/patient registration pre-checks, where
// email, uhid and phone number must each be unique.
func identityIndexes() []mongo.IndexModel {
	return []mongo.IndexModel{
		uniqueIndex("email"),
		uniqueIndex("uhid"),
		uniqueIndex("phone_number"),
	}
}

// EnsureIndexes creates the uniqueness backstops behind the handlers'
// pre-insert checks. Creation is idempotent.
func EnsureIndexes(db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := db.Collection("Admin_Lobby").Indexes().CreateMany(ctx, adminIndexes()); err != nil {
		return err
	}

	for _, col := range []string{"Doctor_Lobby", "Patient_Data"} {
		if _, err := db.Collection(col).Indexes().CreateMany(ctx, identityIndexes()); err != nil {
			return err
		}
	}

	_, err := db.Collection("Notification_Data").Indexes().CreateOne(ctx, uniqueIndex("uhid"))
	return err
}
