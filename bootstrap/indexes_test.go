package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func indexedFields(t *testing.T, models []mongo.IndexModel) []string {
	t.Helper()
	fields := make([]string, 0, len(models))
	for _, m := range models {
		keys, ok := m.Keys.(bson.D)
		require.True(t, ok)
		require.Len(t, keys, 1)
		fields = append(fields, keys[0].Key)
	}
	return fields
}

func TestAdminIndexes_EmailOnly(t *testing.T) {
	// A second admin may share a uhid or phone number; only the email is
	// enforced unique, matching the registration pre-check.
	assert.Equal(t, []string{"email"}, indexedFields(t, adminIndexes()))
}

func TestIdentityIndexes_CoverAllThreeFields(t *testing.T) {
	assert.Equal(t,
		[]string{"email", "uhid", "phone_number"},
		indexedFields(t, identityIndexes()))
}
