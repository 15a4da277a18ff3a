package migration

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceFindsOrderedMigrations(t *testing.T) {
	migrations, err := Source().FindMigrations()
	require.NoError(t, err)
	require.Len(t, migrations, 5)

	assert.True(t, strings.HasSuffix(migrations[0].Id, "create_users.sql"))
	assert.True(t, strings.HasSuffix(migrations[4].Id, "create_oauth_states.sql"))
	for _, m := range migrations {
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}
}

func TestUniqueIndexNamesMatchRepositoryMapping(t *testing.T) {
	migrations, err := Source().FindMigrations()
	require.NoError(t, err)

	users := strings.Join(migrations[0].Up, "\n")
	assert.Contains(t, users, "users_email_key")
	assert.Contains(t, users, "users_username_key")

	journals := strings.Join(migrations[1].Up, "\n")
	assert.Contains(t, journals, "LOWER(title)")
}
