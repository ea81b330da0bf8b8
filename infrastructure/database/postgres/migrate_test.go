package postgres

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMigrationSource(t *testing.T) {
	found, err := migrationSource().FindMigrations()
	require.NoError(t, err)
	require.NotEmpty(t, found)

	assert.Equal(t, "0001_schema.sql", found[0].Id)
	for _, m := range found {
		assert.NotEmpty(t, m.Up, m.Id)
		assert.NotEmpty(t, m.Down, m.Id)
	}
}
