package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateMigration(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "add counter readings", "Append-only readings table")
	require.NoError(t, err)

	assert.Len(t, mf.Version, 14)
	assert.True(t, strings.HasSuffix(mf.UpPath, "_add_counter_readings.up.sql"), mf.UpPath)
	assert.True(t, strings.HasSuffix(mf.DownPath, "_add_counter_readings.down.sql"), mf.DownPath)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "-- Migration: add counter readings")
	assert.Contains(t, string(up), "-- Description: Append-only readings table")
	assert.Contains(t, string(up), "UP migration")

	down, err := os.ReadFile(mf.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")
	assert.Contains(t, string(down), "DOWN migration")
}

func TestCreateMigration_NoDescription(t *testing.T) {
	dir := t.TempDir()

	mf, err := CreateMigration(dir, "drop_legacy_index", "")
	require.NoError(t, err)

	up, err := os.ReadFile(mf.UpPath)
	require.NoError(t, err)
	assert.NotContains(t, string(up), "-- Description:")
}

func TestCreateMigration_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := CreateMigration(dir, "init", "")
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		name     string
		expected string
	}{
		{"add counter readings", "add_counter_readings"},
		{"Add-Tenant Index", "add_tenant_index"},
		{"weird!!chars##here", "weirdcharshere"},
		{"  spaced  out  ", "spaced_out"},
		{"v2 schema", "v2_schema"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, slugify(tt.name))
		})
	}
}

func TestListMigrations(t *testing.T) {
	dir := t.TempDir()

	for _, base := range []string{"20240301120000_counters", "20240101090000_users"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, base+".up.sql"), []byte("-- up"), 0644))
		require.NoError(t, os.WriteFile(filepath.Join(dir, base+".down.sql"), []byte("-- down"), 0644))
	}
	// Stray files are ignored
	require.NoError(t, os.WriteFile(filepath.Join(dir, "README.md"), []byte("docs"), 0644))

	migrations, err := ListMigrations(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240101090000_users", "20240301120000_counters"}, migrations)
}

func TestListMigrations_MissingDirectory(t *testing.T) {
	migrations, err := ListMigrations(filepath.Join(t.TempDir(), "does-not-exist"))

	require.NoError(t, err)
	assert.Empty(t, migrations)
}
