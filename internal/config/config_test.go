package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "tracklens.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_AllFields(t *testing.T) {
	path := writeConfig(t, `
[output]
format = "json"

[cache]
path = "/var/lib/tracklens/cache.db"

[sort]
column = "seeders"
direction = "desc"

[source]
table_selector = "table.releases"
row_selector = "tr.row"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Output.Format)
	assert.Equal(t, "/var/lib/tracklens/cache.db", cfg.Cache.Path)
	assert.Equal(t, "seeders", cfg.Sort.Column)
	assert.Equal(t, "desc", cfg.Sort.Direction)
	assert.Equal(t, "table.releases", cfg.Source.TableSelector)
	assert.Equal(t, "tr.row", cfg.Source.RowSelector)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "table", cfg.Output.Format)
	assert.Equal(t, "./tracklens.db", cfg.Cache.Path)
	assert.Equal(t, "", cfg.Sort.Column, "no sort by default")
	assert.Equal(t, "asc", cfg.Sort.Direction)
	assert.Equal(t, "table.torrent_table", cfg.Source.TableSelector)
	assert.Equal(t, "tr", cfg.Source.RowSelector)

	assert.Equal(t, cfg, Default())
}

func TestLoad_EnvSubstitution(t *testing.T) {
	t.Setenv("TRACKLENS_TEST_CACHE", "/tmp/from-env.db")

	path := writeConfig(t, `
[cache]
path = "${TRACKLENS_TEST_CACHE}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/tmp/from-env.db", cfg.Cache.Path)
}

func TestLoad_UnsetEnvVarLeftVerbatim(t *testing.T) {
	path := writeConfig(t, `
[cache]
path = "${TRACKLENS_DEFINITELY_UNSET}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "${TRACKLENS_DEFINITELY_UNSET}", cfg.Cache.Path)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

func TestLoad_InvalidTOML(t *testing.T) {
	path := writeConfig(t, "[output\nformat =")
	_, err := Load(path)
	assert.Error(t, err)
}
