package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssrfind/internal/ssr"
)

// clearEnv makes sure key is unset for the test and restored afterwards.
func clearEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestDefaults(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	c, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, ssr.DefaultConstraints(), c.Scan)
	assert.Equal(t, "csv", c.Output)
	assert.Equal(t, DriverSQLite, c.DB.Driver)
	assert.Equal(t, ":8080", c.Server.Addr)
	assert.EqualValues(t, 32<<20, c.Server.MaxBodyBytes)
}

func TestConfigFileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ssrfind.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
scan:
  min-repeat-count: 5
  mismatch-percentage: 10
output: json
db:
  driver: postgres
  dsn: postgres://localhost/ssr
`), 0o644))
	t.Setenv("SSRFIND_SCAN_MISMATCH_PERCENTAGE", "25")

	v, err := New(path)
	require.NoError(t, err)
	c, err := Decode(v)
	require.NoError(t, err)

	assert.Equal(t, 5, c.Scan.MinRepeatCount)
	assert.Equal(t, 25, c.Scan.MismatchPercentage, "env beats the config file")
	assert.Equal(t, 6, c.Scan.MaxRepeatLength, "untouched keys keep defaults")
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, DriverPostgres, c.DB.Driver)
	assert.Equal(t, "postgres://localhost/ssr", c.DB.DSN)
}

func TestDecodeIgnoresCase(t *testing.T) {
	v, err := New("")
	require.NoError(t, err)
	v.Set("log-level", "INFO")
	v.Set("output", "JSON")
	v.Set("db.driver", "SQLite")

	c, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, "json", c.Output)
	assert.Equal(t, DriverSQLite, c.DB.Driver)
}

func TestMissingConfigFile(t *testing.T) {
	_, err := New(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestEnvFile(t *testing.T) {
	clearEnv(t, "SSRFIND_SCAN_MIN_TANDEM_LENGTH", "SSRFIND_OUTPUT")
	t.Setenv("SSRFIND_OUTPUT", "jsonl")

	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SSRFIND_SCAN_MIN_TANDEM_LENGTH=18\nSSRFIND_OUTPUT=text\n"), 0o644))
	require.NoError(t, LoadEnvFile(path))

	v, err := New("")
	require.NoError(t, err)
	c, err := Decode(v)
	require.NoError(t, err)
	assert.Equal(t, 18, c.Scan.MinTandemLength)
	assert.Equal(t, "jsonl", c.Output, "real environment is not overridden by .env")
}

func TestEnvFileMissing(t *testing.T) {
	require.Error(t, LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")))
	t.Chdir(t.TempDir())
	assert.NoError(t, LoadEnvFile(""), "absent ./.env is fine")
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		v, err := New("")
		require.NoError(t, err)
		c, err := Decode(v)
		require.NoError(t, err)
		return &c
	}
	tests := []struct {
		name   string
		mutate func(*Config)
		is     error
	}{
		{"bad output", func(c *Config) { c.Output = "xml" }, ErrInvalid},
		{"bad driver", func(c *Config) { c.DB.Driver = "mysql" }, ErrInvalid},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, ErrInvalid},
		{"zero body cap", func(c *Config) { c.Server.MaxBodyBytes = 0 }, ErrInvalid},
		{"bad constraints", func(c *Config) { c.Scan.MinRepeatCount = 0 }, ssr.ErrConstraint},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := base()
			tt.mutate(c)
			assert.ErrorIs(t, c.Validate(), tt.is)
		})
	}
}
