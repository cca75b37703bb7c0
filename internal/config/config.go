// Package config is for app wide settings that are unmarshalled from viper:
// defaults, then an optional config file, then SSRFIND_* environment
// variables (a .env file included), then command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"slices"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"ssrfind/internal/output"
	"ssrfind/internal/ssr"
)

// EnvPrefix namespaces environment overrides: scan.min-repeat-count is read
// from SSRFIND_SCAN_MIN_REPEAT_COUNT.
const EnvPrefix = "SSRFIND"

// Supported store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// ErrInvalid marks a configuration value outside its domain.
var ErrInvalid = errors.New("invalid configuration")

// DBConfig is for the analysis store
type DBConfig struct {
	// "sqlite" or "postgres"
	Driver string `mapstructure:"driver"`
	// file path for sqlite, connection URL for postgres
	DSN string `mapstructure:"dsn"`
}

// ServerConfig is for `ssrfind serve`
type ServerConfig struct {
	Addr         string `mapstructure:"addr"`
	MaxBodyBytes int64  `mapstructure:"max-body-bytes"`
}

// Config is the root-level settings struct
type Config struct {
	// scanner thresholds
	Scan ssr.Constraints `mapstructure:"scan"`
	// default output format
	Output   string `mapstructure:"output"`
	LogLevel string `mapstructure:"log-level"`
	Quiet    bool   `mapstructure:"quiet"`

	DB     DBConfig     `mapstructure:"db"`
	Server ServerConfig `mapstructure:"server"`
}

// SetDefaults registers every key so that env lookups and Unmarshal see it.
func SetDefaults(v *viper.Viper) {
	d := ssr.DefaultConstraints()
	v.SetDefault("scan.min-repeat-length", d.MinRepeatLength)
	v.SetDefault("scan.max-repeat-length", d.MaxRepeatLength)
	v.SetDefault("scan.min-repeat-count", d.MinRepeatCount)
	v.SetDefault("scan.min-tandem-length", d.MinTandemLength)
	v.SetDefault("scan.mismatch-percentage", d.MismatchPercentage)
	v.SetDefault("output", output.FormatCSV)
	v.SetDefault("log-level", "info")
	v.SetDefault("quiet", false)
	v.SetDefault("db.driver", DriverSQLite)
	v.SetDefault("db.dsn", "ssrfind.db")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.max-body-bytes", int64(32<<20))
}

// LoadEnvFile exports the variables of a dotenv file into the process
// environment without overriding variables that are already set. An empty
// path tries ./.env and ignores its absence.
func LoadEnvFile(path string) error {
	if path == "" {
		if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("config: .env: %w", err)
		}
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("config: env file %s: %w", path, err)
	}
	return nil
}

// New returns a viper instance with defaults, env binding and, when
// configFile is non-empty, that file merged in. Without configFile an
// ssrfind.{yaml,toml,json} in the working directory is used if present.
func New(configFile string) (*viper.Viper, error) {
	v := viper.New()
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", configFile, err)
		}
		return v, nil
	}
	v.SetConfigName("ssrfind")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("config: %w", err)
		}
	}
	return v, nil
}

// Decode unmarshals v into a Config and validates it.
func Decode(v *viper.Viper) (Config, error) {
	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("config: unable to decode: %w", err)
	}
	c.Output = strings.ToLower(c.Output)
	c.DB.Driver = strings.ToLower(c.DB.Driver)
	c.LogLevel = strings.ToLower(c.LogLevel)
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values Decode cannot type-check.
func (c Config) Validate() error {
	if err := c.Scan.Validate(); err != nil {
		return err
	}
	if !slices.Contains(output.Formats(), c.Output) {
		return fmt.Errorf("%w: output %q (want one of %s)", ErrInvalid, c.Output, strings.Join(output.Formats(), ", "))
	}
	switch c.DB.Driver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: db.driver %q (want sqlite or postgres)", ErrInvalid, c.DB.Driver)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log-level %q", ErrInvalid, c.LogLevel)
	}
	if c.Server.MaxBodyBytes <= 0 {
		return fmt.Errorf("%w: server.max-body-bytes must be positive", ErrInvalid)
	}
	return nil
}
