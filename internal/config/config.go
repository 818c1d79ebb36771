// Package config loads guidgen settings from a YAML file and the environment.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/guid"
	"github.com/Lzww0608/guid/serial"
)

// EnvDSN overrides the dsn key when set.
const EnvDSN = "GUIDGEN_DSN"

// ErrInvalid is returned by Validate for unknown enum values.
var ErrInvalid = errors.New("config: invalid value")

// LogConfig holds the log section.
type LogConfig struct {
	Level   string `yaml:"level"`
	Console bool   `yaml:"console"`
}

// Config is the guidgen configuration file. Flags override it per command.
type Config struct {
	Namespace string    `yaml:"namespace"`
	Hash      string    `yaml:"hash"`
	Order     string    `yaml:"order"`
	Format    string    `yaml:"format"`
	Codec     string    `yaml:"codec"`
	DSN       string    `yaml:"dsn"`
	Table     string    `yaml:"table"`
	Log       LogConfig `yaml:"log"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Namespace: "dns",
		Hash:      "sha1",
		Order:     "rfc",
		Format:    "text",
		Codec:     "json",
		Table:     "guid_keys",
		Log:       LogConfig{Level: "info", Console: true},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
// Unknown keys are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if err := cfg.decode(f); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse reads YAML from data over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(strings.NewReader(string(data))); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c *Config) decode(r io.Reader) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// ApplyEnv copies environment overrides into c.
func (c *Config) ApplyEnv() {
	if dsn, ok := os.LookupEnv(EnvDSN); ok && dsn != "" {
		c.DSN = dsn
	}
}

// Validate rejects unknown enum values.
func (c *Config) Validate() error {
	if _, err := c.NamespaceUUID(); err != nil {
		return fmt.Errorf("%w: namespace %q", ErrInvalid, c.Namespace)
	}
	if _, err := c.HashKind(); err != nil {
		return err
	}
	if !oneOf(c.Order, "rfc", "sql", "sqlserver", "mysql") {
		return fmt.Errorf("%w: order %q", ErrInvalid, c.Order)
	}
	if !oneOf(c.Format, "text", "hex", "base64") {
		return fmt.Errorf("%w: format %q", ErrInvalid, c.Format)
	}
	if !oneOf(c.Codec, serial.Codecs()...) {
		return fmt.Errorf("%w: codec %q", ErrInvalid, c.Codec)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// NamespaceUUID resolves the namespace key: a short name or a GUID literal.
func (c *Config) NamespaceUUID() (guid.UUID, error) {
	return guid.NamespaceByName(c.Namespace)
}

// HashKind maps the hash key, case-insensitively, to a guid.HashKind. An
// empty value selects SHA-1.
func (c *Config) HashKind() (guid.HashKind, error) {
	switch strings.ToLower(c.Hash) {
	case "sha1", "":
		return guid.SHA1, nil
	case "md5":
		return guid.MD5, nil
	default:
		return 0, fmt.Errorf("%w: hash %q", ErrInvalid, c.Hash)
	}
}

// LogLevel parses log.level. An empty value selects info.
func (c *Config) LogLevel() (zerolog.Level, error) {
	if c.Log.Level == "" {
		return zerolog.InfoLevel, nil
	}
	lvl, err := zerolog.ParseLevel(c.Log.Level)
	if err != nil {
		return zerolog.NoLevel, fmt.Errorf("%w: log.level %q", ErrInvalid, c.Log.Level)
	}
	return lvl, nil
}

func oneOf(v string, allowed ...string) bool {
	for _, a := range allowed {
		if v == a {
			return true
		}
	}
	return false
}
