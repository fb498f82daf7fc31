package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the main configuration for artag.
type Config struct {
	InstallID string         `toml:"install_id"`
	BaseDir   string         `toml:"base_dir"`
	LogDir    string         `toml:"log_dir"`
	Database  DatabaseConfig `toml:"database"`
	Media     MediaConfig    `toml:"media"`
	Reader    ReaderConfig   `toml:"reader"`
	Auth      AuthConfig     `toml:"auth"`
}

// DatabaseConfig represents configuration for the registry database.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type DatabaseConfig struct {
	Type    string `toml:"type"`               // "sqlite" or "memory"
	DataDir string `toml:"data_dir,omitempty"` // only used for type=sqlite
}

// MediaConfig represents configuration for the image store.
// This uses a tagged union pattern - the Type field determines which other fields are relevant.
type MediaConfig struct {
	Type string `toml:"type"` // "filesystem", "s3", or "memory"

	// Filesystem-specific fields (only used when Type == "filesystem")
	FSRoot    string `toml:"fs_root,omitempty"`
	FSBaseURL string `toml:"fs_base_url,omitempty"` // public URL prefix mapped onto fs_root

	// S3-specific fields (only used when Type == "s3")
	S3Bucket  string `toml:"s3_bucket,omitempty"`
	S3Prefix  string `toml:"s3_prefix,omitempty"`
	S3Region  string `toml:"s3_region,omitempty"`
	S3BaseURL string `toml:"s3_base_url,omitempty"` // overrides the derived public URL prefix

	// Static credentials. When empty, the default AWS credential chain is used.
	S3AccessKeyID     string `toml:"s3_access_key_id,omitempty"`
	S3SecretAccessKey string `toml:"s3_secret_access_key,omitempty"`
}

// ReaderConfig represents configuration for the NFC reader.
type ReaderConfig struct {
	Type               string `toml:"type"`             // "libnfc" or "memory"
	Device             string `toml:"device,omitempty"` // libnfc connection string, empty = first device
	ReadTimeoutSeconds int    `toml:"read_timeout_seconds"`
}

// ReadTimeout returns the poll deadline as a duration.
func (c ReaderConfig) ReadTimeout() time.Duration {
	return time.Duration(c.ReadTimeoutSeconds) * time.Second
}

// AuthConfig holds the session-token settings and the key paths used to
// encrypt the session file at rest.
type AuthConfig struct {
	Secret               string `toml:"secret"` // HMAC secret for session tokens
	TokenValidityMinutes int    `toml:"token_validity_minutes"`
	PublicKeyPath        string `toml:"public_key_path"`
	PrivateKeyPath       string `toml:"private_key_path"`
	SessionPath          string `toml:"session_path"`
}

// TokenValidity returns the session token lifetime as a duration.
func (c AuthConfig) TokenValidity() time.Duration {
	return time.Duration(c.TokenValidityMinutes) * time.Minute
}

// NewConfig creates a new Config with the provided values and default paths.
func NewConfig(installID, secret, baseDir string) *Config {
	return &Config{
		InstallID: installID,
		BaseDir:   baseDir,
		LogDir:    filepath.Join(baseDir, "log"),
		Database: DatabaseConfig{
			Type:    "sqlite",
			DataDir: filepath.Join(baseDir, "db"),
		},
		Media: MediaConfig{
			Type:      "filesystem",
			FSRoot:    filepath.Join(baseDir, "media"),
			FSBaseURL: "file://" + filepath.Join(baseDir, "media"),
		},
		Reader: ReaderConfig{
			Type:               "libnfc",
			ReadTimeoutSeconds: 30,
		},
		Auth: AuthConfig{
			Secret:               secret,
			TokenValidityMinutes: 24 * 60,
			PublicKeyPath:        filepath.Join(baseDir, "keys", "artag.pub"),
			PrivateKeyPath:       filepath.Join(baseDir, "keys", "artag.key"),
			SessionPath:          filepath.Join(baseDir, "session"),
		},
	}
}

// Manager handles reading and writing configuration.
type Manager struct{}

// Read decodes a Config from the provided reader.
func (m *Manager) Read(r io.Reader) (*Config, error) {
	var cfg Config
	if _, err := toml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

// Write encodes a Config to the provided writer.
func (m *Manager) Write(w io.Writer, cfg *Config) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

// ReadFromFile reads a Config from the specified file path.
func ReadFromFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	cfg, err := m.Read(f)
	if err != nil {
		return nil, fmt.Errorf("reading config from %s: %w", path, err)
	}
	return cfg, nil
}

// writeToFile writes a Config to the specified file path.
// This is an internal helper and should not be exported.
func writeToFile(path string, cfg *Config) error {
	// Ensure the directory exists
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	m := &Manager{}
	if err := m.Write(f, cfg); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}
	return nil
}

// Init initializes a new config file at the specified path with the provided Config.
func Init(path string, cfg *Config) error {
	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file already exists at %s", path)
	}

	if err := writeToFile(path, cfg); err != nil {
		return fmt.Errorf("initializing config: %w", err)
	}
	return nil
}
