package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FileName is the default config file name in a working directory.
const FileName = "qrtrecon.yaml"

// Config represents the top-level qrtrecon.yaml configuration.
type Config struct {
	Platform     PlatformConfig      `yaml:"platform"`
	Thresholds   ThresholdsConfig    `yaml:"thresholds"`
	Targets      map[string]string   `yaml:"targets,omitempty"` // category -> expected total, decimal string
	Keywords     map[string][]string `yaml:"keywords,omitempty"`
	Repair       RepairConfig        `yaml:"repair"`
	Calibrations string              `yaml:"calibrations"`
	LogLevel     string              `yaml:"log_level"`
}

// PlatformConfig locates the external QRT Closure Platform.
type PlatformConfig struct {
	BaseURL        string `yaml:"base_url"`
	TenantID       string `yaml:"tenant_id"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// ThresholdsConfig controls extraction and comparison sensitivity.
type ThresholdsConfig struct {
	// Significance is the minimum absolute cell value the extractor keeps.
	Significance string `yaml:"significance"`
	// MatchTolerance is the comparator's match cutoff in currency units.
	MatchTolerance string `yaml:"match_tolerance"`
}

// RepairConfig locates the platform database for administrative repairs.
type RepairConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// Load reads a qrtrecon.yaml file from disk.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyEnv()
	return &cfg, nil
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new working directory.
func Default(baseURL, tenantID string) *Config {
	return &Config{
		Platform: PlatformConfig{
			BaseURL:        baseURL,
			TenantID:       tenantID,
			TimeoutSeconds: 15,
		},
		Thresholds: ThresholdsConfig{
			Significance:   "1000",
			MatchTolerance: "1.00",
		},
		Calibrations: "calibrations.yaml",
		LogLevel:     "info",
	}
}

// Timeout returns the platform request timeout.
func (c *Config) Timeout() time.Duration {
	if c.Platform.TimeoutSeconds <= 0 {
		return 15 * time.Second
	}
	return time.Duration(c.Platform.TimeoutSeconds) * time.Second
}

// LoadEnv loads a .env file if present. Missing files are fine; the process
// environment still applies.
func LoadEnv() {
	_ = godotenv.Load()
}

// Token returns the platform API bearer token from the environment.
func Token() string {
	return os.Getenv("QRT_API_TOKEN")
}

// applyEnv lets the environment override file settings, so tokens and
// deployment-specific paths stay out of the YAML.
func (c *Config) applyEnv() {
	if v := os.Getenv("QRT_BASE_URL"); v != "" {
		c.Platform.BaseURL = v
	}
	if v := os.Getenv("QRT_TENANT_ID"); v != "" {
		c.Platform.TenantID = v
	}
	if v := os.Getenv("QRT_DATABASE_PATH"); v != "" {
		c.Repair.DatabasePath = v
	}
}
