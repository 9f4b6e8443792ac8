package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds all shapespawn configuration.
type Config struct {
	Stage   StageConfig   `yaml:"stage"`
	Spawn   SpawnConfig   `yaml:"spawn"`
	Logging LoggingConfig `yaml:"logging"`
}

// StageConfig describes the document shapes are authored into.
type StageConfig struct {
	// Headless stages have no rendering backend; visual materials are skipped.
	Headless      bool    `yaml:"headless"`
	UpAxis        string  `yaml:"up_axis"` // Y or Z
	MetersPerUnit float64 `yaml:"meters_per_unit"`
}

// SpawnConfig holds spawner defaults used when a shape leaves them unset.
type SpawnConfig struct {
	VisualMaterialPath  string `yaml:"visual_material_path"`
	PhysicsMaterialPath string `yaml:"physics_material_path"`
}

// LoggingConfig configures logging.
type LoggingConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console encoder, stack traces on warn
}

var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Stage: StageConfig{
			UpAxis:        "Z",
			MetersPerUnit: 1.0,
		},
		Spawn: SpawnConfig{
			VisualMaterialPath:  "material",
			PhysicsMaterialPath: "material",
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// Load reads configuration from path, falling back to defaults if the file
// does not exist. Environment overrides are applied last.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	} else if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

// Save writes the configuration to path, creating its directory.
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("SHAPESPAWN_HEADLESS"); v != "" {
		if headless, err := strconv.ParseBool(v); err == nil {
			c.Stage.Headless = headless
		}
	}
	if level := os.Getenv("SHAPESPAWN_LOG_LEVEL"); level != "" {
		c.Logging.Level = strings.ToLower(level)
	}
}

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	switch strings.ToUpper(c.Stage.UpAxis) {
	case "Y", "Z":
	default:
		return fmt.Errorf("invalid up axis: %q (valid: Y, Z)", c.Stage.UpAxis)
	}

	if c.Stage.MetersPerUnit <= 0 {
		return fmt.Errorf("meters_per_unit must be positive, got %v", c.Stage.MetersPerUnit)
	}

	validLevel := false
	for _, l := range ValidLogLevels {
		if c.Logging.Level == l {
			validLevel = true
			break
		}
	}
	if !validLevel {
		return fmt.Errorf("invalid log level: %s (valid: %v)", c.Logging.Level, ValidLogLevels)
	}

	return nil
}
