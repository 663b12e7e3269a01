package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// DefaultConfigName is the base name of the covscope configuration file
// (without extension), looked up under a "configs" directory.
const DefaultConfigName = "covscope"

// Config holds the covscope settings. Command line flags override any value
// loaded from the file.
type Config struct {
	// IncludedPaths are the path substrings that scope the report. A file is
	// part of the report when its path contains any of these.
	IncludedPaths []string `mapstructure:"included_paths"`

	// Category selects which coverage category the human-readable summary
	// shows (branches, functions, instantiations, lines, regions).
	Category string `mapstructure:"category"`

	// ExportPath points at an existing coverage export file. When empty, the
	// "test" command discovers it via CodecovPathCommand.
	ExportPath string `mapstructure:"export_path"`

	// OutputPath is where the filtered export is written. Empty means stdout.
	OutputPath string `mapstructure:"output_path"`

	// TestCommand runs the test suite with coverage instrumentation enabled,
	// e.g. ["swift", "test", "--enable-code-coverage"].
	TestCommand []string `mapstructure:"test_command"`

	// CodecovPathCommand prints the location of the coverage export,
	// e.g. ["swift", "test", "--show-codecov-path"].
	CodecovPathCommand []string `mapstructure:"codecov_path_command"`

	// BuildDir is the coverage build directory removed after a "test" run
	// unless KeepArtifacts is set.
	BuildDir      string `mapstructure:"build_dir"`
	KeepArtifacts bool   `mapstructure:"keep_artifacts"`

	LogLevel string `mapstructure:"log_level"`
}

// Load reads a configuration file from the "configs" directory into a struct.
// The configName parameter should be the base name of the file without the
// extension. The result parameter should be a pointer to a struct that the
// configuration will be unmarshaled into.
func Load(configName string, result interface{}) error {
	v := viper.New()
	v.SetConfigName(configName)
	v.SetConfigType("yaml")
	v.AddConfigPath("configs")
	v.AddConfigPath("../configs")    // package-local go test runs
	v.AddConfigPath("../../configs") // deeper packages

	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err := v.Unmarshal(result); err != nil {
		return fmt.Errorf("failed to unmarshal config data: %w", err)
	}

	return nil
}

// LoadConfig loads the covscope configuration and applies defaults.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := Load(DefaultConfigName, cfg); err != nil {
		return nil, err
	}
	ApplyDefaults(cfg)
	return cfg, nil
}

// IsNotFound reports whether err means the configuration file does not
// exist, as opposed to being unreadable or malformed. Callers that can run
// from flags alone treat a missing file as non-fatal.
func IsNotFound(err error) bool {
	var notFound viper.ConfigFileNotFoundError
	return errors.As(err, &notFound)
}

// ApplyDefaults fills the fields a config file may legitimately leave out.
func ApplyDefaults(cfg *Config) {
	if cfg.Category == "" {
		cfg.Category = "lines"
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
}
