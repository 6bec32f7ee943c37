// Package config provides layered configuration for wikify using koanf.
// Configuration is loaded with priority: overrides (command-line flags) >
// environment variables (WIKIFY_*) > project config (.wikify.yml, or the
// legacy .wikify.json) > user config (~/.config/wikify/config.yml) > defaults.
package config

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/wildbearsoftware/wikify/internal/notes"
	"github.com/wildbearsoftware/wikify/internal/page"
	"github.com/wildbearsoftware/wikify/internal/release"
	goyaml "gopkg.in/yaml.v3"
)

// EnvPrefix is the prefix of environment variables read as configuration.
const EnvPrefix = "WIKIFY_"

// Configuration represents the wikify configuration
type Configuration struct {
	// BaseURL is the download area the table rows link into.
	BaseURL string `koanf:"base_url" yaml:"base_url" validate:"required,url"`
	// Files is the ordered release listing. {{VERSION}} is replaced by the
	// version being released. Can be set via WIKIFY_FILES as a comma list.
	Files []string `koanf:"files" yaml:"files" validate:"min=1,dive,required"`
	// NewsFile is the changelog the release notes are taken from.
	NewsFile string `koanf:"news_file" yaml:"news_file" validate:"required"`
	// Dir holds the release files and the NEWS file.
	Dir string `koanf:"dir" yaml:"dir" validate:"required"`
	// Digest selects the checksum shown in the table: md5 | sha1 | sha256
	Digest string `koanf:"digest" yaml:"digest" validate:"oneof=md5 sha1 sha256"`
	// Stability is the label shown next to the version in the page title.
	Stability string `koanf:"stability" yaml:"stability" validate:"required"`
	// Notes configures the NEWS section boundaries.
	Notes NotesConfig `koanf:"notes" yaml:"notes"`
	// Debug enables debug logging to stderr.
	Debug bool `koanf:"debug" yaml:"debug"`
}

// NotesConfig configures where a release notes section ends.
type NotesConfig struct {
	EndMarker  string `koanf:"end_marker" yaml:"end_marker" validate:"required"`
	RulePrefix string `koanf:"rule_prefix" yaml:"rule_prefix" validate:"required"`
}

// LoadOptions configures how configuration is loaded
type LoadOptions struct {
	// ProjectConfigPath overrides the project config path (default: .wikify.yml)
	ProjectConfigPath string
	// Overrides are applied last, keyed like the config file (e.g. "digest").
	Overrides map[string]interface{}
	// WarningWriter receives deprecation warnings (default: os.Stderr)
	WarningWriter io.Writer
}

// LoadWithOptions loads configuration from defaults, user, project,
// environment and override sources.
func LoadWithOptions(opts LoadOptions) (*Configuration, error) {
	k := koanf.New(".")
	warningWriter := getWarningWriter(opts.WarningWriter)

	loadDefaults(k)

	if err := loadUserConfig(k); err != nil {
		return nil, err
	}

	if err := loadProjectConfig(k, opts.ProjectConfigPath, warningWriter); err != nil {
		return nil, err
	}

	if err := loadEnvironmentConfig(k); err != nil {
		return nil, err
	}

	for key, value := range opts.Overrides {
		if err := k.Set(key, value); err != nil {
			return nil, fmt.Errorf("applying override %s: %w", key, err)
		}
	}

	return finalizeConfig(k)
}

// getWarningWriter returns the warning writer or defaults to stderr
func getWarningWriter(w io.Writer) io.Writer {
	if w == nil {
		return os.Stderr
	}
	return w
}

// loadDefaults applies default configuration values
func loadDefaults(k *koanf.Koanf) {
	for key, value := range GetDefaults() {
		k.Set(key, value)
	}
}

// loadUserConfig loads ~/.config/wikify/config.yml when it exists.
func loadUserConfig(k *koanf.Koanf) error {
	userPath, _ := UserConfigPath()
	if !fileExists(userPath) {
		return nil
	}
	if err := loadYAMLConfig(k, userPath, "user"); err != nil {
		return fmt.Errorf("loading user config: %w", err)
	}
	return nil
}

// loadProjectConfig loads the project config (YAML preferred, legacy JSON supported).
// A custom path is loaded with the parser matching its extension.
func loadProjectConfig(k *koanf.Koanf, customPath string, warningWriter io.Writer) error {
	if customPath != "" {
		if !fileExists(customPath) {
			return fmt.Errorf("config file not found: %s", customPath)
		}
		if strings.HasSuffix(customPath, ".json") {
			return loadJSONConfig(k, customPath, "project")
		}
		return loadYAMLConfig(k, customPath, "project")
	}

	yamlPath := ProjectConfigPath()
	jsonPath := LegacyProjectConfigPath()
	yamlExists := fileExists(yamlPath)
	jsonExists := fileExists(jsonPath)

	switch {
	case yamlExists:
		if err := loadYAMLConfig(k, yamlPath, "project"); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		if jsonExists {
			fmt.Fprintf(warningWriter, "Warning: %s found alongside %s (ignored)\n\n", jsonPath, yamlPath)
		}
	case jsonExists:
		if err := loadJSONConfig(k, jsonPath, "project"); err != nil {
			return fmt.Errorf("loading project config: %w", err)
		}
		fmt.Fprintf(warningWriter, "Warning: Using deprecated JSON config at %s\n", jsonPath)
		fmt.Fprintf(warningWriter, "  Rename it to %s and convert it to YAML.\n\n", yamlPath)
	}
	return nil
}

// loadYAMLConfig validates and loads a YAML config file
func loadYAMLConfig(k *koanf.Koanf, path, configType string) error {
	if err := ValidateYAMLSyntax(path); err != nil {
		return fmt.Errorf("validating YAML syntax for %s config: %w", configType, err)
	}
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	log.Printf("[config] debug: loaded %s config %s", configType, path)
	return nil
}

// loadJSONConfig loads a JSON config file
func loadJSONConfig(k *koanf.Koanf, path, configType string) error {
	if err := k.Load(file.Provider(path), json.Parser()); err != nil {
		return fmt.Errorf("failed to load %s config %s: %w", configType, path, err)
	}
	log.Printf("[config] debug: loaded %s config %s", configType, path)
	return nil
}

// loadEnvironmentConfig loads environment variable overrides
func loadEnvironmentConfig(k *koanf.Koanf) error {
	if err := k.Load(env.ProviderWithValue(EnvPrefix, ".", envTransform), nil); err != nil {
		return fmt.Errorf("failed to load environment config: %w", err)
	}
	return nil
}

// finalizeConfig unmarshals and validates the merged configuration
func finalizeConfig(k *koanf.Koanf) (*Configuration, error) {
	var cfg Configuration
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := ValidateConfigValues(&cfg, "config"); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	cfg.Dir = expandHomePath(cfg.Dir)
	return &cfg, nil
}

// fileExists returns true if the file exists and is readable
func fileExists(path string) bool {
	if path == "" {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// envTransform converts environment variables to config keys.
// Example: WIKIFY_NOTES__END_MARKER -> notes.end_marker
// WIKIFY_FILES is split on commas.
func envTransform(key, value string) (string, interface{}) {
	key = strings.ToLower(strings.TrimPrefix(key, EnvPrefix))
	key = strings.ReplaceAll(key, "__", ".")
	if key == "files" {
		var files []string
		for _, f := range strings.Split(value, ",") {
			if f = strings.TrimSpace(f); f != "" {
				files = append(files, f)
			}
		}
		return key, files
	}
	return key, value
}

// expandHomePath expands ~ to the user's home directory
func expandHomePath(path string) string {
	if strings.HasPrefix(path, "~/") {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(homeDir, path[2:])
		}
	}
	return path
}

// Rules returns the notes section boundaries.
func (c *Configuration) Rules() notes.Rules {
	return notes.Rules{EndMarker: c.Notes.EndMarker, RulePrefix: c.Notes.RulePrefix}
}

// Generator builds the page generator described by the configuration.
func (c *Configuration) Generator() (*page.Generator, error) {
	algo, err := release.ParseAlgorithm(c.Digest)
	if err != nil {
		return nil, err
	}
	return &page.Generator{
		Table: &release.Builder{
			Dir:       c.Dir,
			BaseURL:   c.BaseURL,
			Templates: append([]string(nil), c.Files...),
			Algorithm: algo,
			Stability: c.Stability,
		},
		NewsFile: c.NewsFile,
		Rules:    c.Rules(),
	}, nil
}

// YAML renders the effective configuration in config file form.
func (c *Configuration) YAML() ([]byte, error) {
	return goyaml.Marshal(c)
}
