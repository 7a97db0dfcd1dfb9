package main

import (
	_ "embed"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const defaultConfigDir = ".notego"

//go:embed config/settings.yaml
var defaultSettingsYAML string

// Settings represents the YAML configuration structure
type Settings struct {
	OutputDirectory  string `yaml:"output_directory"`
	Extension        string `yaml:"extension"`
	DateField        string `yaml:"date_field"`
	DescriptionLines int    `yaml:"description_lines"`
	Attachments      bool   `yaml:"attachments"`
	TemplatePath     string `yaml:"template_path"`
	Converter        struct {
		Domain         string `yaml:"domain"`
		GitHubFlavored bool   `yaml:"github_flavored"`
	} `yaml:"converter"`
	Script struct {
		Interpreter string `yaml:"interpreter"`
	} `yaml:"script"`
}

// GetConfigPath returns the path to a file in the config directory
func GetConfigPath(filename string) string {
	return filepath.Join(defaultConfigDir, filename)
}

// defaultSettings decodes the embedded settings.yaml
func defaultSettings() *Settings {
	var settings Settings
	if err := yaml.Unmarshal([]byte(defaultSettingsYAML), &settings); err != nil {
		log.Fatalf("Critical error: embedded settings are invalid: %v", err)
	}
	return &settings
}

// loadSettings reads settingsPath on top of the defaults. A missing file yields the defaults.
func loadSettings(settingsPath string) (*Settings, error) {
	settings := defaultSettings()

	data, err := os.ReadFile(settingsPath)
	if os.IsNotExist(err) {
		debugLog("no settings at %s, using defaults", settingsPath)
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading settings %s: %w", settingsPath, err)
	}

	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("parsing settings %s: %w", settingsPath, err)
	}
	return settings, nil
}

// loadSettingsRequired is loadSettings for an explicitly named file, which must exist
func loadSettingsRequired(settingsPath string) (*Settings, error) {
	if _, err := os.Stat(settingsPath); err != nil {
		return nil, fmt.Errorf("settings file %s: %w", settingsPath, err)
	}
	return loadSettings(settingsPath)
}

// ensureConfigExists creates the config directory and writes settings.yaml if needed.
// It reports whether a new file was written.
func ensureConfigExists() (string, bool, error) {
	if err := os.MkdirAll(defaultConfigDir, 0755); err != nil {
		return "", false, fmt.Errorf("creating config directory: %w", err)
	}

	settingsFile := GetConfigPath("settings.yaml")
	if _, err := os.Stat(settingsFile); err == nil {
		return settingsFile, false, nil
	}

	if err := os.WriteFile(settingsFile, []byte(defaultSettingsYAML), 0644); err != nil {
		return "", false, fmt.Errorf("writing settings.yaml: %w", err)
	}
	return settingsFile, true, nil
}

// bindConfig layers NOTEGO_* environment variables under the command's flags.
// Flag names map to variables with "-" replaced by "_", e.g. NOTEGO_FROM_JSON.
func bindConfig(cmd *cobra.Command) (*viper.Viper, error) {
	v := viper.New()
	v.SetEnvPrefix("NOTEGO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.BindPFlags(cmd.Flags()); err != nil {
		return nil, fmt.Errorf("binding flags: %w", err)
	}
	return v, nil
}

// newExportConfig resolves the run configuration. Explicit flags win over
// NOTEGO_* environment variables, which win over the settings file.
func newExportConfig(v *viper.Viper, settings *Settings) (ExportConfig, error) {
	v.SetDefault("out", settings.OutputDirectory)
	v.SetDefault("ext", settings.Extension)
	v.SetDefault("date", settings.DateField)
	v.SetDefault("desc-lines", settings.DescriptionLines)
	v.SetDefault("attachments", settings.Attachments)
	v.SetDefault("template", settings.TemplatePath)

	folder := v.GetString("folder")
	if folder == "" {
		return ExportConfig{}, fmt.Errorf("a folder is required: use --folder or NOTEGO_FOLDER")
	}

	dateField, err := ParseDateField(v.GetString("date"))
	if err != nil {
		return ExportConfig{}, err
	}

	descLines := v.GetInt("desc-lines")
	if descLines < 0 {
		return ExportConfig{}, fmt.Errorf("--desc-lines must not be negative, got %d", descLines)
	}

	ext := strings.TrimPrefix(v.GetString("ext"), ".")
	if ext == "" {
		return ExportConfig{}, fmt.Errorf("--ext must not be empty")
	}

	return ExportConfig{
		Folder:       folder,
		OutputDir:    v.GetString("out"),
		Extension:    ext,
		DateField:    dateField,
		DescLines:    descLines,
		Attachments:  v.GetBool("attachments"),
		DryRun:       v.GetBool("dry-run"),
		TemplatePath: v.GetString("template"),
	}, nil
}
