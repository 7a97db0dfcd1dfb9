package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateField(t *testing.T) {
	field, err := ParseDateField("created")
	require.NoError(t, err)
	assert.Equal(t, DateCreated, field)

	field, err = ParseDateField("modified")
	require.NoError(t, err)
	assert.Equal(t, DateModified, field)

	for _, bad := range []string{"", "Created", "updated"} {
		_, err := ParseDateField(bad)
		assert.ErrorIs(t, err, ErrInvalidDateField, "value %q", bad)
	}
}

func TestDefaultSettings(t *testing.T) {
	settings := defaultSettings()

	assert.Equal(t, "./out", settings.OutputDirectory)
	assert.Equal(t, "md", settings.Extension)
	assert.Equal(t, "created", settings.DateField)
	assert.Equal(t, 3, settings.DescriptionLines)
	assert.True(t, settings.Attachments)
	assert.True(t, settings.Converter.GitHubFlavored)
	assert.Equal(t, "osascript", settings.Script.Interpreter)
}

func TestLoadSettings(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file falls back to defaults", func(t *testing.T) {
		settings, err := loadSettings(filepath.Join(dir, "missing.yaml"))
		require.NoError(t, err)
		assert.Equal(t, defaultSettings(), settings)
	})

	t.Run("partial file keeps other defaults", func(t *testing.T) {
		path := filepath.Join(dir, "partial.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_directory: blog\nattachments: false\n"), 0644))

		settings, err := loadSettings(path)
		require.NoError(t, err)
		assert.Equal(t, "blog", settings.OutputDirectory)
		assert.False(t, settings.Attachments)
		assert.Equal(t, "md", settings.Extension)
		assert.Equal(t, 3, settings.DescriptionLines)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		path := filepath.Join(dir, "invalid.yaml")
		require.NoError(t, os.WriteFile(path, []byte("output_directory: [unclosed"), 0644))

		_, err := loadSettings(path)
		assert.Error(t, err)
	})

	t.Run("required file must exist", func(t *testing.T) {
		_, err := loadSettingsRequired(filepath.Join(dir, "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}

func TestEnsureConfigExists(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	path, created, err := ensureConfigExists()
	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, GetConfigPath("settings.yaml"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, defaultSettingsYAML, string(data))

	_, created, err = ensureConfigExists()
	require.NoError(t, err)
	assert.False(t, created)
}

// newTestCommand builds a command with the same export flags as the root command
func newTestCommand(args ...string) *cobra.Command {
	cmd := &cobra.Command{Use: "test"}
	cmd.Flags().StringP("folder", "f", "", "")
	cmd.Flags().StringP("out", "o", "./out", "")
	cmd.Flags().StringP("ext", "e", "md", "")
	cmd.Flags().StringP("date", "d", "created", "")
	cmd.Flags().Int("desc-lines", 3, "")
	cmd.Flags().Bool("attachments", true, "")
	cmd.Flags().Bool("dry-run", false, "")
	cmd.Flags().String("template", "", "")
	cmd.Flags().String("settings", "", "")
	cmd.Flags().String("from-json", "", "")
	cmd.Flags().Bool("debug", false, "")
	if err := cmd.Flags().Parse(args); err != nil {
		panic(err)
	}
	return cmd
}

func newTestViper(t *testing.T, args ...string) *viper.Viper {
	t.Helper()
	v, err := bindConfig(newTestCommand(args...))
	require.NoError(t, err)
	return v
}

func TestBindConfigRunOptions(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		v := newTestViper(t)
		assert.Empty(t, v.GetString("settings"))
		assert.Empty(t, v.GetString("from-json"))
		assert.False(t, v.GetBool("debug"))
	})

	t.Run("environment", func(t *testing.T) {
		t.Setenv("NOTEGO_SETTINGS", "custom.yaml")
		t.Setenv("NOTEGO_FROM_JSON", "notes.json")
		t.Setenv("NOTEGO_DEBUG", "true")

		v := newTestViper(t)
		assert.Equal(t, "custom.yaml", v.GetString("settings"))
		assert.Equal(t, "notes.json", v.GetString("from-json"))
		assert.True(t, v.GetBool("debug"))
	})

	t.Run("flags beat environment", func(t *testing.T) {
		t.Setenv("NOTEGO_FROM_JSON", "notes.json")
		t.Setenv("NOTEGO_DEBUG", "true")

		v := newTestViper(t, "--from-json", "flag.json", "--debug=false")
		assert.Equal(t, "flag.json", v.GetString("from-json"))
		assert.False(t, v.GetBool("debug"))
	})
}

func TestNewExportConfig(t *testing.T) {
	t.Run("flags", func(t *testing.T) {
		v := newTestViper(t, "--folder", "Blog", "-o", "site", "--ext", ".mdx", "--date", "modified",
			"--desc-lines", "5", "--attachments=false", "--dry-run")

		config, err := newExportConfig(v, defaultSettings())
		require.NoError(t, err)
		assert.Equal(t, ExportConfig{
			Folder:      "Blog",
			OutputDir:   "site",
			Extension:   "mdx",
			DateField:   DateModified,
			DescLines:   5,
			Attachments: false,
			DryRun:      true,
		}, config)
	})

	t.Run("settings fill unset flags", func(t *testing.T) {
		settings := defaultSettings()
		settings.OutputDirectory = "from-settings"
		settings.DescriptionLines = 1
		settings.TemplatePath = "tmpl.md"

		config, err := newExportConfig(newTestViper(t, "-f", "Blog"), settings)
		require.NoError(t, err)
		assert.Equal(t, "from-settings", config.OutputDir)
		assert.Equal(t, 1, config.DescLines)
		assert.Equal(t, "tmpl.md", config.TemplatePath)
		assert.Equal(t, DateCreated, config.DateField)
		assert.True(t, config.Attachments)
	})

	t.Run("environment beats settings, flags beat environment", func(t *testing.T) {
		t.Setenv("NOTEGO_OUT", "from-env")
		t.Setenv("NOTEGO_DESC_LINES", "7")
		t.Setenv("NOTEGO_FOLDER", "EnvFolder")

		config, err := newExportConfig(newTestViper(t, "--desc-lines", "2"), defaultSettings())
		require.NoError(t, err)
		assert.Equal(t, "EnvFolder", config.Folder)
		assert.Equal(t, "from-env", config.OutputDir)
		assert.Equal(t, 2, config.DescLines)
	})

	t.Run("missing folder", func(t *testing.T) {
		_, err := newExportConfig(newTestViper(t), defaultSettings())
		assert.ErrorContains(t, err, "folder is required")
	})

	t.Run("invalid date field", func(t *testing.T) {
		_, err := newExportConfig(newTestViper(t, "-f", "Blog", "--date", "yesterday"), defaultSettings())
		assert.ErrorIs(t, err, ErrInvalidDateField)
	})

	t.Run("negative description lines", func(t *testing.T) {
		_, err := newExportConfig(newTestViper(t, "-f", "Blog", "--desc-lines", "-1"), defaultSettings())
		assert.Error(t, err)
	})
}
