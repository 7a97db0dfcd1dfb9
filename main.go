package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "notego",
	Short: "Export Apple Notes to Markdown files",
	Long: `notego exports every note of a Notes folder to a Markdown file with
frontmatter. Inline images are written to an attachments directory and
title, slug, date, desc and category can be overridden from inside the note.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		v, err := bindConfig(cmd)
		if err != nil {
			return err
		}

		if v.GetBool("debug") {
			SetDebugMode(true)
		}

		var settings *Settings
		if settingsPath := v.GetString("settings"); settingsPath != "" {
			settings, err = loadSettingsRequired(settingsPath)
		} else {
			settings, err = loadSettings(GetConfigPath("settings.yaml"))
		}
		if err != nil {
			return fmt.Errorf("loading settings: %w", err)
		}

		config, err := newExportConfig(v, settings)
		if err != nil {
			return err
		}

		var source NoteSource
		if fromJSON := v.GetString("from-json"); fromJSON != "" {
			source = NewFileSource(fromJSON)
		} else {
			source = NewScriptSource(settings.Script.Interpreter)
		}

		converter := NewNoteConverter(settings.Converter.Domain, settings.Converter.GitHubFlavored)

		exporter, err := NewNoteExporter(config, source, converter)
		if err != nil {
			return err
		}

		summary, err := exporter.Run()
		if err != nil {
			return err
		}

		printSummary(summary)
		return nil
	},
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default settings to .notego/settings.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, created, err := ensureConfigExists()
		if err != nil {
			return err
		}
		if created {
			log.Printf("✓ Wrote %s", path)
		} else {
			log.Printf("%s already exists, leaving it alone", path)
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().StringP("folder", "f", "", "Notes folder name to export (required)")
	rootCmd.Flags().StringP("out", "o", "./out", "Output directory path")
	rootCmd.Flags().StringP("ext", "e", "md", "File extension for exported files")
	rootCmd.Flags().StringP("date", "d", "created", "Date field to use in frontmatter (created or modified)")
	rootCmd.Flags().Int("desc-lines", 3, "Number of lines to extract for description")
	rootCmd.Flags().Bool("attachments", true, "Include attachments (images)")
	rootCmd.Flags().Bool("dry-run", false, "Dry run - don't write files")
	rootCmd.Flags().String("template", "", "Path to custom document template file")

	rootCmd.Flags().String("settings", "", "Path to settings file (default .notego/settings.yaml)")
	rootCmd.Flags().String("from-json", "", "Read notes from a JSON dump instead of the Notes app")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging")

	rootCmd.AddCommand(initCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
