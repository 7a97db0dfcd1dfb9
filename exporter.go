package main

import (
	"fmt"
	"log"
	"os"
	"text/template"
)

// Converter turns a note body into markdown
type Converter interface {
	Convert(html string) (string, error)
}

// NoteExporter handles the main workflow
type NoteExporter struct {
	config    ExportConfig
	source    NoteSource
	converter Converter
	template  *template.Template
}

// NewNoteExporter creates an exporter for a single run
func NewNoteExporter(config ExportConfig, source NoteSource, converter Converter) (*NoteExporter, error) {
	tmpl, err := LoadTemplate(config.TemplatePath)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}

	return &NoteExporter{
		config:    config,
		source:    source,
		converter: converter,
		template:  tmpl,
	}, nil
}

// Run fetches every note of the configured folder and exports them one by
// one. Only failures of the note source are returned as errors; per-note
// failures are counted as skipped.
func (e *NoteExporter) Run() (*ExportSummary, error) {
	log.Printf("🗒️  Exporting notes from folder '%s'", e.config.Folder)

	notes, err := e.source.FetchNotes(e.config.Folder)
	if err != nil {
		return nil, fmt.Errorf("fetching notes: %w", err)
	}

	summary := &ExportSummary{Results: make([]ExportResult, 0, len(notes))}

	if len(notes) == 0 {
		log.Printf("⚠️  No notes found in folder '%s'", e.config.Folder)
		log.Printf("   Make sure the folder name is correct and contains notes.")
		return summary, nil
	}

	log.Printf("📝 Found %d notes", len(notes))

	if !e.config.DryRun {
		if err := os.MkdirAll(e.config.OutputDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory %s: %w", e.config.OutputDir, err)
		}
	}

	for _, note := range notes {
		result := e.ExportNote(note)
		summary.Results = append(summary.Results, result)

		if result.Status == StatusSuccess {
			summary.Exported++
			if e.config.DryRun {
				log.Printf("  [DRY RUN] Would write: %s", result.Path)
			} else {
				log.Printf("  ✓ %s", result.Path)
			}
		} else {
			summary.Skipped++
			log.Printf("  ✗ Failed to export '%s': %v", result.Title, result.Error)
		}
	}

	return summary, nil
}

// ExportNote converts a single note and writes it unless this is a dry run
func (e *NoteExporter) ExportNote(note RawNote) ExportResult {
	doc, err := e.buildDocument(note)
	if err != nil {
		return ExportResult{Title: note.Title, Status: StatusError, Error: err}
	}

	content, err := doc.Render(e.template)
	if err != nil {
		return ExportResult{Title: note.Title, Status: StatusError, Error: err}
	}

	path := doc.Path(e.config.OutputDir, e.config.Extension)

	if !e.config.DryRun {
		if err := saveDocument(path, content); err != nil {
			return ExportResult{
				Title:  note.Title,
				Status: StatusError,
				Error:  fmt.Errorf("writing file %s: %w", path, err),
			}
		}
	}

	return ExportResult{Title: note.Title, Status: StatusSuccess, Path: path}
}

// buildDocument runs the text pipeline for one note. User overrides always
// win over derived values.
func (e *NoteExporter) buildDocument(note RawNote) (*Document, error) {
	markdown, err := e.converter.Convert(note.BodyHTML)
	if err != nil {
		return nil, err
	}

	markdown = LinkifyBareURLs(markdown)

	overrides, markdown := ExtractUserFrontmatter(markdown)

	markdown = StripTitleHeading(markdown, note.Title)

	dateStr := note.CreationDate
	if e.config.DateField == DateModified {
		dateStr = note.ModificationDate
	}

	doc := &Document{Title: note.Title}
	if overrides.Title != nil {
		doc.Title = *overrides.Title
	}

	if overrides.Date != nil {
		doc.Date = *overrides.Date
	} else {
		doc.Date = FormatNoteDate(dateStr)
	}

	if overrides.Slug != nil {
		doc.Slug = *overrides.Slug
	} else {
		doc.Slug = CreateSlug(doc.Title)
	}

	if e.config.Attachments {
		dir, err := ExtractImages(&markdown, e.config.OutputDir, doc.Slug, e.config.DryRun)
		if err != nil {
			return nil, err
		}
		debugLog("attachments for '%s' in %s", doc.Title, dir)
	}

	if overrides.Desc != nil {
		doc.Description = *overrides.Desc
	} else {
		doc.Description = ExtractDescription(markdown, e.config.DescLines)
	}

	if overrides.Category != nil {
		doc.Category = *overrides.Category
		doc.HasCategory = true
	}

	doc.Body = markdown
	return doc, nil
}

func printSummary(summary *ExportSummary) {
	log.Printf("✨ Done!")
	log.Printf("   Exported: %d", summary.Exported)
	if summary.Skipped > 0 {
		log.Printf("   Skipped:  %d", summary.Skipped)
	}
}
