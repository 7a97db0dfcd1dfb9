package main

import "fmt"

// RawNote is a note as returned by the note source
type RawNote struct {
	ID               string `json:"id"`
	Title            string `json:"title"`
	CreationDate     string `json:"creationDate"`
	ModificationDate string `json:"modificationDate"`
	BodyHTML         string `json:"bodyHTML"`
}

// UserFrontmatter holds metadata overrides written by the user inside the note body.
// A nil field means the note did not set it.
type UserFrontmatter struct {
	Title    *string
	Slug     *string
	Date     *string
	Desc     *string
	Category *string
}

// DateField selects which note timestamp ends up in the frontmatter
type DateField string

const (
	DateCreated  DateField = "created"
	DateModified DateField = "modified"
)

// ParseDateField validates the --date argument
func ParseDateField(value string) (DateField, error) {
	switch DateField(value) {
	case DateCreated, DateModified:
		return DateField(value), nil
	}
	return "", fmt.Errorf("%w: %q (must be either 'created' or 'modified')", ErrInvalidDateField, value)
}

// ExportConfig is the immutable configuration of a single export run
type ExportConfig struct {
	Folder       string
	OutputDir    string
	Extension    string
	DateField    DateField
	DescLines    int
	Attachments  bool
	DryRun       bool
	TemplatePath string
}

// ExportStatus represents the outcome of exporting a single note
type ExportStatus string

const (
	StatusSuccess ExportStatus = "success"
	StatusError   ExportStatus = "error"
)

// ExportResult tracks the outcome of exporting each note
type ExportResult struct {
	Title  string
	Status ExportStatus
	Path   string
	Error  error
}

// ExportSummary aggregates the results of a run
type ExportSummary struct {
	Exported int
	Skipped  int
	Results  []ExportResult
}

// Document is a fully resolved note ready to be rendered
type Document struct {
	Title       string
	Slug        string
	Date        string
	Description string
	Category    string
	HasCategory bool
	Body        string
}
