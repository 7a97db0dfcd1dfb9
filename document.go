package main

import (
	"bytes"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"
)

//go:embed config/note-template.md
var defaultTemplate string

// LoadTemplate parses the document template, from path when given or the embedded default
func LoadTemplate(path string) (*template.Template, error) {
	text := defaultTemplate
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", path, err)
		}
		text = string(data)
	}

	tmpl, err := template.New("note").Parse(text)
	if err != nil {
		return nil, fmt.Errorf("parsing template: %w", err)
	}
	return tmpl, nil
}

// Render writes frontmatter and body. Field values go out verbatim; only desc is quoted.
func (d *Document) Render(tmpl *template.Template) (string, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}
	return buf.String(), nil
}

// Path returns outputDir/<slug>.<ext>
func (d *Document) Path(outputDir, ext string) string {
	return filepath.Join(outputDir, d.Slug+"."+ext)
}

// saveDocument always overwrites an existing file
func saveDocument(path, content string) error {
	return os.WriteFile(path, []byte(content), 0644)
}
