package main

import (
	"fmt"
	"regexp"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/JohannesKaufmann/html-to-markdown/plugin"
)

// escapedRuleRegex matches a dash rule the converter escaped as \-\-\- (only
// the first three dashes are escaped)
var escapedRuleRegex = regexp.MustCompile(`(?m)^([ \t]*)\\-\\-\\-(-*)[ \t]*$`)

// NoteConverter turns a note body from HTML into markdown
type NoteConverter struct {
	converter *md.Converter
}

// NewNoteConverter creates a converter. domain resolves relative links.
func NewNoteConverter(domain string, githubFlavored bool) *NoteConverter {
	converter := md.NewConverter(domain, true, nil)
	if githubFlavored {
		converter.Use(plugin.GitHubFlavored())
	}
	converter.After(unescapeDashRules)
	return &NoteConverter{converter: converter}
}

// unescapeDashRules restores "---" lines typed in a note, so frontmatter
// delimiters survive conversion
func unescapeDashRules(markdown string) string {
	return escapedRuleRegex.ReplaceAllString(markdown, "${1}---${2}")
}

// Convert converts a single note body
func (c *NoteConverter) Convert(html string) (string, error) {
	markdown, err := c.converter.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return markdown, nil
}
