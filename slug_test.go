package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateSlug(t *testing.T) {
	tests := []struct {
		name     string
		title    string
		expected string
	}{
		{"empty", "", "untitled"},
		{"basic", "Hello World", "hello-world"},
		{"special chars", "Title: With & Special!", "title-with-special"},
		{"numbers", "React 18.2 Guide", "react-18-2-guide"},
		{"hyphen trimming", "---start---", "start"},
		{"runs of separators", "a  --  b", "a-b"},
		{"diacritics", "Café & Naïve", "cafe-naive"},
		{"uppercase diacritics", "ÉCOLE Ünïcödé", "ecole-unicode"},
		{"letters without decomposition", "Straße Ærø", "strasse-aero"},
		{"decomposed accents", "Cafe\u0301", "cafe"},
		{"chinese title", "會議記錄", "hui-yi-ji-lu"},
		{"short chinese title", "日記", "ri-ji"},
		{"mixed scripts", "Notes 日本 2024", "notes-ri-ben-2024"},
		{"greek", "Κνωσός", "knosos"},
		{"vulgar fraction", "½ price", "1-2-price"},
		{"fullwidth letters", "Ｎｏｔｅｓ", "notes"},
		{"emoji are dropped", "My 🚀 Launch", "my-launch"},
		{"only symbols", "!!!", ""},
		{"underscores", "snake_case_title", "snake-case-title"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CreateSlug(tt.title))
		})
	}
}

func TestCreateSlugDeterministic(t *testing.T) {
	title := "Weekly Review — März 2026"
	first := CreateSlug(title)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CreateSlug(title))
	}
	assert.Equal(t, "weekly-review-marz-2026", first)
}
