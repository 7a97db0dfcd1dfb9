package main

import "strings"

// isUnderline reports whether a trimmed line is 3+ characters of '=' and '-' only
func isUnderline(trimmed string, allowed string) bool {
	if len(trimmed) < 3 {
		return false
	}
	for _, r := range trimmed {
		if !strings.ContainsRune(allowed, r) {
			return false
		}
	}
	return true
}

// StripTitleHeading removes headings that repeat the note title. Notes puts the
// title in the body as the first line, so it would otherwise show up twice.
func StripTitleHeading(content, title string) string {
	lines := splitLines(content)
	result := make([]string, 0, len(lines))
	skipNext := false

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if skipNext {
			skipNext = false
			continue
		}

		if trimmed == "# "+title || trimmed == "#"+title {
			continue
		}

		// Setext heading: title followed by ===
		if i+1 < len(lines) && trimmed == title {
			if isUnderline(strings.TrimSpace(lines[i+1]), "=") {
				skipNext = true
				continue
			}
		}

		// Leftover underline after the title or a blank line
		if isUnderline(trimmed, "=-") && i > 0 {
			prev := strings.TrimSpace(lines[i-1])
			if prev == title || prev == "" {
				continue
			}
		}

		result = append(result, line)
	}

	return strings.TrimSpace(strings.Join(result, "\n"))
}
