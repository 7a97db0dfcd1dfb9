package main

import "strings"

// maxShorthandLines bounds how far into the body inline desc:/category: fields are honored
const maxShorthandLines = 10

// splitLines splits on \n, drops a trailing \r on each line and ignores
// the empty element after a final newline.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}
	lines := strings.Split(content, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}

func isFrontmatterDelimiter(trimmed string) bool {
	// "\---" is how markdown editors usually escape a delimiter typed as text
	return trimmed == "---" || trimmed == `\---`
}

// stripQuotes removes one symmetric pair of plain, curly double and curly single quotes, in that order.
func stripQuotes(value string) string {
	if len(value) >= 2 &&
		((strings.HasPrefix(value, `"`) && strings.HasSuffix(value, `"`)) ||
			(strings.HasPrefix(value, "'") && strings.HasSuffix(value, "'"))) {
		value = value[1 : len(value)-1]
	}
	value = stripPair(value, "“", "”")
	value = stripPair(value, "‘", "’")
	return value
}

func stripPair(value, left, right string) string {
	if len(value) >= len(left)+len(right) && strings.HasPrefix(value, left) && strings.HasSuffix(value, right) {
		return value[len(left) : len(value)-len(right)]
	}
	return value
}

// splitField splits a trimmed line on its first colon
func splitField(trimmed string) (key, value string, ok bool) {
	key, rest, found := strings.Cut(trimmed, ":")
	if !found {
		return "", "", false
	}
	return strings.TrimSpace(key), stripQuotes(strings.TrimSpace(rest)), true
}

// ExtractUserFrontmatter pulls user-written metadata out of converted markdown.
// It returns the overrides and the body without the frontmatter block and
// without any shorthand desc:/category: lines found near the top.
func ExtractUserFrontmatter(content string) (UserFrontmatter, string) {
	lines := splitLines(content)
	var fm UserFrontmatter

	inFrontmatter := false
	delimiters := 0
	endIdx := 0

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)

		if isFrontmatterDelimiter(trimmed) {
			delimiters++
			if delimiters == 1 {
				inFrontmatter = true
				continue
			}
			endIdx = i + 1
			break
		}

		if !inFrontmatter {
			continue
		}

		key, value, ok := splitField(trimmed)
		if !ok {
			continue
		}
		v := value
		switch key {
		case "title":
			fm.Title = &v
		case "slug":
			fm.Slug = &v
		case "date":
			fm.Date = &v
		case "desc":
			fm.Desc = &v
		case "category":
			fm.Category = &v
		}
	}

	body := lines
	if endIdx > 0 {
		body = lines[endIdx:]
	}

	remove := make(map[int]bool)
	for i, line := range body {
		if i >= maxShorthandLines {
			break
		}
		trimmed := strings.TrimSpace(line)

		if fm.Desc == nil && strings.HasPrefix(trimmed, "desc:") {
			remove[i] = true
			if _, value, _ := splitField(trimmed); value != "" {
				fm.Desc = &value
			}
		}

		if fm.Category == nil && strings.HasPrefix(trimmed, "category:") {
			remove[i] = true
			if _, value, _ := splitField(trimmed); value != "" {
				fm.Category = &value
			}
		}
	}

	kept := make([]string, 0, len(body))
	for i, line := range body {
		if !remove[i] {
			kept = append(kept, line)
		}
	}

	return fm, strings.TrimSpace(strings.Join(kept, "\n"))
}
