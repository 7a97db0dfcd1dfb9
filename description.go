package main

import "strings"

const maxDescriptionRunes = 200

func isDescriptionLine(line string) bool {
	if line == "" {
		return false
	}
	for _, prefix := range []string{"#", "---", "===", `\---`} {
		if strings.HasPrefix(line, prefix) {
			return false
		}
	}
	return strings.Trim(line, "=-") != ""
}

// ExtractDescription joins the first n prose lines of the body and caps the
// result at 200 characters.
func ExtractDescription(markdown string, n int) string {
	picked := make([]string, 0, n)
	for _, line := range splitLines(markdown) {
		if len(picked) >= n {
			break
		}
		line = strings.TrimSpace(line)
		if isDescriptionLine(line) {
			picked = append(picked, line)
		}
	}

	desc := []rune(strings.Join(picked, " "))
	if len(desc) > maxDescriptionRunes {
		desc = desc[:maxDescriptionRunes]
	}
	return string(desc)
}
