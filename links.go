package main

import "regexp"

// bareURLRegex matches a URL alone on its line, keeping trailing whitespace in
// group 2. \p{Z} covers Unicode spaces such as NBSP, which \s does not.
var bareURLRegex = regexp.MustCompile(`(?m)^(https?://[^\s\p{Z}]+)([\s\p{Z}]*)$`)

// LinkifyBareURLs turns URLs that sit on their own line into markdown links
func LinkifyBareURLs(content string) string {
	return bareURLRegex.ReplaceAllString(content, "[$1]($1)$2")
}
