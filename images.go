package main

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

const attachmentsDirName = "attachments"

// dataImageRegex finds inline images: alt text, image format, base64 payload
var dataImageRegex = regexp.MustCompile(`!\[([^\]]*)\]\(data:image/([^;]+);base64,([^)]+)\)`)

type imageReplacement struct {
	old string
	new string
}

// ExtractImages writes every base64 data URI image in markdown to
// outputDir/attachments/<slug>/img-<n>.<format> and rewrites the reference to
// the relative path. Payloads that fail to decode are left untouched. The
// attachments directory is returned even when nothing was extracted.
func ExtractImages(markdown *string, outputDir, noteSlug string, dryRun bool) (string, error) {
	attachmentsDir := filepath.Join(outputDir, attachmentsDirName, noteSlug)

	counter := 1
	var replacements []imageReplacement

	for _, m := range dataImageRegex.FindAllStringSubmatch(*markdown, -1) {
		alt, format, payload := m[1], m[2], m[3]

		data, err := base64.StdEncoding.DecodeString(payload)
		if err != nil {
			debugLog("skipping undecodable %s image: %v", format, err)
			continue
		}

		filename := fmt.Sprintf("img-%d.%s", counter, format)

		if !dryRun {
			if err := os.MkdirAll(attachmentsDir, 0755); err != nil {
				return "", fmt.Errorf("creating attachments directory: %w", err)
			}
			if err := os.WriteFile(filepath.Join(attachmentsDir, filename), data, 0644); err != nil {
				return "", fmt.Errorf("writing image %s: %w", filename, err)
			}
		}

		relative := attachmentsDirName + "/" + noteSlug + "/" + filename
		replacements = append(replacements, imageReplacement{
			old: m[0],
			new: fmt.Sprintf("![%s](%s)", alt, relative),
		})
		debugLog("image %d (%s, %d bytes) -> %s", counter, format, len(data), relative)

		counter++
	}

	for _, r := range replacements {
		*markdown = strings.ReplaceAll(*markdown, r.old, r.new)
	}

	return attachmentsDir, nil
}
