package main

import (
	"bufio"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"
)

const attachmentsDirName = "attachments"

// exportedFrontmatter mirrors the block notego writes at the top of each file
type exportedFrontmatter struct {
	Title    string  `yaml:"title"`
	Slug     string  `yaml:"slug"`
	Date     string  `yaml:"date"`
	Desc     *string `yaml:"desc"`
	Category string  `yaml:"category"`
}

// problem is a single finding of the check command
type problem struct {
	File    string
	Message string
}

func main() {
	if len(os.Args) < 3 {
		log.Fatal("Usage: notego-maint <check|prune-attachments> <export-directory>")
	}

	command := os.Args[1]
	exportDir := os.Args[2]

	switch command {
	case "check":
		problems, err := checkExport(exportDir)
		if err != nil {
			log.Fatal(err)
		}
		for _, p := range problems {
			fmt.Printf("%s: %s\n", p.File, p.Message)
		}
		fmt.Printf("\nFound %d problems\n", len(problems))
		if len(problems) > 0 {
			os.Exit(1)
		}
	case "prune-attachments":
		if err := pruneAttachments(exportDir, bufio.NewReader(os.Stdin)); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatalf("Unknown command %q", command)
	}
}

// exportedFiles lists the documents at the top level of an export directory
func exportedFiles(exportDir string) ([]string, error) {
	entries, err := os.ReadDir(exportDir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", exportDir, err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		files = append(files, filepath.Join(exportDir, entry.Name()))
	}
	return files, nil
}

func checkExport(exportDir string) ([]problem, error) {
	files, err := exportedFiles(exportDir)
	if err != nil {
		return nil, err
	}

	var problems []problem
	for _, path := range files {
		problems = append(problems, checkFile(path)...)
	}
	return problems, nil
}

func checkFile(path string) []problem {
	name := filepath.Base(path)

	f, err := os.Open(path)
	if err != nil {
		return []problem{{File: name, Message: fmt.Sprintf("cannot open: %v", err)}}
	}
	defer f.Close()

	var meta exportedFrontmatter
	if _, err := frontmatter.Parse(f, &meta); err != nil {
		// Usually a title or category containing ": " or quotes
		return []problem{{File: name, Message: fmt.Sprintf("invalid frontmatter: %v", err)}}
	}

	var problems []problem
	report := func(format string, args ...interface{}) {
		problems = append(problems, problem{File: name, Message: fmt.Sprintf(format, args...)})
	}

	for field, value := range map[string]string{
		"title": meta.Title,
		"slug":  meta.Slug,
		"date":  meta.Date,
	} {
		if value == "" {
			report("missing %s", field)
		}
	}
	// an empty desc is written for notes without prose, only a missing key is a problem
	if meta.Desc == nil {
		report("missing desc")
	}

	if meta.Slug != "" {
		if !slug.IsValid(meta.Slug) {
			report("slug %q is not URL safe", meta.Slug)
		}
		if stem := strings.TrimSuffix(name, filepath.Ext(name)); stem != meta.Slug {
			report("slug %q does not match file name", meta.Slug)
		}
	}

	sort.Slice(problems, func(i, j int) bool { return problems[i].Message < problems[j].Message })
	return problems
}

// findOrphanAttachments returns attachment directories whose document is gone
func findOrphanAttachments(exportDir string) ([]string, error) {
	files, err := exportedFiles(exportDir)
	if err != nil {
		return nil, err
	}

	stems := make(map[string]bool, len(files))
	for _, path := range files {
		name := filepath.Base(path)
		stems[strings.TrimSuffix(name, filepath.Ext(name))] = true
	}

	attachmentsDir := filepath.Join(exportDir, attachmentsDirName)
	entries, err := os.ReadDir(attachmentsDir)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", attachmentsDir, err)
	}

	var orphans []string
	for _, entry := range entries {
		if entry.IsDir() && !stems[entry.Name()] {
			orphans = append(orphans, filepath.Join(attachmentsDir, entry.Name()))
		}
	}
	return orphans, nil
}

func pruneAttachments(exportDir string, reader *bufio.Reader) error {
	orphans, err := findOrphanAttachments(exportDir)
	if err != nil {
		return err
	}

	removed := 0
	for _, dir := range orphans {
		if !confirmDelete(reader, dir) {
			fmt.Printf("  SKIP: %s\n", dir)
			continue
		}
		if err := os.RemoveAll(dir); err != nil {
			log.Printf("Error removing %s: %v", dir, err)
			continue
		}
		removed++
		fmt.Printf("  REMOVED: %s\n", dir)
	}

	fmt.Printf("\nRemoved %d orphaned attachment directories\n", removed)
	return nil
}

func confirmDelete(reader *bufio.Reader, path string) bool {
	for {
		fmt.Printf("  DELETE %s? [y/N]: ", path)
		input, err := reader.ReadString('\n')
		if err != nil {
			log.Printf("Error reading input: %v", err)
			return false
		}
		response := strings.ToLower(strings.TrimSpace(input))
		switch response {
		case "y", "yes":
			return true
		case "", "n", "no":
			return false
		default:
			fmt.Println("  Please enter y or n.")
		}
	}
}
