package main

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"text/template"
)

//go:embed config/notes-export.js
var notesExportScript string

var notesExportTemplate = template.Must(template.New("notes-export").Parse(notesExportScript))

// NoteSource retrieves the raw notes of a folder. An empty folder is an empty
// slice and a nil error.
type NoteSource interface {
	FetchNotes(folder string) ([]RawNote, error)
}

// CommandOutput is what a finished command wrote and how it exited
type CommandOutput struct {
	Stdout   []byte
	Stderr   []byte
	ExitCode int
}

// CommandRunner runs a command to completion. The error is reserved for
// commands that could not be started at all.
type CommandRunner func(name string, args ...string) (*CommandOutput, error)

func execRunner(name string, args ...string) (*CommandOutput, error) {
	cmd := exec.Command(name, args...)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := &CommandOutput{Stdout: stdout.Bytes(), Stderr: stderr.Bytes()}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		out.ExitCode = exitErr.ExitCode()
		return out, nil
	}
	return out, err
}

// ScriptSource reads notes from the Notes app through a JXA script run by osascript
type ScriptSource struct {
	interpreter string
	run         CommandRunner
}

// NewScriptSource creates a source that shells out to interpreter (normally osascript)
func NewScriptSource(interpreter string) *ScriptSource {
	if interpreter == "" {
		interpreter = "osascript"
	}
	return &ScriptSource{interpreter: interpreter, run: execRunner}
}

// FetchNotes runs the export script for folder and decodes its JSON output
func (s *ScriptSource) FetchNotes(folder string) ([]RawNote, error) {
	script, err := renderExportScript(folder)
	if err != nil {
		return nil, err
	}

	tempFile, err := os.CreateTemp("", "notego-*.js")
	if err != nil {
		return nil, fmt.Errorf("creating temporary script: %w", err)
	}
	defer os.Remove(tempFile.Name())

	if _, err := tempFile.WriteString(script); err != nil {
		tempFile.Close()
		return nil, fmt.Errorf("writing temporary script: %w", err)
	}
	tempFile.Close()

	out, err := s.run(s.interpreter, "-l", "JavaScript", tempFile.Name())
	if err != nil {
		return nil, fmt.Errorf("executing %s (macOS is required): %w", s.interpreter, err)
	}
	debugLog("%s exited %d: stdout=%d bytes, stderr=%d bytes", s.interpreter, out.ExitCode, len(out.Stdout), len(out.Stderr))

	if out.ExitCode != 0 {
		return nil, classifyScriptFailure(folder, out)
	}

	raw, err := selectOutput(out)
	if err != nil {
		return nil, fmt.Errorf("%w: make sure the folder %q exists and your terminal may control Notes", err, folder)
	}

	return parseNotes(raw)
}

func renderExportScript(folder string) (string, error) {
	quoted, err := json.Marshal(folder)
	if err != nil {
		return "", fmt.Errorf("quoting folder name: %w", err)
	}

	var buf bytes.Buffer
	if err := notesExportTemplate.Execute(&buf, map[string]string{"Folder": string(quoted)}); err != nil {
		return "", fmt.Errorf("rendering export script: %w", err)
	}
	return buf.String(), nil
}

func classifyScriptFailure(folder string, out *CommandOutput) error {
	stderr := strings.TrimSpace(string(out.Stderr))

	switch {
	case strings.Contains(stderr, "ERROR: Folder") && strings.Contains(stderr, "not found"):
		return fmt.Errorf("%w: %q", ErrFolderNotFound, folder)
	case strings.Contains(stderr, "-1743"),
		strings.Contains(stderr, "Not authorized"),
		strings.Contains(stderr, "not allowed"):
		return fmt.Errorf("%w: allow your terminal to control Notes under System Settings > Privacy & Security > Automation", ErrPermissionDenied)
	}

	return &ScriptError{ExitCode: out.ExitCode, Stderr: stderr}
}

// selectOutput picks the channel carrying the JSON. console.log in JXA writes
// to stderr, so stderr wins when it looks like an array.
func selectOutput(out *CommandOutput) (string, error) {
	if stderr := strings.TrimSpace(string(out.Stderr)); strings.HasPrefix(stderr, "[") {
		debugLog("reading notes from stderr")
		return stderr, nil
	}
	if stdout := strings.TrimSpace(string(out.Stdout)); stdout != "" {
		debugLog("reading notes from stdout")
		return stdout, nil
	}
	return "", ErrNoData
}

func parseNotes(raw string) ([]RawNote, error) {
	var notes []RawNote
	if err := json.Unmarshal([]byte(raw), &notes); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	return notes, nil
}

// FileSource reads notes from a JSON dump: either an array of notes, or an
// object mapping folder names to arrays of notes.
type FileSource struct {
	path string
}

// NewFileSource creates a source backed by a JSON file
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

// FetchNotes decodes the dump, selecting folder when the dump is keyed by folder
func (s *FileSource) FetchNotes(folder string) ([]RawNote, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("reading notes file %s: %w", s.path, err)
	}

	raw := strings.TrimSpace(string(data))
	if raw == "" {
		return nil, fmt.Errorf("%w: %s is empty", ErrNoData, s.path)
	}

	if !strings.HasPrefix(raw, "{") {
		return parseNotes(raw)
	}

	var folders map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw), &folders); err != nil {
		return nil, &ParseError{Raw: raw, Err: err}
	}
	notes, ok := folders[folder]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrFolderNotFound, folder)
	}
	return parseNotes(string(notes))
}
