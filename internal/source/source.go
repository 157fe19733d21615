// Package source finds quiz files and turns them into normalized questions.
package source

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/keedam/preloadquiz/internal/normalize"
	"github.com/keedam/preloadquiz/internal/quiz"
)

var (
	// ErrSourceNotFound is returned when a quiz file does not exist.
	ErrSourceNotFound = errors.New("quiz source not found")

	// ErrEmptyResult is returned when a source yields no usable questions.
	ErrEmptyResult = errors.New("could not load any valid questions")
)

// DefaultExtensions are the file types recognized as quiz sources.
var DefaultExtensions = []string{".json", ".yaml", ".yml"}

// NotFoundError names the missing source.
type NotFoundError struct {
	Path string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("quiz source not found: %s", e.Path)
}

func (e *NotFoundError) Unwrap() error { return ErrSourceNotFound }

// EmptyResultError is returned by Load when every record was dropped.
type EmptyResultError struct {
	Path   string
	Report normalize.Report
}

func (e *EmptyResultError) Error() string {
	return fmt.Sprintf("%s: could not load any valid questions (%d records, all skipped)", e.Path, e.Report.Total)
}

func (e *EmptyResultError) Unwrap() error { return ErrEmptyResult }

// Entry is one discovered quiz file.
type Entry struct {
	Name string // file name without directory
	Path string
}

// List returns the quiz files in dir with one of exts, sorted by name.
// Subdirectories are not searched.
func List(dir string, exts []string) ([]Entry, error) {
	if len(exts) == 0 {
		exts = DefaultExtensions
	}
	items, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: dir}
		}
		return nil, fmt.Errorf("read quiz dir: %w", err)
	}

	var entries []Entry
	for _, it := range items {
		if it.IsDir() || !hasExt(it.Name(), exts) {
			continue
		}
		entries = append(entries, Entry{Name: it.Name(), Path: filepath.Join(dir, it.Name())})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries, nil
}

func hasExt(name string, exts []string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range exts {
		e = strings.ToLower(strings.TrimSpace(e))
		if e != "" && !strings.HasPrefix(e, ".") {
			e = "." + e
		}
		if ext == e {
			return true
		}
	}
	return false
}

// ReadRecords reads the raw record array from path. YAML files are
// converted record by record to JSON so both formats share one decoder
// downstream.
func ReadRecords(path string) ([]json.RawMessage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{Path: path}
		}
		return nil, fmt.Errorf("read quiz source: %w", err)
	}
	return ParseRecords(data, path)
}

// ParseRecords decodes data as JSON or YAML depending on the extension of
// name. Anything other than .yaml/.yml is treated as JSON.
func ParseRecords(data []byte, name string) ([]json.RawMessage, error) {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return parseYAML(data)
	default:
		return parseJSON(data)
	}
}

func parseJSON(data []byte) ([]json.RawMessage, error) {
	var records []json.RawMessage
	decoder := json.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse json: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}

func parseYAML(data []byte) ([]json.RawMessage, error) {
	var docs []any
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	if err := decoder.Decode(&docs); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := decoder.Decode(&struct{}{}); err != io.EOF {
		if err == nil {
			return nil, fmt.Errorf("parse yaml: multiple documents are not supported")
		}
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	records := make([]json.RawMessage, len(docs))
	for i, d := range docs {
		b, err := json.Marshal(d)
		if err != nil {
			// Non-string mapping keys have no JSON form; the record is
			// reported as malformed by the normalizer instead.
			b = []byte("null")
		}
		records[i] = b
	}
	return records, nil
}

// Load reads path and normalizes its records. It fails with
// *EmptyResultError when no record survives normalization.
func Load(path string, n *normalize.Normalizer) ([]quiz.Question, normalize.Report, error) {
	records, err := ReadRecords(path)
	if err != nil {
		return nil, normalize.Report{Source: path}, err
	}
	questions, report := n.Normalize(path, records)
	if len(questions) == 0 {
		return nil, report, &EmptyResultError{Path: path, Report: report}
	}
	return questions, report, nil
}
