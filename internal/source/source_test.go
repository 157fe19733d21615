package source

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keedam/preloadquiz/internal/normalize"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

const sampleJSON = `[
  {"question": "1. What is 2+2?", "options": ["a) 3", "b) 4"], "answer": "b) 4"},
  {"question": "2. Broken", "options": ["a) x"], "answer": "c) y"},
  {"question": "3. Sky colour?", "options": ["A. Green", "B. Blue"], "answer": "Blue"}
]`

const sampleYAML = `
- question: "1. Capital of Italy?"
  options: ["a) Rome", "b) Milan"]
  answer: "a) Rome"
- question: "2. Missing options"
  answer: "a) x"
`

func TestList(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.json", "[]")
	writeFile(t, dir, "a.yaml", "[]")
	writeFile(t, dir, "notes.txt", "x")
	writeFile(t, dir, "C.YML", "[]")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.json"), 0o755))

	entries, err := List(dir, nil)
	require.NoError(t, err)

	var names []string
	for _, e := range entries {
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"C.YML", "a.yaml", "b.json"}, names)
	assert.Equal(t, filepath.Join(dir, "b.json"), entries[2].Path)
}

func TestListCustomExtensions(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.json", "[]")
	writeFile(t, dir, "b.yaml", "[]")

	entries, err := List(dir, []string{"json"})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "a.json", entries[0].Name)
}

func TestListMissingDir(t *testing.T) {
	_, err := List(filepath.Join(t.TempDir(), "nope"), nil)
	require.ErrorIs(t, err, ErrSourceNotFound)

	var nf *NotFoundError
	require.True(t, errors.As(err, &nf))
}

func TestLoadJSON(t *testing.T) {
	p := writeFile(t, t.TempDir(), "quiz.json", sampleJSON)

	qs, report, err := Load(p, normalize.New(nil))
	require.NoError(t, err)
	require.Len(t, qs, 2)
	assert.Equal(t, "What is 2+2?", qs[0].Question)
	assert.Equal(t, "4", qs[0].Answer)
	assert.Equal(t, "Blue", qs[1].Answer)
	assert.Equal(t, 3, report.Total)
	assert.Len(t, report.Dropped, 1)
}

func TestLoadYAML(t *testing.T) {
	p := writeFile(t, t.TempDir(), "quiz.yaml", sampleYAML)

	qs, report, err := Load(p, normalize.New(nil))
	require.NoError(t, err)
	require.Len(t, qs, 1)
	assert.Equal(t, "Capital of Italy?", qs[0].Question)
	assert.Equal(t, []string{"Rome", "Milan"}, qs[0].Options)
	assert.Equal(t, 2, report.Total)
	require.Len(t, report.Dropped, 1)
	assert.Equal(t, 1, report.Dropped[0].Index)
}

func TestLoadMissingFile(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.json"), normalize.New(nil))
	assert.ErrorIs(t, err, ErrSourceNotFound)
}

func TestLoadEmptyResult(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"empty.json":   "[]",
		"allbad.json":  `[{"question": "Q", "options": ["a) x"], "answer": "b) y"}]`,
		"empty.yaml":   "",
		"nullish.json": "null",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, dir, name, content)
			_, _, err := Load(p, normalize.New(nil))
			require.ErrorIs(t, err, ErrEmptyResult)
			assert.Contains(t, err.Error(), "could not load any valid questions")
		})
	}
}

func TestLoadMalformedDocument(t *testing.T) {
	dir := t.TempDir()
	tests := map[string]string{
		"object.json": `{"question": "Q"}`,
		"broken.json": `[{"question": `,
		"twice.json":  `[] []`,
		"map.yaml":    "question: Q\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			p := writeFile(t, dir, name, content)
			_, _, err := Load(p, normalize.New(nil))
			require.Error(t, err)
			assert.NotErrorIs(t, err, ErrEmptyResult)
			assert.NotErrorIs(t, err, ErrSourceNotFound)
		})
	}
}
