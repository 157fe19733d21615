package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/keedam/preloadquiz/internal/quiz"
	"github.com/keedam/preloadquiz/internal/reformat"
	"github.com/keedam/preloadquiz/internal/source"
)

func threeQuestionSession(t *testing.T) *quiz.Session {
	t.Helper()
	s := quiz.NewSession()
	require.NoError(t, s.Load([]quiz.Question{
		{Question: "Capital of France?", Options: []string{"London", "Paris"}, Answer: "Paris"},
		{Question: "2+2?", Options: []string{"4", "5"}, Answer: "4"},
		{Question: "Largest ocean?", Options: []string{"Atlantic", "Pacific"}, Answer: "Pacific"},
	}))
	return s
}

func TestRunLineQuiz(t *testing.T) {
	s := threeQuestionSession(t)
	in := strings.NewReader(strings.Join([]string{
		"2",   // Paris, correct
		"",    // next
		"2",   // 5, wrong
		"j 1", // back to Q1 from feedback
		"2",   // Paris again
		"n",
		"x", // rejected input
		"1", // 4, now correct
		"",
		"1", // Atlantic, wrong
		"",  // finish
	}, "\n") + "\n")
	var out bytes.Buffer

	require.NoError(t, runLineQuiz(in, &out, s))

	text := out.String()
	assert.Contains(t, text, "Previous answer: Paris")
	assert.Contains(t, text, "The correct answer was: 4")
	assert.Contains(t, text, "please enter a number between 1 and 2")
	assert.Contains(t, text, "[Enter] Finish Quiz")
	assert.Contains(t, text, "Your score: 2 out of 3")
	assert.Contains(t, text, "Correct answer: Pacific")
	assert.Equal(t, quiz.PhaseFinished, s.Phase())
}

func TestRunLineQuizInputClosed(t *testing.T) {
	s := threeQuestionSession(t)
	var out bytes.Buffer

	require.NoError(t, runLineQuiz(strings.NewReader("1\n"), &out, s))
	assert.Contains(t, out.String(), "(input closed)")
	assert.Equal(t, quiz.PhaseFeedback, s.Phase())
}

func TestApplyLineJumpOutOfRange(t *testing.T) {
	s := threeQuestionSession(t)
	err := applyLine(s, quiz.BuildView(s), "j 9")
	require.ErrorIs(t, err, quiz.ErrIndexOutOfRange)
	assert.Equal(t, 0, s.CurrentIndex())
}

func TestDumpReport(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "q.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
  {"question": "1. A?", "options": ["a) x", "b) y"], "answer": "b) y"},
  {"question": "2. B?", "options": ["a) x"], "answer": "c) z"}
]`), 0o644))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"preview", path, "--dump", "--log-file", "stderr", "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Chdir(dir)

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), `"question": "A?"`)
	assert.Contains(t, out.String(), `"answer": "y"`)
	assert.Contains(t, out.String(), `"index": 1`)
	assert.Contains(t, out.String(), "answer matches no option")
}

func TestFormatAndCheckCommands(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.json")
	require.NoError(t, os.WriteFile(in, []byte(`[
  {"question": "1 First?", "options": ["A One", "B Two"], "answer": "A One"},
  {"question": "3 Third?", "options": ["A <b>", "B c"], "answer": "A <b>"}
]`), 0o644))
	outPath := filepath.Join(dir, "formatted.json")

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	rootCmd.SetArgs([]string{"check", in, "-o", outPath})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "Found missing question numbers: [2]")
	assert.Contains(t, out.String(), "Success!")

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"question": "1. First?"`)
	assert.Contains(t, string(data), `"A. <b>"`)

	out.Reset()
	rootCmd.SetArgs([]string{"format", outPath, "-o", ""})
	require.NoError(t, rootCmd.Execute())
	assert.JSONEq(t, string(data), out.String())
}

func TestFormatMissingInput(t *testing.T) {
	rootCmd.SetArgs([]string{"format", filepath.Join(t.TempDir(), "nope.json"), "-o", ""})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestCheckRejectsHugeNumberSpan(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "raw.json")
	require.NoError(t, os.WriteFile(in, []byte(`[
  {"question": "1 First?", "options": ["A One"], "answer": "A One"},
  {"question": "1000000000 bytes make a gigabyte?", "options": ["A Yes"], "answer": "A Yes"}
]`), 0o644))

	rootCmd.SetArgs([]string{"check", in, "-o", ""})
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil); rootCmd.SetErr(nil) })

	assert.ErrorIs(t, rootCmd.Execute(), reformat.ErrSpanTooLarge)
}

func TestFitColumn(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"short", "quiz.json"},
		{"exact", strings.Repeat("a", 40)},
		{"long ascii", strings.Repeat("b", 60) + ".json"},
		{"long multibyte", strings.Repeat("日本語", 10) + ".json"},
		{"accented", strings.Repeat("é", 45) + ".yaml"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fitColumn(tt.in, nameColumn)
			assert.True(t, utf8.ValidString(got), "cut inside a rune: %q", got)
			assert.Equal(t, nameColumn, ansi.StringWidth(got))
			if ansi.StringWidth(tt.in) > nameColumn {
				assert.True(t, strings.HasSuffix(strings.TrimRight(got, " "), "..."), got)
			} else {
				assert.Equal(t, tt.in, strings.TrimRight(got, " "))
			}
		})
	}
}

func TestCheckSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "quiz.json")
	require.NoError(t, os.WriteFile(file, []byte("[]"), 0o644))

	assert.NoError(t, checkSource(file))

	err := checkSource(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, source.ErrSourceNotFound)

	// A path through a regular file fails with ENOTDIR, which is not a
	// missing source.
	err = checkSource(filepath.Join(file, "inner.json"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, source.ErrSourceNotFound)

	err = checkSource(dir)
	require.Error(t, err)
	assert.NotErrorIs(t, err, source.ErrSourceNotFound)
}
