// Package reformat rewrites raw question files into the canonical
// "<token>. <text>" marker layout used by the quiz sources.
package reformat

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
)

var (
	numberToken = regexp.MustCompile(`^(\d+)(?:\s*[.)]+|\s)\s*(.+)$`)
	letterToken = regexp.MustCompile(`^([a-zA-Z])(?:\s*[.)]+|\s)\s*(.+)$`)
	leadingNum  = regexp.MustCompile(`^\d+`)
)

// Record is one question in a reformatter input or output file. Field order
// fixes the key order of the written JSON.
type Record struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// Read decodes a JSON array of records.
func Read(r io.Reader) ([]Record, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse json: %w", err)
	}
	return records, nil
}

// Write encodes records with two-space indentation and without HTML escaping.
func Write(w io.Writer, records []Record) error {
	if records == nil {
		records = []Record{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return fmt.Errorf("write json: %w", err)
	}
	return nil
}

// Canonical returns a reformatted copy of records. The input is not modified.
func Canonical(records []Record) []Record {
	out := make([]Record, len(records))
	for i, r := range records {
		opts := make([]string, len(r.Options))
		for j, o := range r.Options {
			opts[j] = LetterMarker(o)
		}
		if r.Options == nil {
			opts = nil
		}
		out[i] = Record{
			Question: NumberMarker(r.Question),
			Options:  opts,
			Answer:   LetterMarker(r.Answer),
		}
	}
	return out
}

// NumberMarker rewrites "12 text", "12.text" or "12.. text" as "12. text".
// Strings without a leading number are returned unchanged.
func NumberMarker(s string) string {
	return rewrite(numberToken, s)
}

// LetterMarker rewrites "b text", "b)text" or "B . text" as "b. text" with
// the letter's case preserved.
func LetterMarker(s string) string {
	return rewrite(letterToken, s)
}

func rewrite(re *regexp.Regexp, s string) string {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return s
	}
	text := strings.TrimSpace(m[2])
	if text == "" {
		return s
	}
	return m[1] + ". " + text
}

// MaxSpan bounds the [min, max] range MissingNumbers will walk.
const MaxSpan = 1_000_000

// ErrSpanTooLarge is returned when the question numbers are too far apart
// to list the gaps, usually because a question starts with a stray number.
var ErrSpanTooLarge = errors.New("question number range too large")

// MissingNumbers collects the leading question numbers and returns those
// absent from the [min, max] range, ascending. ok is false when no question
// carries a number.
func MissingNumbers(records []Record) (missing []int, ok bool, err error) {
	seen := make(map[int]bool)
	lo, hi := 0, 0
	for _, r := range records {
		tok := leadingNum.FindString(r.Question)
		if tok == "" {
			continue
		}
		n, err := strconv.Atoi(tok)
		if err != nil {
			continue
		}
		if len(seen) == 0 || n < lo {
			lo = n
		}
		if len(seen) == 0 || n > hi {
			hi = n
		}
		seen[n] = true
	}
	if len(seen) == 0 {
		return nil, false, nil
	}
	if hi-lo > MaxSpan {
		return nil, true, fmt.Errorf("%w: %d to %d", ErrSpanTooLarge, lo, hi)
	}

	// n never passes hi, so hi == math.MaxInt cannot wrap.
	for n := lo; ; n++ {
		if !seen[n] {
			missing = append(missing, n)
		}
		if n == hi {
			break
		}
	}
	return missing, true, nil
}

// FormatMissing renders the result of MissingNumbers as a one-line summary.
func FormatMissing(missing []int, ok bool) string {
	if !ok {
		return "Could not find any question numbers to check."
	}
	if len(missing) == 0 {
		return "No missing question numbers found in the sequence."
	}
	parts := make([]string, len(missing))
	for i, n := range missing {
		parts[i] = strconv.Itoa(n)
	}
	return "Found missing question numbers: [" + strings.Join(parts, ", ") + "]"
}
