// Package normalize cleans raw quiz records into quiz.Question values.
//
// Raw sources number their questions ("12. ...") and letter their options
// and answers ("b) ..."), inconsistently. The normalizer strips those markers
// and reconciles the answer with one cleaned option. Records that cannot be
// reconciled are dropped and reported; they never abort the batch.
package normalize

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"go.uber.org/zap"

	"github.com/keedam/preloadquiz/internal/quiz"
)

// ErrNoMatch is the reason for records whose answer matches no option.
var ErrNoMatch = errors.New("answer matches no option")

// ErrEmptyAnswer is the reason for records whose answer is empty once its
// marker is removed.
var ErrEmptyAnswer = errors.New("answer is empty")

// RawRecord is the undecoded form of one question record.
type RawRecord struct {
	Question string   `json:"question"`
	Options  []string `json:"options"`
	Answer   string   `json:"answer"`
}

// MalformedRecordError describes a dropped record.
type MalformedRecordError struct {
	Index    int    // position in the source array
	Question string // cleaned prompt when it could be read
	Err      error
}

func (e *MalformedRecordError) Error() string {
	if e.Question != "" {
		return fmt.Sprintf("record %d (%q): %v", e.Index, e.Question, e.Err)
	}
	return fmt.Sprintf("record %d: %v", e.Index, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

// Report summarizes one Normalize call.
type Report struct {
	Source  string
	Total   int
	Kept    int
	Dropped []*MalformedRecordError
}

// Normalizer turns raw records into questions and logs what it drops.
type Normalizer struct {
	logger *zap.Logger
}

// New creates a Normalizer. A nil logger discards output.
func New(logger *zap.Logger) *Normalizer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Normalizer{logger: logger}
}

// Normalize processes every record independently. The returned slice holds
// the usable questions in source order; len(out) == report.Total - len(report.Dropped).
func (n *Normalizer) Normalize(source string, records []json.RawMessage) ([]quiz.Question, Report) {
	report := Report{Source: source, Total: len(records)}
	out := make([]quiz.Question, 0, len(records))

	for i, raw := range records {
		q, err := decodeAndNormalize(raw)
		if err != nil {
			merr := &MalformedRecordError{Index: i, Err: err}
			var inner *MalformedRecordError
			if errors.As(err, &inner) {
				merr = inner
				merr.Index = i
			}
			report.Dropped = append(report.Dropped, merr)
			n.logger.Warn("skipping malformed record",
				zap.String("source", source),
				zap.Int("index", i),
				zap.String("reason", merr.Err.Error()),
			)
			continue
		}
		out = append(out, q)
	}

	report.Kept = len(out)
	n.logger.Info("normalized quiz source",
		zap.String("source", source),
		zap.Int("total", report.Total),
		zap.Int("kept", report.Kept),
		zap.Int("dropped", len(report.Dropped)),
	)
	return out, report
}

func decodeAndNormalize(raw json.RawMessage) (quiz.Question, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return quiz.Question{}, fmt.Errorf("invalid JSON: %w", err)
	}
	if err := validateShape(doc); err != nil {
		return quiz.Question{}, err
	}

	var r RawRecord
	if err := json.Unmarshal(raw, &r); err != nil {
		return quiz.Question{}, fmt.Errorf("decode record: %w", err)
	}
	return NormalizeRecord(r)
}

// NormalizeRecord cleans a single record. On failure the error is a
// *MalformedRecordError carrying the cleaned prompt.
func NormalizeRecord(r RawRecord) (quiz.Question, error) {
	question := StripQuestionMarker(r.Question)

	answer := AnswerText(r.Answer)
	if answer == "" {
		return quiz.Question{}, &MalformedRecordError{Question: question, Err: ErrEmptyAnswer}
	}
	if len(r.Options) == 0 {
		return quiz.Question{}, &MalformedRecordError{Question: question, Err: errors.New("no options")}
	}

	options := make([]string, len(r.Options))
	for i, opt := range r.Options {
		options[i] = StripLetterMarker(opt)
	}

	matched, ok := MatchAnswer(options, answer)
	if !ok {
		return quiz.Question{}, &MalformedRecordError{Question: question, Err: ErrNoMatch}
	}

	return quiz.Question{
		Question: question,
		Options:  options,
		Answer:   matched,
	}, nil
}
