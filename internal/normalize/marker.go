package normalize

import (
	"regexp"
	"strings"
)

var (
	// "12. ", "12.. ", "3 .": digits, optional space, one or more dots.
	questionMarker = regexp.MustCompile(`^\d+\s*\.+\s*`)

	// "a. ", "B) ": a single letter followed by '.' or ')'.
	letterMarker = regexp.MustCompile(`^[a-zA-Z][.)]\s*`)
)

// StripQuestionMarker removes a leading numeric marker and trims the result.
func StripQuestionMarker(s string) string {
	return strings.TrimSpace(questionMarker.ReplaceAllString(s, ""))
}

// StripLetterMarker removes a leading single-letter marker and trims the result.
func StripLetterMarker(s string) string {
	return strings.TrimSpace(letterMarker.ReplaceAllString(s, ""))
}

// AnswerText returns the text to search for among the cleaned options.
// A lettered answer loses its marker; anything else is used as-is.
func AnswerText(raw string) string {
	if letterMarker.MatchString(raw) {
		return StripLetterMarker(raw)
	}
	return raw
}

// MatchAnswer returns the first option containing answer as a substring.
// When one option is a substring of another ("Red", "Dark Red") the earlier
// option in list order wins.
func MatchAnswer(options []string, answer string) (string, bool) {
	for _, opt := range options {
		if strings.Contains(opt, answer) {
			return opt, true
		}
	}
	return "", false
}
