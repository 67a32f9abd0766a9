package render

import (
	"fmt"
	"strings"
	"time"
)

// SafeString returns v unchanged when it is a string and "" otherwise, so
// missing or malformed fields never surface as "null" in the output.
func SafeString(v interface{}) string {
	if s, ok := v.(string); ok {
		return s
	}
	return ""
}

// SafeList returns the slice unchanged, or an empty one when it is nil.
func SafeList[T any](v []T) []T {
	if v == nil {
		return []T{}
	}
	return v
}

// DateFormat selects the human convention a style applies to parsed dates.
// A single style always uses one convention throughout.
type DateFormat int

const (
	// DateMonthYear renders "Jan 2020" with a localized month abbreviation.
	DateMonthYear DateFormat = iota
	// DateYearOnly renders "2020".
	DateYearOnly
	// DateNumeric renders "01/2020".
	DateNumeric
)

var dateLayouts = []string{
	"2006-01-02",
	"2006-01",
	"2006",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

func parseDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate formats a date-like string for the given UI language. Anything
// that does not parse passes through unchanged; the function never fails and
// never produces an "Invalid Date" artifact.
func FormatDate(dateLike, lang string, format DateFormat) string {
	t, ok := parseDate(dateLike)
	if !ok {
		return dateLike
	}
	switch format {
	case DateYearOnly:
		return fmt.Sprintf("%d", t.Year())
	case DateNumeric:
		return fmt.Sprintf("%02d/%d", int(t.Month()), t.Year())
	default:
		months := monthsFor(lang)
		return fmt.Sprintf("%s %d", months[int(t.Month())-1], t.Year())
	}
}

// RangeOptions carries the per-style knobs for date ranges. The zero value
// is a sensible default: month-year dates, en-dash separator, "Present".
type RangeOptions struct {
	Format       DateFormat
	Separator    string // defaults to "–"
	PresentLabel string // defaults to the localized "Present"
}

// FormatDateRange renders "<start> – <end>" according to the rules shared by
// every template: no end and not current renders the start alone, current
// replaces the end with the localized Present/Current word.
func FormatDateRange(start, end string, isCurrent bool, lang string, opts RangeOptions) string {
	sep := opts.Separator
	if sep == "" {
		sep = "–"
	}
	s := FormatDate(start, lang, opts.Format)
	if end == "" && !isCurrent {
		return s
	}
	var e string
	if isCurrent {
		e = opts.PresentLabel
		if e == "" {
			e = LabelsFor(lang).Present
		}
	} else {
		e = FormatDate(end, lang, opts.Format)
	}
	return s + " " + sep + " " + e
}

var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&#34;",
	"'", "&#39;",
)

// EscapeHTML encodes text for insertion into markup as plain text. Every
// caller-supplied string must pass through here exactly once before it is
// written into the document.
func EscapeHTML(text string) string {
	return htmlEscaper.Replace(text)
}

// LevelUnits maps a proficiency code to the number of filled units on a dot
// or bar indicator of the given scale. Unknown codes land on the lowest
// tier and the result is always within [1, scale].
func LevelUnits(level string, scale int) int {
	if scale <= 0 {
		scale = 5
	}
	units := map[string]int{
		"basic":        2,
		"intermediate": 3,
		"advanced":     4,
		"native":       5,
	}
	n, ok := units[level]
	if !ok {
		n = 2
	}
	if scale != 5 {
		// rescale to the indicator's own total
		n = n * scale / 5
	}
	if n < 1 {
		n = 1
	}
	if n > scale {
		n = scale
	}
	return n
}
