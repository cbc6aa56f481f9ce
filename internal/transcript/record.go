package transcript

import (
	"iter"
	"strings"
)

// DefaultDelimiter separates records in an exported transcript file
const DefaultDelimiter = "**"

// Record is one dated entry of a transcript file
type Record struct {
	Date string
	Body string
}

// Records lazily yields the well-formed records of content.
// A raw record is split on its first line break into the date line and the body.
// Records without a line break, with a blank date or with a blank body are skipped.
func Records(content, delimiter string) iter.Seq[Record] {
	if delimiter == "" {
		delimiter = DefaultDelimiter
	}
	return func(yield func(Record) bool) {
		for raw := range strings.SplitSeq(content, delimiter) {
			rec, ok := parseRecord(raw)
			if !ok {
				continue
			}
			if !yield(rec) {
				return
			}
		}
	}
}

// Parse collects Records into a slice
func Parse(content, delimiter string) []Record {
	var out []Record
	for rec := range Records(content, delimiter) {
		out = append(out, rec)
	}
	return out
}

func parseRecord(raw string) (Record, bool) {
	if strings.TrimSpace(raw) == "" {
		return Record{}, false
	}
	date, body, found := strings.Cut(raw, "\n")
	if !found {
		return Record{}, false
	}
	date = strings.TrimSpace(date)
	if date == "" || strings.TrimSpace(body) == "" {
		return Record{}, false
	}
	return Record{Date: date, Body: body}, true
}
