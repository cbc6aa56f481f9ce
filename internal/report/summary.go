package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
)

// ReadSummaries loads every well-formed row of a summary CSV.
// Header lines and rows that do not parse are skipped, since the file
// accumulates across runs and may hold repeated headers from older versions.
func ReadSummaries(path string) ([]SummaryRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open summary: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1

	var rows []SummaryRow
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read summary: %w", err)
		}
		if row, ok := parseSummary(rec); ok {
			rows = append(rows, row)
		}
	}
	return rows, nil
}

func parseSummary(rec []string) (SummaryRow, bool) {
	if len(rec) != len(SummaryHeader) {
		return SummaryRow{}, false
	}
	var vals [3]float64
	for i := range vals {
		v, err := strconv.ParseFloat(rec[i+1], 64)
		if err != nil {
			return SummaryRow{}, false
		}
		vals[i] = v
	}
	return SummaryRow{Date: rec[0], Positive: vals[0], Neutral: vals[1], Negative: vals[2]}, true
}

// Dominant returns the label of the highest mean score; ties favour neutral, then positive
func (s SummaryRow) Dominant() sentiment.Label {
	switch {
	case s.Neutral >= s.Positive && s.Neutral >= s.Negative:
		return sentiment.LabelNeutral
	case s.Positive >= s.Negative:
		return sentiment.LabelPositive
	default:
		return sentiment.LabelNegative
	}
}
