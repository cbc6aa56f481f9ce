package report

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
)

var (
	DetailHeader  = []string{"date", "segment", "sentiment", "positive", "neutral", "negative"}
	SummaryHeader = []string{"date", "positive", "neutral", "negative"}
)

// DetailRow is the result for one window of a record
type DetailRow struct {
	Date    string
	Segment int
	Score   sentiment.Score
}

// SummaryRow holds the mean scores over all windows of a record
type SummaryRow struct {
	Date     string
	Positive float64
	Neutral  float64
	Negative float64
}

// target is one append-only CSV file
type target struct {
	f *os.File
	w *csv.Writer
}

// Writer appends detail and summary rows to their CSV files.
// It is scoped to one input file and must be closed when that file is done.
type Writer struct {
	detail  *target
	summary *target
}

// Open opens both outputs for appending, writing each header only when its file
// does not exist yet. Existing files are appended to without looking at their header.
func Open(detailPath, summaryPath string) (*Writer, error) {
	detail, err := openTarget(detailPath, DetailHeader)
	if err != nil {
		return nil, fmt.Errorf("open detail output: %w", err)
	}

	summary, err := openTarget(summaryPath, SummaryHeader)
	if err != nil {
		detail.f.Close()
		return nil, fmt.Errorf("open summary output: %w", err)
	}

	return &Writer{detail: detail, summary: summary}, nil
}

func openTarget(path string, header []string) (*target, error) {
	_, err := os.Stat(path)
	exists := err == nil
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	if !exists {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("create output dir: %w", err)
			}
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}

	t := &target{f: f, w: csv.NewWriter(f)}
	if !exists {
		if err := t.write(header); err != nil {
			f.Close()
			return nil, fmt.Errorf("write header: %w", err)
		}
	}
	return t, nil
}

// write emits one line and flushes it so it reaches the file in a single write
func (t *target) write(record []string) error {
	if err := t.w.Write(record); err != nil {
		return err
	}
	t.w.Flush()
	return t.w.Error()
}

// WriteDetail appends one window row
func (w *Writer) WriteDetail(row DetailRow) error {
	if err := w.detail.write([]string{
		row.Date,
		strconv.Itoa(row.Segment),
		string(row.Score.Label),
		FormatScore(row.Score.Positive),
		FormatScore(row.Score.Neutral),
		FormatScore(row.Score.Negative),
	}); err != nil {
		return fmt.Errorf("write detail row: %w", err)
	}
	return nil
}

// WriteSummary appends one record summary row
func (w *Writer) WriteSummary(row SummaryRow) error {
	if err := w.summary.write([]string{
		row.Date,
		FormatScore(row.Positive),
		FormatScore(row.Neutral),
		FormatScore(row.Negative),
	}); err != nil {
		return fmt.Errorf("write summary row: %w", err)
	}
	return nil
}

// Close flushes and closes both files
func (w *Writer) Close() error {
	return errors.Join(w.detail.close(), w.summary.close())
}

func (t *target) close() error {
	t.w.Flush()
	flushErr := t.w.Error()
	closeErr := t.f.Close()
	if flushErr != nil {
		return flushErr
	}
	return closeErr
}

// FormatScore renders a score with the fewest digits that parse back to the same value
func FormatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
