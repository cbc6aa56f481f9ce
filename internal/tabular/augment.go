package tabular

import (
	"cmp"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/nguyentantai21042004/sentiment-flow/internal/report"
	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
)

var (
	ErrMissingColumn = errors.New("required column not found")
	ErrEmptyInput    = errors.New("input has no header row")
)

// scoredRow keeps a row together with everything derived from its single service call
type scoredRow struct {
	fields []string
	score  sentiment.Score
}

func (r scoredRow) record(mode Mode) []string {
	out := append([]string(nil), r.fields...)
	out = append(out, string(r.score.Label))
	if mode == ModeFull {
		out = append(out,
			report.FormatScore(r.score.Positive),
			report.FormatScore(r.score.Neutral),
			report.FormatScore(r.score.Negative),
		)
	}
	return out
}

func (a *implAugmenter) Augment(ctx context.Context, in, out string, mode Mode) (int, error) {
	a.logger.Info(ctx, "Running tweet analysis: %s", in)

	header, records, err := readCSV(in)
	if err != nil {
		return 0, err
	}

	col := slices.Index(header, mode.TextColumn())
	if col < 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, mode.TextColumn())
	}

	rows := make([]scoredRow, 0, len(records))
	for i, rec := range records {
		if col >= len(rec) {
			return 0, fmt.Errorf("row %d: missing %s value", i+1, mode.TextColumn())
		}
		score, err := a.client.Analyze(ctx, rec[col])
		if err != nil {
			return 0, fmt.Errorf("analyze row %d: %w", i+1, err)
		}
		rows = append(rows, scoredRow{fields: rec, score: score})
		a.logger.Debug(ctx, "Row %d: %s", i+1, score.Label)
	}

	slices.SortStableFunc(rows, func(x, y scoredRow) int {
		return cmp.Compare(y.score.Label, x.score.Label)
	})

	if err := writeCSV(out, append(header, mode.Columns()...), rows, mode); err != nil {
		return 0, err
	}

	a.logger.Info(ctx, "Successfully written %d row(s) to %s", len(rows), out)
	return len(rows), nil
}

func readCSV(path string) ([]string, [][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	// raw tweets carry bare quotes
	r.LazyQuotes = true

	header, err := r.Read()
	if err == io.EOF {
		return nil, nil, ErrEmptyInput
	}
	if err != nil {
		return nil, nil, fmt.Errorf("read header: %w", err)
	}

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, fmt.Errorf("read rows: %w", err)
	}
	return header, records, nil
}

func writeCSV(path string, header []string, rows []scoredRow, mode Mode) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		f.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row.record(mode)); err != nil {
			f.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		f.Close()
		return fmt.Errorf("flush output: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}
