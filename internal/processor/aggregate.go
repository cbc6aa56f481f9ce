package processor

import (
	"context"
	"errors"
	"fmt"

	"github.com/nguyentantai21042004/sentiment-flow/internal/report"
	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
	"github.com/nguyentantai21042004/sentiment-flow/internal/transcript"
)

// rowSink receives rows in the order they are produced
type rowSink interface {
	WriteDetail(row report.DetailRow) error
	WriteSummary(row report.SummaryRow) error
}

// aggregate scores every window of rec in order, writing a detail row per window
// and, once all windows succeeded, one summary row with the mean scores.
// It returns the number of windows scored.
func (p *implProcessor) aggregate(ctx context.Context, rec transcript.Record, sink rowSink) (int, error) {
	size := p.cfg.Transcripts.WindowSize
	n := transcript.WindowCount(rec.Body, size)
	if n == 0 {
		return 0, nil
	}

	var totalPositive, totalNeutral, totalNegative float64

	for i, text := range transcript.Windows(rec.Body, size) {
		score, err := p.client.Analyze(ctx, text)
		if err != nil {
			var svcErr *sentiment.ServiceError
			if !errors.As(err, &svcErr) {
				err = &sentiment.ServiceError{Provider: p.cfg.Sentiment.Provider, Err: err}
			}
			return i, fmt.Errorf("analyze %s segment %d: %w", rec.Date, i+1, err)
		}

		if err := sink.WriteDetail(report.DetailRow{Date: rec.Date, Segment: i + 1, Score: score}); err != nil {
			return i, err
		}

		totalPositive += score.Positive
		totalNeutral += score.Neutral
		totalNegative += score.Negative
	}

	count := float64(n)
	if err := sink.WriteSummary(report.SummaryRow{
		Date:     rec.Date,
		Positive: totalPositive / count,
		Neutral:  totalNeutral / count,
		Negative: totalNegative / count,
	}); err != nil {
		return n, err
	}

	return n, nil
}
