package tabular

import "context"

// Augmenter adds sentiment columns to a CSV of tweets
type Augmenter interface {
	// Augment reads in, scores every row and writes out sorted descending by sentiment.
	// It returns the number of data rows written.
	Augment(ctx context.Context, in, out string, mode Mode) (int, error)
}

// Mode selects which column is read and which columns are added
type Mode int

const (
	// ModeFull reads clean_tweet and adds sentiment_summary, positive, neutral, negative
	ModeFull Mode = iota
	// ModeSummary reads tweet and adds sentiment_summary only
	ModeSummary
)

// TextColumn is the input column holding the text to score
func (m Mode) TextColumn() string {
	if m == ModeSummary {
		return "tweet"
	}
	return "clean_tweet"
}

// Columns are the headers appended to every row
func (m Mode) Columns() []string {
	if m == ModeSummary {
		return []string{SentimentColumn}
	}
	return []string{SentimentColumn, "positive", "neutral", "negative"}
}

// SentimentColumn is the label column the output is sorted by
const SentimentColumn = "sentiment_summary"
