package sentiment

import "context"

// Client scores a span of text. Implementations make exactly one service call per Analyze.
type Client interface {
	Analyze(ctx context.Context, text string) (Score, error)
}
