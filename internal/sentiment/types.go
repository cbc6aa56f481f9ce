package sentiment

import (
	"fmt"
	"strings"
)

// Label is the document-level sentiment reported by the service
type Label string

const (
	LabelPositive Label = "positive"
	LabelNeutral  Label = "neutral"
	LabelNegative Label = "negative"
	LabelMixed    Label = "mixed"
)

// ParseLabel accepts any casing of the four known labels
func ParseLabel(s string) (Label, error) {
	switch l := Label(strings.ToLower(strings.TrimSpace(s))); l {
	case LabelPositive, LabelNeutral, LabelNegative, LabelMixed:
		return l, nil
	}
	return "", fmt.Errorf("unknown sentiment label %q", s)
}

// Score holds one service result. Confidence values are in [0, 1].
type Score struct {
	Label    Label
	Positive float64
	Neutral  float64
	Negative float64
}

// ServiceError wraps any failure talking to the sentiment provider
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("sentiment %s: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}
