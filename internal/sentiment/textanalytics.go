package sentiment

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

const (
	textAnalyticsProvider = "textanalytics"
	sentimentPath         = "/text/analytics/v3.1/sentiment"
	maxErrBody            = 4096
)

// --- Text Analytics (/text/analytics/v3.1/sentiment) ---
type taDocument struct {
	ID       string `json:"id"`
	Language string `json:"language,omitempty"`
	Text     string `json:"text"`
}

type taRequest struct {
	Documents []taDocument `json:"documents"`
}

type taConfidence struct {
	Positive float64 `json:"positive"`
	Neutral  float64 `json:"neutral"`
	Negative float64 `json:"negative"`
}

type taDocumentResult struct {
	ID               string       `json:"id"`
	Sentiment        string       `json:"sentiment"`
	ConfidenceScores taConfidence `json:"confidenceScores"`
}

type taError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type taDocumentError struct {
	ID    string  `json:"id"`
	Error taError `json:"error"`
}

type taResponse struct {
	Documents []taDocumentResult `json:"documents"`
	Errors    []taDocumentError  `json:"errors"`
}

type textAnalytics struct {
	c        *http.Client
	endpoint string
	key      string
	language string
}

// NewTextAnalytics returns a Client backed by the Azure Text Analytics REST API
func NewTextAnalytics(endpoint, key, language string, timeout time.Duration) Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &textAnalytics{
		c:        &http.Client{Timeout: timeout},
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		language: language,
	}
}

func (t *textAnalytics) Analyze(ctx context.Context, text string) (Score, error) {
	score, err := t.analyze(ctx, text)
	if err != nil {
		return Score{}, &ServiceError{Provider: textAnalyticsProvider, Err: err}
	}
	return score, nil
}

func (t *textAnalytics) analyze(ctx context.Context, text string) (Score, error) {
	b, err := json.Marshal(taRequest{Documents: []taDocument{{ID: "1", Language: t.language, Text: text}}})
	if err != nil {
		return Score{}, fmt.Errorf("marshal: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint+sentimentPath, bytes.NewReader(b))
	if err != nil {
		return Score{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Ocp-Apim-Subscription-Key", t.key)

	resp, err := t.c.Do(req)
	if err != nil {
		return Score{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrBody))
		return Score{}, fmt.Errorf("%s: %s", resp.Status, strings.TrimSpace(string(body)))
	}

	var out taResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Score{}, fmt.Errorf("decode: %w", err)
	}
	if len(out.Errors) > 0 {
		e := out.Errors[0].Error
		return Score{}, fmt.Errorf("document error %s: %s", e.Code, e.Message)
	}
	if len(out.Documents) == 0 {
		return Score{}, errors.New("empty response")
	}

	doc := out.Documents[0]
	label, err := ParseLabel(doc.Sentiment)
	if err != nil {
		return Score{}, err
	}
	return Score{
		Label:    label,
		Positive: doc.ConfidenceScores.Positive,
		Neutral:  doc.ConfidenceScores.Neutral,
		Negative: doc.ConfidenceScores.Negative,
	}, nil
}
