package sentiment

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

const geminiProvider = "gemini"

const sentimentPrompt = `Classify the overall sentiment of the text between the markers.
Return JSON with "sentiment" (one of positive, neutral, negative, mixed) and
confidence scores "positive", "neutral", "negative" between 0 and 1 that sum to 1.

---
%s
---`

var sentimentSchema = &genai.Schema{
	Type: genai.TypeObject,
	Properties: map[string]*genai.Schema{
		"sentiment": {
			Type: genai.TypeString,
			Enum: []string{string(LabelPositive), string(LabelNeutral), string(LabelNegative), string(LabelMixed)},
		},
		"positive": {Type: genai.TypeNumber},
		"neutral":  {Type: genai.TypeNumber},
		"negative": {Type: genai.TypeNumber},
	},
	Required: []string{"sentiment", "positive", "neutral", "negative"},
}

type geminiResult struct {
	Sentiment string  `json:"sentiment"`
	Positive  float64 `json:"positive"`
	Neutral   float64 `json:"neutral"`
	Negative  float64 `json:"negative"`
}

// generateFunc sends prompt with the given key and returns the concatenated response text
type generateFunc func(ctx context.Context, key, prompt string) (string, error)

type gemini struct {
	apiKeys    []string
	currentKey int
	generate   generateFunc

	mu      sync.Mutex
	model   string
	clients map[string]*genai.Client
}

// NewGemini returns a Client that asks a Gemini model for a structured sentiment verdict.
// It rotates through apiKeys when a key is rate limited.
func NewGemini(apiKeys []string, model string) Client {
	g := &gemini{
		apiKeys: apiKeys,
		model:   model,
		clients: make(map[string]*genai.Client),
	}
	g.generate = g.callGemini
	return g
}

func (g *gemini) Analyze(ctx context.Context, text string) (Score, error) {
	if len(g.apiKeys) == 0 {
		return Score{}, &ServiceError{Provider: geminiProvider, Err: errors.New("no API keys configured")}
	}

	prompt := fmt.Sprintf(sentimentPrompt, text)

	var lastErr error
	for range len(g.apiKeys) {
		raw, err := g.generate(ctx, g.apiKeys[g.currentKey], prompt)
		if err != nil {
			if isRateLimited(err) {
				g.rotateKey()
				lastErr = err
				continue
			}
			return Score{}, &ServiceError{Provider: geminiProvider, Err: err}
		}

		score, err := parseGeminiResult(raw)
		if err != nil {
			return Score{}, &ServiceError{Provider: geminiProvider, Err: err}
		}
		return score, nil
	}

	return Score{}, &ServiceError{Provider: geminiProvider, Err: fmt.Errorf("all API keys exhausted: %w", lastErr)}
}

func (g *gemini) callGemini(ctx context.Context, key, prompt string) (string, error) {
	client, err := g.client(ctx, key)
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:      genai.Ptr[float32](0),
		ResponseMIMEType: "application/json",
		ResponseSchema:   sentimentSchema,
	})
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if result != nil && len(result.Candidates) > 0 && result.Candidates[0].Content != nil {
		var text string
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				text += part.Text
			}
		}
		return text, nil
	}

	return "", errors.New("empty response from Gemini")
}

func (g *gemini) client(ctx context.Context, key string) (*genai.Client, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if c, ok := g.clients[key]; ok {
		return c, nil
	}
	c, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, err
	}
	g.clients[key] = c
	return c, nil
}

func (g *gemini) rotateKey() {
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
}

func isRateLimited(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") || strings.Contains(msg, "quota") || strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func parseGeminiResult(raw string) (Score, error) {
	raw = strings.TrimSpace(raw)
	raw = strings.TrimPrefix(raw, "```json")
	raw = strings.TrimPrefix(raw, "```")
	raw = strings.TrimSuffix(raw, "```")

	var res geminiResult
	if err := json.Unmarshal([]byte(strings.TrimSpace(raw)), &res); err != nil {
		return Score{}, fmt.Errorf("decode verdict: %w", err)
	}
	label, err := ParseLabel(res.Sentiment)
	if err != nil {
		return Score{}, err
	}
	return Score{
		Label:    label,
		Positive: clamp01(res.Positive),
		Neutral:  clamp01(res.Neutral),
		Negative: clamp01(res.Negative),
	}, nil
}
