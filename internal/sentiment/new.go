package sentiment

import (
	"fmt"

	"github.com/nguyentantai21042004/sentiment-flow/internal/config"
)

// New builds the Client selected by cfg.Provider
func New(cfg config.SentimentConfig) (Client, error) {
	switch cfg.Provider {
	case config.ProviderTextAnalytics:
		return NewTextAnalytics(cfg.Endpoint, cfg.APIKey, cfg.Language, cfg.Timeout), nil
	case config.ProviderGemini:
		return NewGemini(cfg.APIKeys, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unsupported sentiment provider %q", cfg.Provider)
	}
}
