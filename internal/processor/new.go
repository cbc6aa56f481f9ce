package processor

import (
	"time"

	"github.com/nguyentantai21042004/sentiment-flow/internal/config"
	"github.com/nguyentantai21042004/sentiment-flow/internal/logger"
	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
)

type implProcessor struct {
	cfg    *config.Config
	client sentiment.Client
	logger logger.Logger
	now    func() time.Time
}

// New creates a new Processor instance
func New(cfg *config.Config, client sentiment.Client, log logger.Logger) Processor {
	return &implProcessor{
		cfg:    cfg,
		client: client,
		logger: log,
		now:    time.Now,
	}
}
