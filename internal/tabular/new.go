package tabular

import (
	"github.com/nguyentantai21042004/sentiment-flow/internal/logger"
	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
)

type implAugmenter struct {
	client sentiment.Client
	logger logger.Logger
}

// New creates an Augmenter that scores rows with client
func New(client sentiment.Client, log logger.Logger) Augmenter {
	return &implAugmenter{
		client: client,
		logger: log,
	}
}
