package watcher

import (
	"fmt"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/sentiment-flow/internal/logger"
)

const defaultSettleDelay = 500 * time.Millisecond

// New creates a Watcher that calls handler for every new file in inputDir with extension ext
func New(inputDir, ext string, handler EventHandler, log logger.Logger) (Watcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}

	if err := watcher.Add(inputDir); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("add watch path: %w", err)
	}

	return &implWatcher{
		inputDir:    inputDir,
		ext:         ext,
		handler:     handler,
		logger:      log,
		watcher:     watcher,
		settleDelay: defaultSettleDelay,
	}, nil
}
