package watcher

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/nguyentantai21042004/sentiment-flow/internal/logger"
	"github.com/nguyentantai21042004/sentiment-flow/internal/scanner"
)

type implWatcher struct {
	inputDir    string
	ext         string
	handler     EventHandler
	logger      logger.Logger
	watcher     *fsnotify.Watcher
	settleDelay time.Duration
}

// Start monitors the input directory and hands new transcript files to the handler.
// Files are handled one at a time on the calling goroutine.
func (w *implWatcher) Start(ctx context.Context) error {
	w.logger.Info(ctx, "File watcher started. Monitoring: %s (*.%s)", w.inputDir, w.ext)

	for {
		select {
		case <-ctx.Done():
			w.logger.Info(ctx, "File watcher stopped")
			return ctx.Err()

		case event, ok := <-w.watcher.Events:
			if !ok {
				return fmt.Errorf("watcher events channel closed")
			}

			// Only process CREATE events
			if event.Op&fsnotify.Create != fsnotify.Create {
				continue
			}
			if !w.isTranscriptFile(event.Name) {
				w.logger.Debug(ctx, "Ignoring: %s", event.Name)
				continue
			}

			w.logger.Info(ctx, "New transcript detected: %s", event.Name)

			// Give the writer a moment to finish
			select {
			case <-time.After(w.settleDelay):
			case <-ctx.Done():
				return ctx.Err()
			}

			if err := w.handler(ctx, event.Name); err != nil {
				w.logger.Error(ctx, "Failed to process %s: %v", event.Name, err)
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return fmt.Errorf("watcher errors channel closed")
			}
			w.logger.Error(ctx, "Watcher error: %v", err)
		}
	}
}

// Stop closes the file watcher
func (w *implWatcher) Stop() error {
	return w.watcher.Close()
}

// isTranscriptFile checks the extension and skips directories
func (w *implWatcher) isTranscriptFile(path string) bool {
	if !scanner.HasExtension(path, w.ext) {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
