package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// TableWatcher watches the cipher table file for changes and triggers reload
// callbacks. The parent directory is watched rather than the file itself
// because editors commonly write a temp file and rename it over the target.
type TableWatcher struct {
	tablePath    string
	watcher      *fsnotify.Watcher
	reloadFunc   func(string) error
	logger       *slog.Logger
	mu           sync.RWMutex
	running      bool
	stopCh       chan struct{}
	debounceTime time.Duration
}

// NewTableWatcher creates a new table file watcher.
func NewTableWatcher(tablePath string, reloadFunc func(string) error, logger *slog.Logger) (*TableWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &TableWatcher{
		tablePath:    tablePath,
		watcher:      watcher,
		reloadFunc:   reloadFunc,
		logger:       logger,
		stopCh:       make(chan struct{}),
		debounceTime: 1 * time.Second, // Debounce multiple rapid changes
	}, nil
}

// Start begins watching the table file for changes.
func (tw *TableWatcher) Start(ctx context.Context) error {
	tw.mu.Lock()
	if tw.running {
		tw.mu.Unlock()
		return nil
	}
	tw.running = true
	tw.mu.Unlock()

	tableDir := filepath.Dir(tw.tablePath)
	if err := tw.watcher.Add(tableDir); err != nil {
		tw.mu.Lock()
		tw.running = false
		tw.mu.Unlock()
		return err
	}

	tw.logger.Info("Table watcher started", "table_path", tw.tablePath)

	go tw.watchLoop(ctx)
	return nil
}

// Stop stops the table file watcher.
func (tw *TableWatcher) Stop() error {
	tw.mu.Lock()
	if !tw.running {
		tw.mu.Unlock()
		return nil
	}
	tw.running = false
	tw.mu.Unlock()

	close(tw.stopCh)
	return tw.watcher.Close()
}

// watchLoop is the main event loop for file watching.
func (tw *TableWatcher) watchLoop(ctx context.Context) {
	var debounceTimer *time.Timer
	var pendingReload bool

	defer func() {
		if debounceTimer != nil {
			debounceTimer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-tw.watcher.Events:
			if !ok {
				return
			}

			if !tw.isTableFileEvent(event) {
				continue
			}

			tw.logger.Debug("Table file event detected",
				"event", event.Op.String(),
				"file", event.Name)

			if event.Op&fsnotify.Write == fsnotify.Write ||
				event.Op&fsnotify.Create == fsnotify.Create {

				if debounceTimer != nil {
					debounceTimer.Stop()
				}

				pendingReload = true
				debounceTimer = time.AfterFunc(tw.debounceTime, func() {
					if pendingReload {
						tw.triggerReload()
						pendingReload = false
					}
				})
			}

		case err, ok := <-tw.watcher.Errors:
			if !ok {
				return
			}
			tw.logger.Error("Table watcher error", "error", err)

		case <-tw.stopCh:
			tw.logger.Info("Table watcher stopped")
			return

		case <-ctx.Done():
			tw.logger.Info("Table watcher context cancelled")
			return
		}
	}
}

// isTableFileEvent checks if the event is for our table file.
func (tw *TableWatcher) isTableFileEvent(event fsnotify.Event) bool {
	eventPath, err := filepath.Abs(event.Name)
	if err != nil {
		return false
	}

	tablePath, err := filepath.Abs(tw.tablePath)
	if err != nil {
		return false
	}

	return eventPath == tablePath
}

// triggerReload triggers the table reload callback.
func (tw *TableWatcher) triggerReload() {
	tw.logger.Info("Table file changed, triggering reload", "table_path", tw.tablePath)

	start := time.Now()
	if err := tw.reloadFunc(tw.tablePath); err != nil {
		tw.logger.Error("Table reload failed",
			"error", err,
			"duration", time.Since(start))
	} else {
		tw.logger.Info("Table reload completed successfully",
			"duration", time.Since(start))
	}
}

// IsRunning returns whether the watcher is currently running.
func (tw *TableWatcher) IsRunning() bool {
	tw.mu.RLock()
	defer tw.mu.RUnlock()
	return tw.running
}
