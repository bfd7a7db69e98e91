package services

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/olivercappis/BJJ-diary/internal/logger"
)

// dbWatcher watches the database file for external changes, for example a
// second bjjdiary instance or a sync tool rewriting the file. With WAL mode
// active writes land in the -wal sidecar first, so the watcher matches the
// database base name as a prefix.
type dbWatcher struct {
	mu            sync.Mutex
	path          string
	manager       *Manager
	watcher       *fsnotify.Watcher
	debounceTimer *time.Timer
	stopChan      chan struct{}
}

// newDBWatcher starts watching the directory containing the database file.
func newDBWatcher(path string, manager *Manager) (*dbWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	w := &dbWatcher{
		path:     path,
		manager:  manager,
		watcher:  watcher,
		stopChan: make(chan struct{}),
	}

	// Watch the directory to catch file creation and atomic replace
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		if closeErr := watcher.Close(); closeErr != nil {
			logger.Error("failed to close watcher", "error", closeErr)
		}
		return nil, err
	}

	go w.watchLoop()
	return w, nil
}

// watchLoop handles file system events with debouncing.
func (w *dbWatcher) watchLoop() {
	const debounceInterval = 250 * time.Millisecond

	base := filepath.Base(w.path)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			// The database file plus its -wal and -shm sidecars
			if !strings.HasPrefix(filepath.Base(event.Name), base) {
				continue
			}

			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				w.mu.Lock()
				if w.debounceTimer != nil {
					w.debounceTimer.Stop()
				}
				w.debounceTimer = time.AfterFunc(debounceInterval, func() {
					w.manager.bump()
				})
				w.mu.Unlock()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.manager.broadcast(ErrorEvent{Service: "watcher", Error: err})

		case <-w.stopChan:
			return
		}
	}
}

// close stops the watcher and cleans up resources.
func (w *dbWatcher) close() error {
	close(w.stopChan)

	w.mu.Lock()
	if w.debounceTimer != nil {
		w.debounceTimer.Stop()
	}
	w.mu.Unlock()

	if w.watcher != nil {
		return w.watcher.Close()
	}
	return nil
}
