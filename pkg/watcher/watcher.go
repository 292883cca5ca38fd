// Package watcher reports changes to individual files, such as label lists
// and model sources edited while a viewer is open.
package watcher

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls back once per burst of changes to a watched file.
// Parent directories are watched rather than the files themselves so that
// editors that save by rename keep being tracked.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    *slog.Logger
	debounce  time.Duration
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	timers    map[string]*time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher creates a watcher. A nil logger discards watcher errors.
func NewFileWatcher(debounce time.Duration, logger *slog.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &FileWatcher{
		watcher:   w,
		logger:    logger,
		debounce:  debounce,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}, nil
}

// Watch registers callback for each file. Callbacks run on a timer
// goroutine; GUI hosts must hand them over to their UI thread.
func (fw *FileWatcher) Watch(files []string, callback func(string)) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for _, file := range files {
		path, err := filepath.Abs(file)
		if err != nil {
			return fmt.Errorf("failed to resolve path %s: %w", file, err)
		}
		if _, ok := fw.callbacks[path]; ok {
			fw.callbacks[path] = callback
			continue
		}

		dir := filepath.Dir(path)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		fw.dirs[dir]++
		fw.callbacks[path] = callback
	}

	return nil
}

// Unwatch stops reporting changes to file
func (fw *FileWatcher) Unwatch(file string) error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	path, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}
	return fw.unwatch(path)
}

func (fw *FileWatcher) unwatch(path string) error {
	if _, ok := fw.callbacks[path]; !ok {
		return nil
	}
	delete(fw.callbacks, path)
	if timer, ok := fw.timers[path]; ok {
		timer.Stop()
		delete(fw.timers, path)
	}

	dir := filepath.Dir(path)
	fw.dirs[dir]--
	if fw.dirs[dir] > 0 {
		return nil
	}
	delete(fw.dirs, dir)
	if err := fw.watcher.Remove(dir); err != nil {
		return fmt.Errorf("failed to unwatch %s: %w", dir, err)
	}
	return nil
}

// RemoveAll stops reporting changes to every file
func (fw *FileWatcher) RemoveAll() error {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	for path := range fw.callbacks {
		if err := fw.unwatch(path); err != nil {
			return err
		}
	}
	return nil
}

// Start consumes file system events until Close
func (fw *FileWatcher) Start() {
	go func() {
		for {
			select {
			case <-fw.done:
				return

			case event, ok := <-fw.watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
					fw.handleFileChange(filepath.Clean(event.Name))
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.logger.Error("file watcher error", "err", err)
			}
		}
	}()
}

func (fw *FileWatcher) handleFileChange(path string) {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, ok := fw.callbacks[path]
	if !ok {
		return
	}

	if timer, ok := fw.timers[path]; ok {
		timer.Stop()
	}
	fw.timers[path] = time.AfterFunc(fw.debounce, func() {
		fw.logger.Debug("file changed", "path", path)
		callback(path)
	})
}

// Close stops the watcher and pending callbacks
func (fw *FileWatcher) Close() error {
	var err error
	fw.closeOnce.Do(func() {
		close(fw.done)

		fw.mu.Lock()
		for _, timer := range fw.timers {
			timer.Stop()
		}
		fw.timers = make(map[string]*time.Timer)
		fw.mu.Unlock()

		err = fw.watcher.Close()
	})
	return err
}
