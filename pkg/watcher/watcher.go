package watcher

import (
	"fmt"
	"io"
	"log"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// FileWatcher calls back when watched files change. It watches the parent
// directories rather than the files, so editors that save by renaming a
// temp file over the original keep triggering reloads.
type FileWatcher struct {
	watcher   *fsnotify.Watcher
	logger    *log.Logger
	mu        sync.Mutex
	callbacks map[string]func(string)
	dirs      map[string]int
	debounce  time.Duration
	timers    map[string]*time.Timer
	done      chan struct{}
	closeOnce sync.Once
}

// NewFileWatcher creates a watcher that waits debounce after the last event
// for a file before calling back
func NewFileWatcher(debounce time.Duration, logger *log.Logger) (*FileWatcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}

	return &FileWatcher{
		watcher:   w,
		logger:    logger,
		callbacks: make(map[string]func(string)),
		dirs:      make(map[string]int),
		debounce:  debounce,
		timers:    make(map[string]*time.Timer),
		done:      make(chan struct{}),
	}, nil
}

// Watch registers callback for file. The callback runs on a timer goroutine
// and receives the absolute path.
func (fw *FileWatcher) Watch(file string, callback func(string)) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.callbacks[absPath]; !exists {
		dir := filepath.Dir(absPath)
		if fw.dirs[dir] == 0 {
			if err := fw.watcher.Add(dir); err != nil {
				return fmt.Errorf("failed to watch %s: %w", dir, err)
			}
		}
		fw.dirs[dir]++
	}
	fw.callbacks[absPath] = callback
	return nil
}

// Unwatch stops calling back for file
func (fw *FileWatcher) Unwatch(file string) error {
	absPath, err := filepath.Abs(file)
	if err != nil {
		return fmt.Errorf("failed to resolve path %s: %w", file, err)
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	if _, exists := fw.callbacks[absPath]; !exists {
		return nil
	}
	delete(fw.callbacks, absPath)
	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
		delete(fw.timers, absPath)
	}

	dir := filepath.Dir(absPath)
	fw.dirs[dir]--
	if fw.dirs[dir] <= 0 {
		delete(fw.dirs, dir)
		return fw.watcher.Remove(dir)
	}
	return nil
}

// Start begins delivering events in a background goroutine
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
					fw.handleFileChange(event.Name)
				}

			case err, ok := <-fw.watcher.Errors:
				if !ok {
					return
				}
				fw.logger.Printf("watcher error: %v", err)
			}
		}
	}()
}

// handleFileChange restarts the debounce timer for a watched file
func (fw *FileWatcher) handleFileChange(name string) {
	absPath, err := filepath.Abs(name)
	if err != nil {
		return
	}

	fw.mu.Lock()
	defer fw.mu.Unlock()

	callback, exists := fw.callbacks[absPath]
	if !exists {
		return
	}

	if timer, exists := fw.timers[absPath]; exists {
		timer.Stop()
	}
	fw.timers[absPath] = time.AfterFunc(fw.debounce, func() {
		fw.logger.Printf("changed: %s", absPath)
		callback(absPath)
	})
}

// Close stops the watcher and pending timers
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
