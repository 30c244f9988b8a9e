// Package watcher reports saves of a single file so the working-copy
// diff can refresh without polling.
package watcher

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Debounce coalesces editor write bursts (most editors fire several
// events per save) into one change notification.
const debounce = 100 * time.Millisecond

// Watcher wraps fsnotify and sends change events for one file.
type Watcher struct {
	fsw     *fsnotify.Watcher
	path    string
	Changes chan struct{}
	done    chan struct{}
}

// New creates a watcher for path. The parent directory is watched
// rather than the file itself because save-via-rename replaces the
// watched inode.
func New(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		fsw:     fsw,
		path:    filepath.Clean(path),
		Changes: make(chan struct{}, 1),
		done:    make(chan struct{}),
	}, nil
}

// Start begins forwarding debounced change events.
func (w *Watcher) Start() {
	go func() {
		var timer *time.Timer
		for {
			select {
			case ev, ok := <-w.fsw.Events:
				if !ok {
					return
				}
				if filepath.Clean(ev.Name) != w.path {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
					continue
				}
				if timer != nil {
					timer.Stop()
				}
				timer = time.AfterFunc(debounce, func() {
					select {
					case w.Changes <- struct{}{}:
					default:
					}
				})
			case <-w.fsw.Errors:
				// Watch errors are non-fatal; the view just stops
				// auto-refreshing.
			case <-w.done:
				return
			}
		}
	}()
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fsw.Close()
}
