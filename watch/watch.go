package watch

import (
	"sync"
	"time"
)

// Watcher is the interval abstraction behind order-view freshness: one
// polled page at a time, refreshed on a fixed interval, cancelled the
// moment another page takes over or the view goes away. Refreshes are not
// deduplicated against in-flight ones; the last response to land wins.
type Watcher struct {
	mu       sync.Mutex
	interval time.Duration
	page     string
	stop     chan struct{}
}

func New(interval time.Duration) *Watcher {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Watcher{interval: interval}
}

// Mount makes page the active polled view. Mounting the page that is
// already active keeps the running timer; mounting a different page cancels
// the old loop first. The refresh function runs on every tick until the
// next Mount or Stop; the caller does its own initial fetch.
func (w *Watcher) Mount(page string, refresh func()) {
	w.mu.Lock()
	if w.page == page && w.stop != nil {
		w.mu.Unlock()
		return
	}
	if w.stop != nil {
		close(w.stop)
	}
	stop := make(chan struct{})
	w.stop = stop
	w.page = page
	w.mu.Unlock()

	go func() {
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				refresh()
			}
		}
	}()
}

// Stop is the unmount: it cancels the active loop, if any. Safe to call
// repeatedly.
func (w *Watcher) Stop() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.stop != nil {
		close(w.stop)
		w.stop = nil
		w.page = ""
	}
}

// Page names the currently polled view, or "" when nothing is mounted.
func (w *Watcher) Page() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page
}
