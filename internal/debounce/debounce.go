// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package debounce coalesces bursts of events into one trailing call.
package debounce

import (
	"sync"
	"time"
)

// Debouncer runs the most recently triggered function once no trigger has
// arrived for the wait period. It is safe for concurrent use.
type Debouncer struct {
	wait time.Duration

	mu      sync.Mutex
	timer   *time.Timer
	stopped bool
}

// New returns a Debouncer with the given quiet period.
func New(wait time.Duration) *Debouncer {
	return &Debouncer{wait: wait}
}

// Trigger schedules fn and cancels any call still pending. Triggers after
// Stop are ignored.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	var t *time.Timer
	t = time.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if d.timer != t || d.stopped {
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	d.timer = t
}

// Pending reports whether a call is scheduled.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Stop cancels any pending call and disables the Debouncer.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
