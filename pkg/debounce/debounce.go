// Package debounce coalesces bursts of calls into one deferred task.
package debounce

import (
	"sync"
	"time"
)

// DefaultDelay is the quiet period before a note save is sent.
const DefaultDelay = 600 * time.Millisecond

// Debouncer holds at most one pending task. Each Trigger replaces the task
// and restarts the quiet period.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending func()
	seq     uint64
	stopped bool
	// running counts tasks started by the timer.
	running sync.WaitGroup
}

func New(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn after the quiet period. It reports false once the
// debouncer has been stopped.
func (d *Debouncer) Trigger(fn func()) bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return false
	}
	d.stopTimer()
	d.seq++
	seq := d.seq
	d.pending = fn
	d.timer = time.AfterFunc(d.delay, func() { d.fire(seq) })
	return true
}

// Flush runs the pending task now, on the caller's goroutine.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	fn := d.take()
	d.mu.Unlock()

	if fn != nil {
		fn()
	}
}

func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.take()
}

// Stop cancels the pending task, rejects later triggers and waits for a
// task the timer already started. It must not be called from a task.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	d.take()
	d.stopped = true
	d.mu.Unlock()

	d.running.Wait()
}

func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pending != nil
}

func (d *Debouncer) fire(seq uint64) {
	d.mu.Lock()
	if seq != d.seq {
		d.mu.Unlock()
		return
	}
	fn := d.take()
	if fn != nil {
		d.running.Add(1)
	}
	d.mu.Unlock()

	if fn != nil {
		defer d.running.Done()
		fn()
	}
}

// take must be called with mu held.
func (d *Debouncer) take() func() {
	d.stopTimer()
	d.seq++
	fn := d.pending
	d.pending = nil
	return fn
}

func (d *Debouncer) stopTimer() {
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
