package scheduler

import (
	"sync"
	"time"
)

// State of the debouncer. Pending means a timer is armed; InFlight means
// the flush func is running. A mutation arriving while a call is in
// flight arms a fresh timer for a subsequent call; in-flight calls are
// never canceled.
type State int

const (
	StateIdle State = iota
	StatePending
	StateInFlight
)

// FlushFunc pushes the full current state to the server. It returns the
// snapshot that now matches the server and whether the write succeeded.
// On failure the previous last-synced snapshot stays in place, so the
// next mutation retries with fresh data.
type FlushFunc func() (snapshot string, ok bool)

// Debouncer coalesces rapid mutations into a single outbound write after
// a quiet window. Callers report every mutation through Trigger with a
// serialized snapshot; snapshots equal to the last synced one are no-ops.
type Debouncer struct {
	mu         sync.Mutex
	window     time.Duration
	flush      FlushFunc
	timer      *time.Timer
	state      State
	lastSynced string
	stopped    bool
}

func New(window time.Duration, flush FlushFunc) *Debouncer {
	return &Debouncer{window: window, flush: flush}
}

// Trigger (re)arms the debounce timer unless the snapshot already matches
// the last synced state. Any prior pending timer is stopped first, so at
// most one timer exists at a time.
func (d *Debouncer) Trigger(snapshot string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stopped || snapshot == d.lastSynced {
		return
	}
	if d.timer != nil {
		d.timer.Stop()
	}
	if d.state == StateIdle {
		d.state = StatePending
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

func (d *Debouncer) fire() {
	d.mu.Lock()
	if d.stopped {
		d.mu.Unlock()
		return
	}
	d.timer = nil
	d.state = StateInFlight
	d.mu.Unlock()
	d.run()
}

func (d *Debouncer) run() {
	snapshot, ok := d.flush()
	d.mu.Lock()
	if ok {
		d.lastSynced = snapshot
	}
	if d.timer != nil {
		d.state = StatePending
	} else {
		d.state = StateIdle
	}
	d.mu.Unlock()
}

// Flush cancels any pending timer and runs the flush func synchronously.
// The explicit path for callers that need a guaranteed write, e.g. before
// checkout. With nothing pending or in flight it is a no-op; the server
// already has the last synced state.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.stopped || (d.state == StateIdle && d.timer == nil) {
		d.mu.Unlock()
		return
	}
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.state = StateInFlight
	d.mu.Unlock()
	d.run()
}

// Reset records snapshot as the synced baseline and drops any pending
// timer, used after canonical state is adopted outside the flush path
// (initial hydration, identity change).
func (d *Debouncer) Reset(snapshot string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.lastSynced = snapshot
	if d.state != StateInFlight {
		d.state = StateIdle
	}
}

// Stop drops any pending timer without a final flush.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	d.state = StateIdle
}

// State reports the current scheduling state.
func (d *Debouncer) State() State {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
