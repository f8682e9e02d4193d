package simon

import (
	"sort"
	"time"
)

type timerKind int

const (
	timerAdvance timerKind = iota
	timerFlash
)

// timer is a one-shot deferred callback. It only runs if the engine is
// still on the generation it was scheduled in.
type timer struct {
	at   time.Duration
	seq  uint64
	gen  uint64
	kind timerKind
	fn   func()
}

// timeline is a virtual clock with pending callbacks ordered by due time,
// then by scheduling order.
type timeline struct {
	now     time.Duration
	nextSeq uint64
	pending []timer
}

func (t *timeline) schedule(delay time.Duration, gen uint64, kind timerKind, fn func()) {
	if delay < 0 {
		delay = 0
	}
	tm := timer{
		at:   t.now + delay,
		seq:  t.nextSeq,
		gen:  gen,
		kind: kind,
		fn:   fn,
	}
	t.nextSeq++

	i := sort.Search(len(t.pending), func(i int) bool {
		p := t.pending[i]
		return p.at > tm.at || (p.at == tm.at && p.seq > tm.seq)
	})
	t.pending = append(t.pending, timer{})
	copy(t.pending[i+1:], t.pending[i:])
	t.pending[i] = tm
}

// cancelAll drops every pending callback.
func (t *timeline) cancelAll() {
	t.pending = t.pending[:0]
}

// has reports whether a callback of the given kind and generation is pending.
func (t *timeline) has(kind timerKind, gen uint64) bool {
	for _, p := range t.pending {
		if p.kind == kind && p.gen == gen {
			return true
		}
	}
	return false
}

// untilNext reports how long until the earliest pending callback is due.
func (t *timeline) untilNext() (time.Duration, bool) {
	if len(t.pending) == 0 {
		return 0, false
	}
	return max(t.pending[0].at-t.now, 0), true
}

// advance moves the clock forward by dt and runs every callback that falls
// due, one at a time, so callbacks may schedule or cancel others.
func (t *timeline) advance(dt time.Duration, current func() uint64) {
	if dt < 0 {
		dt = 0
	}
	target := t.now + dt

	for len(t.pending) > 0 && t.pending[0].at <= target {
		next := t.pending[0]
		t.pending = t.pending[1:]
		t.now = next.at
		if next.gen == current() {
			next.fn()
		}
	}
	t.now = target
}
