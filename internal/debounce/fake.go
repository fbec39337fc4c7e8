package debounce

import (
	"sort"
	"sync"
	"time"
)

// Fake is a Scheduler with manually advanced virtual time. Tasks run
// synchronously on the goroutine calling Advance.
type Fake struct {
	mu    sync.Mutex
	now   time.Duration
	seq   int
	tasks []*fakeTimer
}

type fakeTimer struct {
	fake    *Fake
	at      time.Duration
	seq     int
	f       func()
	stopped bool
	fired   bool
}

// NewFake returns a Fake scheduler at virtual time zero.
func NewFake() *Fake {
	return &Fake{}
}

// AfterFunc schedules f at now+d.
func (f *Fake) AfterFunc(d time.Duration, fn func()) Timer {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.seq++
	t := &fakeTimer{fake: f, at: f.now + d, seq: f.seq, f: fn}
	f.tasks = append(f.tasks, t)
	return t
}

func (t *fakeTimer) Stop() bool {
	t.fake.mu.Lock()
	defer t.fake.mu.Unlock()

	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Advance moves virtual time forward by d, running every task that
// becomes due, in schedule order.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	f.now += d
	now := f.now
	f.mu.Unlock()

	for {
		t := f.nextDue(now)
		if t == nil {
			return
		}
		t.f()
	}
}

func (f *Fake) nextDue(now time.Duration) *fakeTimer {
	f.mu.Lock()
	defer f.mu.Unlock()

	sort.SliceStable(f.tasks, func(i, j int) bool {
		if f.tasks[i].at == f.tasks[j].at {
			return f.tasks[i].seq < f.tasks[j].seq
		}
		return f.tasks[i].at < f.tasks[j].at
	})

	for i, t := range f.tasks {
		if t.stopped {
			continue
		}
		if t.at > now {
			break
		}
		t.fired = true
		f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
		return t
	}
	f.compact()
	return nil
}

func (f *Fake) compact() {
	live := f.tasks[:0]
	for _, t := range f.tasks {
		if !t.stopped {
			live = append(live, t)
		}
	}
	f.tasks = live
}

// PendingTasks returns the number of scheduled tasks that have not run or
// been stopped.
func (f *Fake) PendingTasks() int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, t := range f.tasks {
		if !t.stopped && !t.fired {
			n++
		}
	}
	return n
}
