package debounce

import (
	"testing"
	"time"
)

func TestDebouncer_CoalescesBurst(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, fake)

	var got []int
	for i := 1; i <= 3; i++ {
		v := i
		d.Trigger(func() { got = append(got, v) })
		fake.Advance(40 * time.Millisecond)
	}

	if len(got) != 0 {
		t.Fatalf("ran before delay elapsed: %v", got)
	}

	fake.Advance(500 * time.Millisecond)

	if len(got) != 1 || got[0] != 3 {
		t.Fatalf("got %v, want [3]", got)
	}
	if fake.PendingTasks() != 0 {
		t.Errorf("PendingTasks = %d, want 0", fake.PendingTasks())
	}
}

func TestDebouncer_TrailingEdgeRestartsDelay(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, fake)

	runs := 0
	d.Trigger(func() { runs++ })
	fake.Advance(400 * time.Millisecond)
	d.Trigger(func() { runs++ })
	fake.Advance(400 * time.Millisecond)

	if runs != 0 {
		t.Fatalf("runs = %d after restarted delay, want 0", runs)
	}

	fake.Advance(100 * time.Millisecond)
	if runs != 1 {
		t.Fatalf("runs = %d, want 1", runs)
	}
}

func TestDebouncer_SeparateWindows(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, fake)

	var got []string
	d.Trigger(func() { got = append(got, "a") })
	fake.Advance(time.Second)
	d.Trigger(func() { got = append(got, "b") })
	fake.Advance(time.Second)

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("got %v, want [a b]", got)
	}
}

func TestDebouncer_Flush(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, fake)

	runs := 0
	d.Trigger(func() { runs++ })
	if !d.Pending() {
		t.Fatal("expected pending task")
	}

	d.Flush()
	if runs != 1 {
		t.Fatalf("runs = %d after Flush, want 1", runs)
	}

	fake.Advance(time.Second)
	if runs != 1 {
		t.Fatalf("runs = %d after timer, want 1 (flushed task must not rerun)", runs)
	}

	d.Flush()
	if runs != 1 {
		t.Fatalf("Flush with nothing pending ran a task")
	}
}

func TestDebouncer_Stop(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, fake)

	runs := 0
	d.Trigger(func() { runs++ })
	d.Stop()
	fake.Advance(time.Second)

	if runs != 0 {
		t.Fatalf("runs = %d after Stop, want 0", runs)
	}
	if d.Pending() {
		t.Error("Pending() = true after Stop")
	}
}

func TestDebouncer_RealScheduler(t *testing.T) {
	d := New(10*time.Millisecond, nil)

	done := make(chan int, 3)
	for i := 1; i <= 3; i++ {
		v := i
		d.Trigger(func() { done <- v })
	}

	select {
	case v := <-done:
		if v != 3 {
			t.Fatalf("got %d, want 3", v)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced task never ran")
	}

	select {
	case v := <-done:
		t.Fatalf("unexpected extra run with %d", v)
	case <-time.After(50 * time.Millisecond):
	}
}

func TestFake_StopAfterFire(t *testing.T) {
	fake := NewFake()
	timer := fake.AfterFunc(time.Millisecond, func() {})
	fake.Advance(time.Millisecond)

	if timer.Stop() {
		t.Error("Stop() = true for a timer that already fired")
	}
}

// lateScheduler hands out timers whose Stop always loses the race: the
// callback still runs at its original deadline.
type lateScheduler struct {
	fake *Fake
}

type lateTimer struct{}

func (lateTimer) Stop() bool { return false }

func (s lateScheduler) AfterFunc(d time.Duration, f func()) Timer {
	s.fake.AfterFunc(d, f)
	return lateTimer{}
}

func TestDebouncer_UnstoppedTimerKeepsTrailingDelay(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, lateScheduler{fake: fake})

	var got []int
	d.Trigger(func() { got = append(got, 1) })
	fake.Advance(100 * time.Millisecond)
	d.Trigger(func() { got = append(got, 2) })

	fake.Advance(400 * time.Millisecond)
	if len(got) != 0 {
		t.Fatalf("ran %v at 500ms, want nothing before the restarted delay", got)
	}
	if !d.Pending() {
		t.Fatal("Pending() = false, want the latest task still waiting")
	}

	fake.Advance(100 * time.Millisecond)
	if len(got) != 1 || got[0] != 2 {
		t.Fatalf("got %v, want [2]", got)
	}
}

func TestDebouncer_StaleTimerAfterFlush(t *testing.T) {
	fake := NewFake()
	d := New(500*time.Millisecond, lateScheduler{fake: fake})

	runs := 0
	d.Trigger(func() { runs++ })
	d.Flush()
	d.Trigger(func() { runs++ })
	d.Stop()
	fake.Advance(time.Second)

	if runs != 1 {
		t.Fatalf("runs = %d, want 1 from Flush only", runs)
	}
}
