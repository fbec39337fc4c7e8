package curtain

import "time"

// DefaultTransition is how long the curtains take to slide in or out.
const DefaultTransition = time.Second

// Overlay is the active/inactive state of a curtain pair together with the
// fixed-duration slide between the two visual positions.
type Overlay struct {
	active   bool
	duration time.Duration

	from  float64
	to    float64
	start time.Time
	shown float64
}

// NewOverlay returns an inactive overlay with the curtains off-screen.
func NewOverlay(duration time.Duration) *Overlay {
	if duration < 0 {
		duration = 0
	}
	return &Overlay{duration: duration}
}

// Toggle flips the state and starts a transition from the current position.
// It returns the new state.
func (o *Overlay) Toggle(now time.Time) bool {
	o.active = !o.active
	o.from = o.shown
	o.to = 0
	if o.active {
		o.to = 1
	}
	o.start = now
	if o.duration == 0 {
		o.shown = o.to
	}
	return o.active
}

// Advance moves the transition to now. It returns true while the curtains
// are still moving.
func (o *Overlay) Advance(now time.Time) bool {
	if !o.Animating() {
		return false
	}
	elapsed := now.Sub(o.start)
	if elapsed >= o.duration {
		o.shown = o.to
		return false
	}
	if elapsed < 0 {
		elapsed = 0
	}
	p := float64(elapsed) / float64(o.duration)
	o.shown = o.from + (o.to-o.from)*p
	return true
}

// Animating reports whether a transition is in progress.
func (o *Overlay) Animating() bool {
	return o.shown != o.to
}

// Active reports the logical state.
func (o *Overlay) Active() bool {
	return o.active
}

// Shown is the fraction of each curtain slid into view, from 0 (fully
// off-screen) to 1 (fully in place).
func (o *Overlay) Shown() float64 {
	return o.shown
}

// Shadow reports whether the curtains cast their inward shadow.
func (o *Overlay) Shadow() bool {
	return o.active
}

// Duration returns the transition length.
func (o *Overlay) Duration() time.Duration {
	return o.duration
}
