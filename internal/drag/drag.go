// Package drag turns pointer events on the curtain grips into resize deltas.
//
// Each grip has its own session with two states, idle and dragging. A press
// on a grip starts a session; motion anywhere on the screen feeds every
// dragging session while the primary button is held; motion reporting the
// button released ends it. Release events end all sessions too, but the
// motion check alone is enough to recover from a missed release.
package drag

import "github.com/llehouerou/curtains/internal/geometry"

// Grip identifies one of the two curtain grips.
type Grip int

const (
	Top Grip = iota
	Bottom
)

// Grips lists both grips in a fixed order.
var Grips = [...]Grip{Top, Bottom}

func (g Grip) String() string {
	if g == Top {
		return "top"
	}
	return "bottom"
}

// Sign is the ratio direction for a positive (downward) pointer delta.
func (g Grip) Sign() float64 {
	return geometry.Sign(g == Top)
}

// Resizer receives the raw pointer delta of a dragging grip.
type Resizer interface {
	Resize(grip Grip, delta float64)
}

// Session is the drag state of one grip.
type Session struct {
	lastY  float64
	active bool
}

// Active reports whether the session is dragging.
func (s Session) Active() bool {
	return s.active
}

// LastY returns the last pointer row seen by an active session.
func (s Session) LastY() (float64, bool) {
	return s.lastY, s.active
}

// Controller owns the sessions of both grips.
type Controller struct {
	sessions [len(Grips)]Session
	resizer  Resizer
}

// New creates a Controller that reports deltas to r.
func New(r Resizer) *Controller {
	return &Controller{resizer: r}
}

// Press starts dragging grip from pointer row y.
func (c *Controller) Press(grip Grip, y float64) {
	c.sessions[grip] = Session{lastY: y, active: true}
}

// Move handles pointer motion to row y. primaryHeld reports whether the
// primary button is still down.
func (c *Controller) Move(y float64, primaryHeld bool) {
	for _, grip := range Grips {
		s := &c.sessions[grip]
		if !s.active {
			continue
		}
		if !primaryHeld {
			*s = Session{}
			continue
		}
		delta := y - s.lastY
		s.lastY = y
		if delta != 0 {
			c.resizer.Resize(grip, delta)
		}
	}
}

// Release ends every session.
func (c *Controller) Release() {
	c.sessions = [len(Grips)]Session{}
}

// Dragging reports whether grip is being dragged.
func (c *Controller) Dragging(grip Grip) bool {
	return c.sessions[grip].active
}

// Active reports whether any grip is being dragged.
func (c *Controller) Active() bool {
	for _, s := range c.sessions {
		if s.active {
			return true
		}
	}
	return false
}

// Session returns a copy of grip's session.
func (c *Controller) Session(grip Grip) Session {
	return c.sessions[grip]
}
