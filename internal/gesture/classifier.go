// Package gesture decides whether a raw pointer-down/move/up sequence was a
// deliberate placement click or a camera drag. It only observes events; the
// camera controller underneath keeps receiving them either way.
package gesture

import "time"

// Default thresholds for click classification
const (
	DefaultMaxClickDistancePx = 6.0
	DefaultMaxClickDuration   = 300 * time.Millisecond
)

// Button identifies a pointer button
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// PointerEvent is a raw pointer sample from the render surface
type PointerEvent struct {
	PointerID int
	Button    Button
	X         float64
	Y         float64
	Time      time.Time
}

// Kind is the classification of a completed gesture
type Kind int

const (
	Click Kind = iota
	Drag
)

func (k Kind) String() string {
	if k == Click {
		return "click"
	}
	return "drag"
}

// Classifier tracks a single in-flight gesture. A second pointer going down
// while one is tracked is ignored until the first resolves; multi-touch is
// deliberately not supported.
type Classifier struct {
	maxDistanceSq float64
	maxDuration   time.Duration

	tracking  bool
	pointerID int
	startX    float64
	startY    float64
	startTime time.Time
	exceeded  bool
}

// NewClassifier creates a classifier with the given thresholds. Zero or
// negative values fall back to the defaults.
func NewClassifier(maxDistancePx float64, maxDuration time.Duration) *Classifier {
	if maxDistancePx <= 0 {
		maxDistancePx = DefaultMaxClickDistancePx
	}
	if maxDuration <= 0 {
		maxDuration = DefaultMaxClickDuration
	}
	return &Classifier{
		maxDistanceSq: maxDistancePx * maxDistancePx,
		maxDuration:   maxDuration,
	}
}

// Down starts tracking a gesture. Returns true if tracking began; false if
// another gesture is already in flight or the button is not the primary one.
func (c *Classifier) Down(ev PointerEvent) bool {
	if c.tracking || ev.Button != ButtonPrimary {
		return false
	}
	c.tracking = true
	c.pointerID = ev.PointerID
	c.startX = ev.X
	c.startY = ev.Y
	c.startTime = ev.Time
	c.exceeded = false
	return true
}

// Move updates the displacement latch for the tracked pointer. Once the
// displacement threshold is exceeded the gesture stays a drag even if the
// pointer returns to its origin.
func (c *Classifier) Move(ev PointerEvent) {
	if !c.tracking || ev.PointerID != c.pointerID {
		return
	}
	if c.displacementSq(ev.X, ev.Y) > c.maxDistanceSq {
		c.exceeded = true
	}
}

// Up resolves the tracked gesture. The second return value is false when no
// gesture was in flight for this pointer, in which case the event belongs to
// somebody else.
func (c *Classifier) Up(ev PointerEvent) (Kind, bool) {
	if !c.tracking || ev.PointerID != c.pointerID {
		return Drag, false
	}

	exceeded := c.exceeded || c.displacementSq(ev.X, ev.Y) > c.maxDistanceSq
	duration := ev.Time.Sub(c.startTime)
	c.Reset()

	if !exceeded && duration <= c.maxDuration && ev.Button == ButtonPrimary {
		return Click, true
	}
	return Drag, true
}

// Tracking reports whether a gesture is currently in flight
func (c *Classifier) Tracking() bool {
	return c.tracking
}

// Reset abandons any in-flight gesture. Safe to call at any time, including
// between pointer-down and pointer-up when the tool is deactivated.
func (c *Classifier) Reset() {
	c.tracking = false
	c.pointerID = 0
	c.exceeded = false
}

func (c *Classifier) displacementSq(x, y float64) float64 {
	dx := x - c.startX
	dy := y - c.startY
	return dx*dx + dy*dy
}
