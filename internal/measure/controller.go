package measure

import (
	"time"

	"github.com/philipparndt/goarea/internal/gesture"
	"github.com/philipparndt/goarea/internal/log"
	"github.com/philipparndt/goarea/pkg/geometry"
)

// DefaultSuppressWindow is how long render-surface clicks are ignored after
// a UI control was interacted with, so a button press over the surface does
// not also place a point.
const DefaultSuppressWindow = 300 * time.Millisecond

// Picker resolves a screen coordinate to a world point on the displayed
// geometry. The second result is false when nothing is under the cursor.
// Implementations must behave as queries: any camera state touched while
// picking has to be restored before returning (see NewRestoringPicker).
type Picker interface {
	ProjectScreenToWorld(x, y float64) (geometry.Vector3, bool)
}

// PickerFunc adapts a function to the Picker interface
type PickerFunc func(x, y float64) (geometry.Vector3, bool)

// ProjectScreenToWorld calls f
func (f PickerFunc) ProjectScreenToWorld(x, y float64) (geometry.Vector3, bool) {
	return f(x, y)
}

// PointerListener receives raw pointer events from a render surface
type PointerListener interface {
	PointerDown(ev gesture.PointerEvent)
	PointerMove(ev gesture.PointerEvent)
	PointerUp(ev gesture.PointerEvent)
}

// Surface is the render surface the measurement tool listens on
type Surface interface {
	AddPointerListener(l PointerListener)
	RemovePointerListener(l PointerListener)
}

// Options configures a Controller. The zero value uses the defaults.
type Options struct {
	MaxClickDistancePx float64
	MaxClickDuration   time.Duration
	SuppressWindow     time.Duration
	// RequestToolExclusive, if set, is notified once on activation so other
	// interactive tools can deactivate. Fire and forget.
	RequestToolExclusive func()
}

// Controller wires the gesture classifier, the session state machine, and
// the picker together, and publishes a snapshot to subscribers after every
// observable mutation. It owns listener attachment for the session's
// lifetime; deactivation always detaches, even mid-gesture.
type Controller struct {
	surface    Surface
	picker     Picker
	session    *Session
	classifier *gesture.Classifier

	suppressWindow time.Duration
	suppressedAt   time.Time

	requestExclusive func()
	subscribers      []func(Snapshot)

	now func() time.Time
}

// NewController creates a controller for the given surface and picker
func NewController(surface Surface, picker Picker, opts Options) *Controller {
	window := opts.SuppressWindow
	if window <= 0 {
		window = DefaultSuppressWindow
	}
	return &Controller{
		surface:          surface,
		picker:           picker,
		session:          NewSession(),
		classifier:       gesture.NewClassifier(opts.MaxClickDistancePx, opts.MaxClickDuration),
		suppressWindow:   window,
		requestExclusive: opts.RequestToolExclusive,
		now:              time.Now,
	}
}

// Subscribe registers a snapshot consumer. Subscribers are invoked
// synchronously, in registration order, on every publish.
func (c *Controller) Subscribe(fn func(Snapshot)) {
	c.subscribers = append(c.subscribers, fn)
}

// Session exposes the underlying session for read-only inspection
func (c *Controller) Session() *Session {
	return c.session
}

// Activate turns the measurement tool on: requests tool exclusivity, resets
// the session, and starts listening for pointer gestures.
func (c *Controller) Activate() {
	if !c.session.Activate() {
		return
	}
	if c.requestExclusive != nil {
		c.requestExclusive()
	}
	c.surface.AddPointerListener(c)
	log.L().Debug("measurement tool activated")
	c.publish()
}

// Deactivate turns the tool off. Safe to call mid-gesture: the tracked
// pointer is abandoned and the surface listener removed either way.
func (c *Controller) Deactivate() {
	if c.session.Mode() == Inactive {
		return
	}
	c.classifier.Reset()
	c.surface.RemovePointerListener(c)
	c.session.Deactivate()
	log.L().Debug("measurement tool deactivated")
	c.publish()
}

// Clear discards all points and reopens the polygon
func (c *Controller) Clear() {
	if c.session.Clear() {
		c.publish()
	}
}

// ClosePolygon closes the point loop so the area becomes defined
func (c *Controller) ClosePolygon() {
	if c.session.ClosePolygon() {
		c.publish()
	}
}

// RequestRedo marks the point at index for replacement by the next click.
// Publishing here lets the panel highlight the pending point immediately.
func (c *Controller) RequestRedo(index int) {
	if c.session.RequestRedo(index) {
		c.publish()
	}
}

// SuppressClicksBriefly opens the click-suppression window. Call it when a
// UI control over the render surface was just interacted with.
func (c *Controller) SuppressClicksBriefly() {
	c.suppressedAt = c.now()
}

// PointerDown starts gesture tracking for a primary-button press
func (c *Controller) PointerDown(ev gesture.PointerEvent) {
	if c.session.Mode() == Inactive {
		return
	}
	c.classifier.Down(ev)
}

// PointerMove feeds displacement samples to the gesture classifier
func (c *Controller) PointerMove(ev gesture.PointerEvent) {
	c.classifier.Move(ev)
}

// PointerUp resolves the gesture. Drags belong to the camera controller and
// are ignored here; clicks place or replace a point if picking hits geometry.
func (c *Controller) PointerUp(ev gesture.PointerEvent) {
	kind, ok := c.classifier.Up(ev)
	if !ok || kind != gesture.Click {
		return
	}

	if c.clickSuppressed(ev.Time) {
		log.L().Debug("click suppressed after UI interaction", "x", ev.X, "y", ev.Y)
		return
	}

	point, hit := c.resolvePick(ev.X, ev.Y)
	if !hit {
		log.L().Debug("pick missed geometry", "x", ev.X, "y", ev.Y)
		return
	}

	if c.session.ResolveClick(point) {
		c.publish()
	}
}

func (c *Controller) clickSuppressed(at time.Time) bool {
	if c.suppressedAt.IsZero() {
		return false
	}
	if at.IsZero() {
		at = c.now()
	}
	return at.Sub(c.suppressedAt) < c.suppressWindow
}

// resolvePick queries the picker. A panic from the underlying picking
// primitive is treated the same as a miss; the core never crashes on it.
func (c *Controller) resolvePick(x, y float64) (point geometry.Vector3, hit bool) {
	defer func() {
		if r := recover(); r != nil {
			log.L().Debug("picker panicked, treating as no hit", "cause", r)
			point, hit = geometry.Vector3{}, false
		}
	}()
	return c.picker.ProjectScreenToWorld(x, y)
}

func (c *Controller) publish() {
	snap := c.session.Snapshot()
	for _, fn := range c.subscribers {
		fn(snap)
	}
}
