package measure

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/goarea/internal/gesture"
	"github.com/philipparndt/goarea/pkg/geometry"
)

// fakeSurface records listener attachment so tests can check for orphans
type fakeSurface struct {
	listeners []PointerListener
}

func (f *fakeSurface) AddPointerListener(l PointerListener) {
	f.listeners = append(f.listeners, l)
}

func (f *fakeSurface) RemovePointerListener(l PointerListener) {
	kept := f.listeners[:0]
	for _, existing := range f.listeners {
		if existing != l {
			kept = append(kept, existing)
		}
	}
	f.listeners = kept
}

// flatPicker maps screen coordinates onto the z=0 plane
func flatPicker(x, y float64) (geometry.Vector3, bool) {
	return geometry.NewVector3(x, y, 0), true
}

func missPicker(x, y float64) (geometry.Vector3, bool) {
	return geometry.Vector3{}, false
}

type testRig struct {
	controller *Controller
	surface    *fakeSurface
	snapshots  []Snapshot
	clock      time.Time
}

func newRig(t *testing.T, picker PickerFunc) *testRig {
	t.Helper()
	rig := &testRig{surface: &fakeSurface{}, clock: time.Unix(1000, 0)}
	rig.controller = NewController(rig.surface, picker, Options{})
	rig.controller.now = func() time.Time { return rig.clock }
	rig.controller.Subscribe(func(s Snapshot) {
		rig.snapshots = append(rig.snapshots, s)
	})
	return rig
}

func (r *testRig) advance(d time.Duration) {
	r.clock = r.clock.Add(d)
}

// click performs a complete stationary primary-button gesture at (x, y)
func (r *testRig) click(x, y float64) {
	r.controller.PointerDown(gesture.PointerEvent{PointerID: 1, Button: gesture.ButtonPrimary, X: x, Y: y, Time: r.clock})
	r.advance(50 * time.Millisecond)
	r.controller.PointerUp(gesture.PointerEvent{PointerID: 1, Button: gesture.ButtonPrimary, X: x, Y: y, Time: r.clock})
}

func (r *testRig) lastSnapshot(t *testing.T) Snapshot {
	t.Helper()
	require.NotEmpty(t, r.snapshots)
	return r.snapshots[len(r.snapshots)-1]
}

func TestActivateAttachesListenerAndPublishes(t *testing.T) {
	rig := newRig(t, flatPicker)

	exclusivityRequested := false
	rig.controller.requestExclusive = func() { exclusivityRequested = true }

	rig.controller.Activate()

	assert.Len(t, rig.surface.listeners, 1)
	assert.True(t, exclusivityRequested)
	assert.Len(t, rig.snapshots, 1)
	assert.Empty(t, rig.lastSnapshot(t).Points)

	// Re-activating an active controller does nothing
	rig.controller.Activate()
	assert.Len(t, rig.surface.listeners, 1)
	assert.Len(t, rig.snapshots, 1)
}

func TestClickPlacesPoint(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()

	rig.click(10, 20)

	snap := rig.lastSnapshot(t)
	require.Len(t, snap.Points, 1)
	assert.Equal(t, geometry.NewVector3(10, 20, 0), snap.Points[0])
}

func TestDragDoesNotPlacePoint(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()
	published := len(rig.snapshots)

	rig.controller.PointerDown(gesture.PointerEvent{PointerID: 1, Button: gesture.ButtonPrimary, X: 10, Y: 10, Time: rig.clock})
	rig.controller.PointerMove(gesture.PointerEvent{PointerID: 1, X: 60, Y: 10, Time: rig.clock})
	rig.controller.PointerUp(gesture.PointerEvent{PointerID: 1, Button: gesture.ButtonPrimary, X: 60, Y: 10, Time: rig.clock})

	assert.Len(t, rig.snapshots, published, "a drag must not publish")
	assert.Equal(t, 0, rig.controller.Session().PointCount())
}

func TestPickMissIsSilent(t *testing.T) {
	rig := newRig(t, missPicker)
	rig.controller.Activate()
	published := len(rig.snapshots)

	rig.click(10, 20)

	assert.Len(t, rig.snapshots, published, "a missed pick must not publish")
	assert.Equal(t, 0, rig.controller.Session().PointCount())
}

func TestPickerPanicTreatedAsMiss(t *testing.T) {
	rig := newRig(t, func(x, y float64) (geometry.Vector3, bool) {
		panic("scene not ready")
	})
	rig.controller.Activate()
	published := len(rig.snapshots)

	assert.NotPanics(t, func() { rig.click(10, 20) })
	assert.Len(t, rig.snapshots, published)
}

func TestClickSuppressionWindow(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()
	published := len(rig.snapshots)

	rig.controller.SuppressClicksBriefly()
	rig.advance(100 * time.Millisecond)
	rig.click(10, 20)

	assert.Len(t, rig.snapshots, published, "suppressed click must not publish")
	assert.Equal(t, 0, rig.controller.Session().PointCount())

	// After the window expires, clicks land again
	rig.advance(DefaultSuppressWindow)
	rig.click(10, 20)
	assert.Equal(t, 1, rig.controller.Session().PointCount())
}

func TestRedoPublishesPendingIndexThenReplacement(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()
	rig.click(0, 0)
	rig.click(10, 0)
	rig.click(10, 10)

	rig.controller.RequestRedo(1)

	snap := rig.lastSnapshot(t)
	require.NotNil(t, snap.RedoIndex)
	assert.Equal(t, 1, *snap.RedoIndex)

	rig.click(20, 0)
	snap = rig.lastSnapshot(t)
	assert.Nil(t, snap.RedoIndex)
	require.Len(t, snap.Points, 3)
	assert.Equal(t, geometry.NewVector3(20, 0, 0), snap.Points[1])
}

func TestCloseThenClearLifecycle(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()
	rig.click(0, 0)
	rig.click(3, 0)
	rig.click(3, 4)

	rig.controller.ClosePolygon()
	snap := rig.lastSnapshot(t)
	require.NotNil(t, snap.Area)
	assert.InDelta(t, 6.0, *snap.Area, 1e-10)

	// New clicks are rejected against the frozen polygon
	published := len(rig.snapshots)
	rig.click(50, 50)
	assert.Len(t, rig.snapshots, published)

	rig.controller.Clear()
	snap = rig.lastSnapshot(t)
	assert.Empty(t, snap.Points)
	assert.Nil(t, snap.Area)
	assert.False(t, snap.Closed)
}

func TestDeactivateMidGestureLeavesNoListeners(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()

	rig.controller.PointerDown(gesture.PointerEvent{PointerID: 1, Button: gesture.ButtonPrimary, X: 5, Y: 5, Time: rig.clock})
	rig.controller.Deactivate()

	assert.Empty(t, rig.surface.listeners, "deactivate must remove all listeners")

	// The dangling pointer-up from the abandoned gesture is harmless
	published := len(rig.snapshots)
	rig.controller.PointerUp(gesture.PointerEvent{PointerID: 1, Button: gesture.ButtonPrimary, X: 5, Y: 5, Time: rig.clock})
	assert.Len(t, rig.snapshots, published)
}

func TestSnapshotsAreIndependentValues(t *testing.T) {
	rig := newRig(t, flatPicker)
	rig.controller.Activate()
	rig.click(1, 2)
	first := rig.lastSnapshot(t)

	rig.click(3, 4)

	want := []geometry.Vector3{geometry.NewVector3(1, 2, 0)}
	if diff := cmp.Diff(want, first.Points); diff != "" {
		t.Errorf("earlier snapshot mutated by later publish (-want +got):\n%s", diff)
	}
}

func TestRestoringPickerRestoresCameraState(t *testing.T) {
	cameraTarget := geometry.NewVector3(0, 0, 0)

	// A command-shaped pick that moves the camera target to the hit point
	mutatingPick := PickerFunc(func(x, y float64) (geometry.Vector3, bool) {
		cameraTarget = geometry.NewVector3(x, y, 0)
		return cameraTarget, true
	})

	picker := NewRestoringPicker(mutatingPick, func() func() {
		saved := cameraTarget
		return func() { cameraTarget = saved }
	})

	point, hit := picker.ProjectScreenToWorld(7, 8)

	require.True(t, hit)
	assert.Equal(t, geometry.NewVector3(7, 8, 0), point)
	assert.Equal(t, geometry.NewVector3(0, 0, 0), cameraTarget, "camera state must be restored")
}

func TestRestoringPickerRestoresOnPanic(t *testing.T) {
	state := "initial"
	picker := NewRestoringPicker(
		func(x, y float64) (geometry.Vector3, bool) {
			state = "dirty"
			panic("pick blew up")
		},
		func() func() {
			saved := state
			return func() { state = saved }
		},
	)

	rig := newRig(t, picker.ProjectScreenToWorld)
	rig.controller.Activate()
	assert.NotPanics(t, func() { rig.click(1, 1) })
	assert.Equal(t, "initial", state)
}
