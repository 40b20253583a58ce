// Package ui contains the fyne widgets for the interactive viewer: the 3D
// viewport with the measurement overlay, and the side panel with the
// measurement readout and controls.
package ui

import (
	"image/color"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"github.com/philipparndt/goarea/internal/gesture"
	"github.com/philipparndt/goarea/internal/measure"
	"github.com/philipparndt/goarea/pkg/geometry"
	"github.com/philipparndt/goarea/pkg/scene"
)

var (
	pointColor    = color.RGBA{R: 230, G: 60, B: 60, A: 255}
	redoColor     = color.RGBA{R: 60, G: 200, B: 60, A: 255}
	edgeColor     = color.RGBA{R: 255, G: 200, B: 0, A: 255}
	closingColor  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	markerSizePx  = float32(10)
	markerStrokeW = float32(2)
)

// Viewport renders a mesh as a wireframe with the measurement overlay on
// top. It is the render surface the measurement controller listens on:
// pointer listeners receive every raw mouse event regardless of what the
// camera does with it.
type Viewport struct {
	widget.BaseWidget

	mesh   *scene.Mesh
	camera *scene.Camera
	picker *scene.Picker

	mu        sync.Mutex
	listeners []measure.PointerListener

	lines    []*canvas.Line
	overlay  []fyne.CanvasObject
	snapshot measure.Snapshot

	dragStart *fyne.Position
	width     float64
	height    float64
}

// NewViewport creates a viewport for the given mesh
func NewViewport(mesh *scene.Mesh) *Viewport {
	camera := scene.NewCamera(mesh.BoundingBox())
	v := &Viewport{
		mesh:   mesh,
		camera: camera,
		picker: scene.NewPicker(mesh, camera),
	}
	v.ExtendBaseWidget(v)
	return v
}

// Picker returns the picker bound to this viewport's mesh and camera
func (v *Viewport) Picker() *scene.Picker {
	return v.picker
}

// Camera returns the viewport camera
func (v *Viewport) Camera() *scene.Camera {
	return v.camera
}

// SetMesh swaps the displayed mesh, keeping the current camera orientation.
// Used for on-disk model reloads.
func (v *Viewport) SetMesh(mesh *scene.Mesh) {
	v.mesh = mesh
	v.picker.SetMesh(mesh)
	v.Render(v.width, v.height)
}

// SetSnapshot updates the measurement overlay
func (v *Viewport) SetSnapshot(s measure.Snapshot) {
	v.snapshot = s
	v.updateOverlay()
	v.Refresh()
}

// AddPointerListener registers a raw pointer event consumer
func (v *Viewport) AddPointerListener(l measure.PointerListener) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.listeners = append(v.listeners, l)
}

// RemovePointerListener detaches a previously registered consumer
func (v *Viewport) RemovePointerListener(l measure.PointerListener) {
	v.mu.Lock()
	defer v.mu.Unlock()
	for i, reg := range v.listeners {
		if reg == l {
			v.listeners = append(v.listeners[:i], v.listeners[i+1:]...)
			return
		}
	}
}

func (v *Viewport) snapshotListeners() []measure.PointerListener {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]measure.PointerListener, len(v.listeners))
	copy(out, v.listeners)
	return out
}

// Render regenerates the wireframe for the current camera and viewport size
func (v *Viewport) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	v.width = width
	v.height = height
	v.picker.SetViewport(width, height)

	v.lines = v.lines[:0]

	for _, triangle := range v.mesh.Triangles {
		vertices := [3]geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}

		for i := 0; i < 3; i++ {
			x1, y1, z1 := v.camera.Project(vertices[i], width, height)
			x2, y2, z2 := v.camera.Project(vertices[(i+1)%3], width, height)

			avgZ := (z1 + z2) / 2
			brightness := uint8(clamp(100+avgZ*5, 50, 255))

			line := canvas.NewLine(color.RGBA{R: brightness, G: brightness, B: brightness, A: 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))
			v.lines = append(v.lines, line)
		}
	}

	v.updateOverlay()
	v.Refresh()
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// updateOverlay rebuilds the measurement markers and edge lines from the
// current snapshot. The last edge of a closed loop gets its own color so
// the closing segment is visible.
func (v *Viewport) updateOverlay() {
	v.overlay = v.overlay[:0]
	if v.width <= 0 || v.height <= 0 {
		return
	}

	for i, edge := range v.snapshot.Edges {
		x1, y1, _ := v.camera.Project(edge.A, v.width, v.height)
		x2, y2, _ := v.camera.Project(edge.B, v.width, v.height)

		c := color.Color(edgeColor)
		if v.snapshot.Closed && i == len(v.snapshot.Edges)-1 {
			c = closingColor
		}
		line := canvas.NewLine(c)
		line.StrokeWidth = 2
		line.Position1 = fyne.NewPos(float32(x1), float32(y1))
		line.Position2 = fyne.NewPos(float32(x2), float32(y2))
		v.overlay = append(v.overlay, line)
	}

	for i, point := range v.snapshot.Points {
		x, y, _ := v.camera.Project(point, v.width, v.height)

		fill := color.Color(pointColor)
		if v.snapshot.RedoIndex != nil && *v.snapshot.RedoIndex == i {
			fill = redoColor
		}
		marker := canvas.NewCircle(fill)
		marker.StrokeColor = color.White
		marker.StrokeWidth = markerStrokeW
		marker.Resize(fyne.NewSize(markerSizePx, markerSizePx))
		marker.Move(fyne.NewPos(float32(x)-markerSizePx/2, float32(y)-markerSizePx/2))
		v.overlay = append(v.overlay, marker)
	}
}

func pointerEvent(ev *desktop.MouseEvent) gesture.PointerEvent {
	button := gesture.ButtonPrimary
	switch ev.Button {
	case desktop.MouseButtonSecondary:
		button = gesture.ButtonSecondary
	case desktop.MouseButtonTertiary:
		button = gesture.ButtonMiddle
	}
	return gesture.PointerEvent{
		Button: button,
		X:      float64(ev.Position.X),
		Y:      float64(ev.Position.Y),
		Time:   time.Now(),
	}
}

// MouseDown forwards the press to pointer listeners
func (v *Viewport) MouseDown(ev *desktop.MouseEvent) {
	for _, l := range v.snapshotListeners() {
		l.PointerDown(pointerEvent(ev))
	}
}

// MouseUp forwards the release to pointer listeners
func (v *Viewport) MouseUp(ev *desktop.MouseEvent) {
	for _, l := range v.snapshotListeners() {
		l.PointerUp(pointerEvent(ev))
	}
}

// MouseIn implements desktop.Hoverable
func (v *Viewport) MouseIn(*desktop.MouseEvent) {}

// MouseMoved forwards pointer movement to listeners so in-flight gestures
// can track displacement
func (v *Viewport) MouseMoved(ev *desktop.MouseEvent) {
	for _, l := range v.snapshotListeners() {
		l.PointerMove(pointerEvent(ev))
	}
}

// MouseOut implements desktop.Hoverable
func (v *Viewport) MouseOut() {}

// Dragged rotates the camera. Pointer listeners have already seen the raw
// events via MouseMoved; a drag never places a point.
func (v *Viewport) Dragged(event *fyne.DragEvent) {
	if v.dragStart != nil {
		deltaX := event.Position.X - v.dragStart.X
		deltaY := event.Position.Y - v.dragStart.Y
		v.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		v.Render(v.width, v.height)
	}
	pos := event.Position
	v.dragStart = &pos
}

// DragEnd ends a camera rotation
func (v *Viewport) DragEnd() {
	v.dragStart = nil
}

// Scrolled zooms the camera
func (v *Viewport) Scrolled(event *fyne.ScrollEvent) {
	v.camera.Zoom(-float64(event.Scrolled.DY) * 0.001)
	v.Render(v.width, v.height)
}

// CreateRenderer creates the fyne renderer for the widget
func (v *Viewport) CreateRenderer() fyne.WidgetRenderer {
	return &viewportRenderer{viewport: v}
}

type viewportRenderer struct {
	viewport *Viewport
	objects  []fyne.CanvasObject
}

func (r *viewportRenderer) Layout(size fyne.Size) {
	r.viewport.Render(float64(size.Width), float64(size.Height))
}

func (r *viewportRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (r *viewportRenderer) Refresh() {
	r.objects = r.objects[:0]
	for _, line := range r.viewport.lines {
		r.objects = append(r.objects, line)
	}
	r.objects = append(r.objects, r.viewport.overlay...)
	canvas.Refresh(r.viewport)
}

func (r *viewportRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *viewportRenderer) Destroy() {}
