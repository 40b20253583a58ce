package measure

import "github.com/philipparndt/goarea/pkg/geometry"

// NewRestoringPicker turns a command-shaped picking primitive into a query.
// Some scene APIs only expose picking as a camera-mutating operation (focus
// on the hit point, adjust distance); save must capture whatever state the
// primitive touches and return a function that restores it. The restore runs
// even when the pick panics, so the camera never ends up moved by a pick.
func NewRestoringPicker(pick PickerFunc, save func() (restore func())) Picker {
	return PickerFunc(func(x, y float64) (geometry.Vector3, bool) {
		restore := save()
		defer restore()
		return pick(x, y)
	})
}
