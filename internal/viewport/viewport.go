// Package viewport owns the pan offset and zoom scale for the rendered
// tree. The coordinate math is kept free of any rendering environment so it
// is unit-testable on its own; the event-binding layer feeds it through a
// Subscription.
package viewport

import "math"

// Zoom limits and steps.
const (
	MinScale = 0.1
	MaxScale = 3.0

	ZoomStep     = 1.1 // button zoom in/out factor
	WheelZoomIn  = 1.1
	WheelZoomOut = 0.9

	// A drag pans only after the pointer has moved this far, so a simple
	// click is not misread as a pan.
	DragThreshold = 3.0
)

// Viewport holds the current transform and the Idle ⇄ Dragging pointer
// state machine. Methods are not safe for concurrent use; callers serialize
// access (the Subscription pump, or a session lock).
type Viewport struct {
	PanX  float64
	PanY  float64
	Scale float64

	dragging  bool
	dragMoved bool
	startX    float64
	startY    float64
	lastX     float64
	lastY     float64
	basePanX  float64
	basePanY  float64
}

// New returns a viewport at scale 1 with no pan.
func New() *Viewport {
	return &Viewport{Scale: 1}
}

// Dragging reports whether a drag gesture is in progress.
func (v *Viewport) Dragging() bool {
	return v.dragging
}

// PointerDown enters the Dragging state, recording the start pointer
// position and the current pan offset. A second pointer-down while already
// dragging is ignored.
func (v *Viewport) PointerDown(x, y float64) {
	if v.dragging {
		return
	}
	v.dragging = true
	v.dragMoved = false
	v.startX, v.startY = x, y
	v.lastX, v.lastY = x, y
	v.basePanX, v.basePanY = v.PanX, v.PanY
}

// PointerMove applies the drag delta to the pan offset once the cumulative
// movement from the start position exceeds DragThreshold.
func (v *Viewport) PointerMove(x, y float64) {
	if !v.dragging {
		return
	}
	v.lastX, v.lastY = x, y
	dx, dy := x-v.startX, y-v.startY
	if !v.dragMoved {
		if math.Hypot(dx, dy) <= DragThreshold {
			return
		}
		v.dragMoved = true
	}
	v.PanX = v.basePanX + dx
	v.PanY = v.basePanY + dy
}

// PointerUp returns to Idle and reports whether the gesture stayed a click
// (never crossed the movement threshold).
func (v *Viewport) PointerUp() (wasClick bool) {
	wasClick = v.dragging && !v.dragMoved
	v.dragging = false
	v.dragMoved = false
	return wasClick
}

// PointerLeave returns to Idle when the pointer leaves the window.
func (v *Viewport) PointerLeave() {
	v.dragging = false
	v.dragMoved = false
}

// WheelZoom zooms anchored at the cursor position. in selects the scroll
// direction: true multiplies the scale by WheelZoomIn, false by
// WheelZoomOut.
func (v *Viewport) WheelZoom(in bool, cursorX, cursorY float64) {
	factor := WheelZoomOut
	if in {
		factor = WheelZoomIn
	}
	v.zoomAt(factor, cursorX, cursorY)
}

// ZoomIn zooms one step anchored at the viewport's geometric center.
func (v *Viewport) ZoomIn(viewportWidth, viewportHeight float64) {
	v.zoomAt(ZoomStep, viewportWidth/2, viewportHeight/2)
}

// ZoomOut zooms one step out anchored at the viewport's geometric center.
func (v *Viewport) ZoomOut(viewportWidth, viewportHeight float64) {
	v.zoomAt(1/ZoomStep, viewportWidth/2, viewportHeight/2)
}

// zoomAt rescales around a screen anchor so the content point under it maps
// to the same screen point before and after: content = (screen - pan) / scale.
func (v *Viewport) zoomAt(factor, anchorX, anchorY float64) {
	newScale := clamp(v.Scale*factor, MinScale, MaxScale)
	if newScale == v.Scale {
		return
	}
	contentX := (anchorX - v.PanX) / v.Scale
	contentY := (anchorY - v.PanY) / v.Scale
	v.PanX = anchorX - contentX*newScale
	v.PanY = anchorY - contentY*newScale
	v.Scale = newScale

	// A zoom mid-gesture rebases the drag so the pan does not jump when
	// the movement threshold is crossed.
	if v.dragging {
		v.startX, v.startY = v.lastX, v.lastY
		v.basePanX, v.basePanY = v.PanX, v.PanY
	}
}

// Reset restores scale 1 and zero pan regardless of prior state.
func (v *Viewport) Reset() {
	v.Scale = 1
	v.PanX = 0
	v.PanY = 0
}

// ZoomPercent is the zoom level shown to the user.
func (v *Viewport) ZoomPercent() int {
	return int(math.Round(v.Scale * 100))
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
