package viewport

import (
	"math"
	"testing"
	"time"
)

const epsilon = 1e-9

func TestZoomInButtonCapsAtMax(t *testing.T) {
	v := New()

	v.ZoomIn(800, 600)
	if math.Abs(v.Scale-1.1) > epsilon {
		t.Fatalf("scale after one zoom-in = %v, want 1.1", v.Scale)
	}

	for i := 0; i < 50; i++ {
		v.ZoomIn(800, 600)
	}
	if v.Scale != MaxScale {
		t.Errorf("scale after repeated zoom-in = %v, want exactly %v", v.Scale, MaxScale)
	}
}

func TestZoomOutButtonFloorsAtMin(t *testing.T) {
	v := New()

	for i := 0; i < 50; i++ {
		v.ZoomOut(800, 600)
	}
	if v.Scale != MinScale {
		t.Errorf("scale after repeated zoom-out = %v, want exactly %v", v.Scale, MinScale)
	}
}

func TestWheelZoomPreservesAnchor(t *testing.T) {
	v := New()
	v.PanX, v.PanY = 37, -12
	v.Scale = 0.8

	cursorX, cursorY := 412.0, 233.0
	contentX := (cursorX - v.PanX) / v.Scale
	contentY := (cursorY - v.PanY) / v.Scale

	v.WheelZoom(true, cursorX, cursorY)

	afterX := (cursorX - v.PanX) / v.Scale
	afterY := (cursorY - v.PanY) / v.Scale

	if math.Abs(afterX-contentX) > 1e-6 || math.Abs(afterY-contentY) > 1e-6 {
		t.Errorf("content point under cursor moved: (%v, %v) -> (%v, %v)",
			contentX, contentY, afterX, afterY)
	}
	if math.Abs(v.Scale-0.88) > epsilon {
		t.Errorf("scale = %v, want 0.88", v.Scale)
	}
}

func TestWheelZoomOut(t *testing.T) {
	v := New()
	v.WheelZoom(false, 100, 100)
	if math.Abs(v.Scale-0.9) > epsilon {
		t.Errorf("scale = %v, want 0.9", v.Scale)
	}
}

func TestButtonZoomAnchorsAtCenter(t *testing.T) {
	v := New()
	w, h := 800.0, 600.0
	centerContentX := (w/2 - v.PanX) / v.Scale
	centerContentY := (h/2 - v.PanY) / v.Scale

	v.ZoomIn(w, h)

	afterX := (w/2 - v.PanX) / v.Scale
	afterY := (h/2 - v.PanY) / v.Scale
	if math.Abs(afterX-centerContentX) > 1e-6 || math.Abs(afterY-centerContentY) > 1e-6 {
		t.Error("content point at viewport center moved during button zoom")
	}
}

func TestReset(t *testing.T) {
	v := New()
	v.PointerDown(0, 0)
	v.PointerMove(50, 80)
	v.PointerUp()
	v.WheelZoom(true, 10, 20)

	v.Reset()

	if v.Scale != 1 || v.PanX != 0 || v.PanY != 0 {
		t.Errorf("after reset: scale=%v pan=(%v, %v), want 1/(0, 0)", v.Scale, v.PanX, v.PanY)
	}
}

func TestDragBelowThresholdDoesNotPan(t *testing.T) {
	v := New()

	v.PointerDown(100, 100)
	v.PointerMove(101, 101)
	v.PointerMove(102, 101)

	if v.PanX != 0 || v.PanY != 0 {
		t.Errorf("pan = (%v, %v), want (0, 0) below the movement threshold", v.PanX, v.PanY)
	}
	if !v.Dragging() {
		t.Error("state should be Dragging after pointer-down")
	}

	if wasClick := v.PointerUp(); !wasClick {
		t.Error("a gesture that never crossed the threshold is a click")
	}
	if v.Dragging() {
		t.Error("pointer-up should return to Idle")
	}
}

func TestDragPansOnceThresholdCrossed(t *testing.T) {
	v := New()
	v.PanX, v.PanY = 10, 20

	v.PointerDown(100, 100)
	v.PointerMove(110, 95)

	if v.PanX != 20 || v.PanY != 15 {
		t.Errorf("pan = (%v, %v), want (20, 15)", v.PanX, v.PanY)
	}

	if wasClick := v.PointerUp(); wasClick {
		t.Error("a real drag must not count as a click")
	}
}

func TestPointerLeaveEndsDrag(t *testing.T) {
	v := New()
	v.PointerDown(0, 0)
	v.PointerLeave()
	if v.Dragging() {
		t.Error("pointer leaving the window should end the drag")
	}
}

func TestSecondPointerDownIgnored(t *testing.T) {
	v := New()
	v.PointerDown(100, 100)
	v.PointerDown(500, 500) // ignored; gesture already active
	v.PointerMove(110, 100)

	if v.PanX != 10 {
		t.Errorf("pan x = %v, want 10 (delta from the first pointer-down)", v.PanX)
	}
}

func TestZoomDuringDragDoesNotJump(t *testing.T) {
	v := New()
	v.PointerDown(100, 100)
	v.PointerMove(102, 100) // below threshold, no pan yet

	v.WheelZoom(true, 102, 100)
	panX, panY := v.PanX, v.PanY

	// Crossing the threshold now should pan relative to the rebased
	// position, not replay the pre-zoom delta.
	v.PointerMove(106, 100)
	if math.Abs(v.PanX-(panX+4)) > epsilon || math.Abs(v.PanY-panY) > epsilon {
		t.Errorf("pan jumped after mid-drag zoom: (%v, %v), want (%v, %v)",
			v.PanX, v.PanY, panX+4, panY)
	}
}

func TestZoomPercent(t *testing.T) {
	v := New()
	if got := v.ZoomPercent(); got != 100 {
		t.Errorf("ZoomPercent = %d, want 100", got)
	}
	v.Scale = 0.88
	if got := v.ZoomPercent(); got != 88 {
		t.Errorf("ZoomPercent = %d, want 88", got)
	}
	v.Scale = MaxScale
	if got := v.ZoomPercent(); got != 300 {
		t.Errorf("ZoomPercent = %d, want 300", got)
	}
}

func TestFitToView(t *testing.T) {
	v := New()
	v.FitToView(Size{Width: 1000, Height: 800}, Size{Width: 2000, Height: 1000})

	if math.Abs(v.Scale-0.45) > epsilon {
		t.Errorf("scale = %v, want 0.45", v.Scale)
	}
	if math.Abs(v.PanX-50) > epsilon {
		t.Errorf("pan x = %v, want 50 (horizontally centered)", v.PanX)
	}
	wantY := (800-1000*0.45)/2 + HeaderOffset
	if math.Abs(v.PanY-wantY) > epsilon {
		t.Errorf("pan y = %v, want %v", v.PanY, wantY)
	}
}

func TestFitToViewNeverZoomsIn(t *testing.T) {
	v := New()
	v.FitToView(Size{Width: 1000, Height: 800}, Size{Width: 100, Height: 100})

	if v.Scale != 1 {
		t.Errorf("scale = %v, want 1 (fit never zooms past 100%%)", v.Scale)
	}
}

func TestFitToViewNoOpOnMissingMeasurements(t *testing.T) {
	v := New()
	v.PanX, v.PanY, v.Scale = 5, 6, 0.7

	v.FitToView(Size{}, Size{Width: 100, Height: 100})
	v.FitToView(Size{Width: 100, Height: 100}, Size{})

	if v.PanX != 5 || v.PanY != 6 || v.Scale != 0.7 {
		t.Error("fit with missing measurements must be a no-op")
	}
}

func TestFitSchedulerAppliesOnce(t *testing.T) {
	applied := make(chan [2]Size, 4)
	f := NewFitScheduler(func(container, content Size) {
		applied <- [2]Size{container, content}
	}, 20*time.Millisecond)

	f.ContentMeasured(Size{Width: 500, Height: 500}, Size{Width: 100, Height: 100})
	f.ContentMeasured(Size{Width: 1000, Height: 800}, Size{Width: 2000, Height: 1000})

	select {
	case got := <-applied:
		if got[0].Width != 1000 || got[1].Width != 2000 {
			t.Errorf("fit applied with stale measurements: %+v", got)
		}
	case <-time.After(time.Second):
		t.Fatal("fit was never applied")
	}

	// Later measurements (a window resize) must not re-trigger the fit.
	f.ContentMeasured(Size{Width: 640, Height: 480}, Size{Width: 10, Height: 10})
	select {
	case <-applied:
		t.Error("fit re-applied after the initial load")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestSubscriptionDispatchAndClose(t *testing.T) {
	v := New()
	events := make(chan PointerEvent)
	sub := Subscribe(v, events)

	events <- PointerEvent{Kind: PointerDownEvent, X: 100, Y: 100}
	events <- PointerEvent{Kind: PointerMoveEvent, X: 120, Y: 110}
	events <- PointerEvent{Kind: PointerUpEvent}
	events <- PointerEvent{Kind: WheelEvent, X: 50, Y: 50, WheelIn: true}
	close(events)

	sub.Close()

	if v.PanX != 20 || v.PanY != 10 {
		t.Errorf("pan = (%v, %v), want (20, 10)", v.PanX, v.PanY)
	}
	if math.Abs(v.Scale-1.1) > epsilon {
		t.Errorf("scale = %v, want 1.1", v.Scale)
	}
	if v.Dragging() {
		t.Error("drag should have ended")
	}

	// Close is idempotent.
	sub.Close()
}
