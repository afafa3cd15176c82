package viewport

import "sync"

// PointerKind identifies an input event delivered by the renderer.
type PointerKind int

const (
	PointerDownEvent PointerKind = iota
	PointerMoveEvent
	PointerUpEvent
	PointerLeaveEvent
	WheelEvent
)

// PointerEvent is a single pointer or wheel event in viewport coordinates.
type PointerEvent struct {
	Kind PointerKind
	X    float64
	Y    float64
	// WheelIn is the scroll direction for WheelEvent.
	WheelIn bool
}

// Subscription pumps renderer input events into a viewport until closed.
// It replaces window-global listeners: the controller owns the binding and
// Close must be called on teardown, otherwise handlers leak across
// mount/unmount cycles.
type Subscription struct {
	done      chan struct{}
	finished  chan struct{}
	closeOnce sync.Once
}

// Subscribe starts delivering events to the viewport. The pump stops when
// Close is called or the event channel is closed.
func Subscribe(v *Viewport, events <-chan PointerEvent) *Subscription {
	s := &Subscription{
		done:     make(chan struct{}),
		finished: make(chan struct{}),
	}

	go func() {
		defer close(s.finished)
		for {
			select {
			case <-s.done:
				return
			case ev, ok := <-events:
				if !ok {
					return
				}
				dispatch(v, ev)
			}
		}
	}()

	return s
}

// Close detaches the subscription and waits for the pump to stop. Safe to
// call more than once.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		close(s.done)
	})
	<-s.finished
}

func dispatch(v *Viewport, ev PointerEvent) {
	switch ev.Kind {
	case PointerDownEvent:
		v.PointerDown(ev.X, ev.Y)
	case PointerMoveEvent:
		v.PointerMove(ev.X, ev.Y)
	case PointerUpEvent:
		v.PointerUp()
	case PointerLeaveEvent:
		v.PointerLeave()
	case WheelEvent:
		v.WheelZoom(ev.WheelIn, ev.X, ev.Y)
	}
}
