package viewport

import (
	"math"
	"sync"
	"time"

	"github.com/bep/debounce"
)

const (
	// Leave a margin around the fitted content.
	fitMargin = 0.9
	// HeaderOffset shifts the vertical centering down to clear the fixed
	// header above the viewport.
	HeaderOffset = 40.0

	defaultSettle = 100 * time.Millisecond
)

// Size is a measured bounding box.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// FitToView scales the viewport so the content fits inside the container,
// never zooming in past 100%, then centers the scaled content horizontally
// and vertically with the fixed header offset. Missing or zero measurements
// make this a no-op.
func (v *Viewport) FitToView(container, content Size) {
	if container.Width <= 0 || container.Height <= 0 ||
		content.Width <= 0 || content.Height <= 0 {
		return
	}

	scale := math.Min(
		container.Width*fitMargin/content.Width,
		container.Height*fitMargin/content.Height,
	)
	if scale > 1 {
		scale = 1
	}

	v.Scale = scale
	v.PanX = (container.Width - content.Width*scale) / 2
	v.PanY = (container.Height-content.Height*scale)/2 + HeaderOffset
}

// FitScheduler coalesces content-measure notifications into a single
// fit-to-view application once layout has settled. It fires for the initial
// load only; later notifications (window resizes and the like) are ignored.
// The apply callback runs on the debounce timer goroutine, so callers that
// share the viewport must synchronize inside it.
type FitScheduler struct {
	applyFit  func(container, content Size)
	debounced func(func())

	mu        sync.Mutex
	applied   bool
	container Size
	content   Size
}

// NewFitScheduler creates a scheduler that invokes applyFit once the last
// measurement has settled. A non-positive settle falls back to the default.
func NewFitScheduler(applyFit func(container, content Size), settle time.Duration) *FitScheduler {
	if settle <= 0 {
		settle = defaultSettle
	}
	return &FitScheduler{
		applyFit:  applyFit,
		debounced: debounce.New(settle),
	}
}

// ContentMeasured records the latest container and content boxes and
// re-arms the settle timer.
func (f *FitScheduler) ContentMeasured(container, content Size) {
	f.mu.Lock()
	if f.applied {
		f.mu.Unlock()
		return
	}
	f.container, f.content = container, content
	f.mu.Unlock()

	f.debounced(f.apply)
}

func (f *FitScheduler) apply() {
	f.mu.Lock()
	if f.applied {
		f.mu.Unlock()
		return
	}
	f.applied = true
	container, content := f.container, f.content
	f.mu.Unlock()

	f.applyFit(container, content)
}
