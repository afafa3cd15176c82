package service

import (
	"sync"
	"time"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/tree"
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/viewport"
)

// Session is the viewing state for one root family: the loaded snapshot,
// the derived generations, the current selection and the viewport. All
// access goes through its lock; the derived graph itself is never mutated,
// only recomputed from fresh data.
type Session struct {
	mu          sync.Mutex
	familyID    string
	snapshot    *tree.Snapshot
	generations []tree.Generation
	selection   *tree.Selection
	view        *viewport.Viewport
	fit         *viewport.FitScheduler
}

func newSession(familyID string, snap *tree.Snapshot, generations []tree.Generation, settle time.Duration) *Session {
	s := &Session{
		familyID:    familyID,
		snapshot:    snap,
		generations: generations,
		selection:   tree.NewSelection(generations, snap.Children),
		view:        viewport.New(),
	}
	s.fit = viewport.NewFitScheduler(func(container, content viewport.Size) {
		s.mu.Lock()
		defer s.mu.Unlock()
		s.view.FitToView(container, content)
	}, settle)
	return s
}

// FamilyID returns the root family id this session was loaded for.
func (s *Session) FamilyID() string {
	return s.familyID
}

// Partial reports whether some descendant branches failed to load and were
// omitted from the tree.
func (s *Session) Partial() bool {
	return s.snapshot.Errs != nil
}

// Tree renders the presentation model with current highlight classes.
func (s *Session) Tree() *tree.TreeView {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tree.RenderTree(s.familyID, s.generations, s.selection)
}

// Hover recomputes highlights for the person with the given id. An unknown
// id clears the hover (empty sets), matching a pointer over empty space.
func (s *Session) Hover(personID string) tree.Highlights {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Hover(tree.FindPerson(s.generations, personID))
	return s.selection.Highlights()
}

// Click pins or unpins the selection on the person with the given id.
func (s *Session) Click(personID string) tree.Highlights {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Click(tree.FindPerson(s.generations, personID))
	return s.selection.Highlights()
}

// Leave clears a hover-only selection.
func (s *Session) Leave() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selection.Leave()
}

// Highlights computes the highlight sets for a person without touching the
// hover/pin state.
func (s *Session) Highlights(personID string) tree.Highlights {
	s.mu.Lock()
	defer s.mu.Unlock()
	return tree.ComputeHighlights(
		tree.FindPerson(s.generations, personID),
		s.generations,
		s.snapshot.Children,
	)
}

// Transform is the viewport state handed to the renderer.
type Transform struct {
	Scale       float64 `json:"scale"`
	PanX        float64 `json:"pan_x"`
	PanY        float64 `json:"pan_y"`
	ZoomPercent int     `json:"zoom_percent"`
}

// Transform returns the current viewport transform.
func (s *Session) Transform() Transform {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Transform{
		Scale:       s.view.Scale,
		PanX:        s.view.PanX,
		PanY:        s.view.PanY,
		ZoomPercent: s.view.ZoomPercent(),
	}
}

// ZoomIn steps the zoom in, anchored at the viewport center.
func (s *Session) ZoomIn(width, height float64) Transform {
	s.mu.Lock()
	s.view.ZoomIn(width, height)
	s.mu.Unlock()
	return s.Transform()
}

// ZoomOut steps the zoom out, anchored at the viewport center.
func (s *Session) ZoomOut(width, height float64) Transform {
	s.mu.Lock()
	s.view.ZoomOut(width, height)
	s.mu.Unlock()
	return s.Transform()
}

// WheelZoom zooms anchored at the cursor.
func (s *Session) WheelZoom(in bool, x, y float64) Transform {
	s.mu.Lock()
	s.view.WheelZoom(in, x, y)
	s.mu.Unlock()
	return s.Transform()
}

// Reset restores the identity transform.
func (s *Session) Reset() Transform {
	s.mu.Lock()
	s.view.Reset()
	s.mu.Unlock()
	return s.Transform()
}

// ContentMeasured forwards a renderer measurement to the fit scheduler.
func (s *Session) ContentMeasured(container, content viewport.Size) {
	s.fit.ContentMeasured(container, content)
}
