package tree

import (
	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// Highlights holds the ids of nodes related to the selected person. Sets
// are recomputed in full on every selection change; no incremental state
// survives across selections.
type Highlights struct {
	Parents  map[string]bool `json:"parents"`
	Children map[string]bool `json:"children"`
	Spouse   string          `json:"spouse,omitempty"`
}

func emptyHighlights() Highlights {
	return Highlights{
		Parents:  make(map[string]bool),
		Children: make(map[string]bool),
	}
}

// ComputeHighlights derives the highlight sets for a selected person:
// parents from every couple that lists the person as a child, the spouse
// from the couple where the person is one populated side, and children as
// all descendants (not just the first generation). A person absent from the
// derived structure yields empty sets.
func ComputeHighlights(person *models.Person, generations []Generation, children map[string][]models.Person) Highlights {
	h := emptyHighlights()
	if person == nil {
		return h
	}

	for _, gen := range generations {
		for _, couple := range gen {
			for _, child := range couple.Children {
				if child.ID != person.ID {
					continue
				}
				if couple.Husband != nil {
					h.Parents[couple.Husband.ID] = true
				}
				if couple.Wife != nil {
					h.Parents[couple.Wife.ID] = true
				}
			}
			if couple.Husband != nil && couple.Husband.ID == person.ID && couple.Wife != nil {
				h.Spouse = couple.Wife.ID
			}
			if couple.Wife != nil && couple.Wife.ID == person.ID && couple.Husband != nil {
				h.Spouse = couple.Husband.ID
			}
		}
	}

	collectDescendants(person, children, h.Children, make(map[string]bool))
	return h
}

// collectDescendants walks the person's own families through the
// cross-family children map, adding every descendant id. The visited set
// keeps malformed cyclic data from recursing forever.
func collectDescendants(p *models.Person, children map[string][]models.Person, out map[string]bool, visited map[string]bool) {
	for _, ref := range p.OwnFamilies {
		if visited[ref.FamilyID] {
			continue
		}
		visited[ref.FamilyID] = true
		for _, kid := range children[ref.FamilyID] {
			out[kid.ID] = true
			collectDescendants(&kid, children, out, visited)
		}
	}
}

// FindPerson scans the derived generations for a person by id, checking
// both parent slots and every child list. Returns nil when absent.
func FindPerson(generations []Generation, id string) *models.Person {
	for _, gen := range generations {
		for i := range gen {
			couple := &gen[i]
			if couple.Husband != nil && couple.Husband.ID == id {
				return couple.Husband
			}
			if couple.Wife != nil && couple.Wife.ID == id {
				return couple.Wife
			}
			for j := range couple.Children {
				if couple.Children[j].ID == id {
					return &couple.Children[j]
				}
			}
		}
	}
	return nil
}

// HighlightClass names the visual emphasis applied to a node.
type HighlightClass string

const (
	ClassSelf   HighlightClass = "selected"
	ClassParent HighlightClass = "parent"
	ClassSpouse HighlightClass = "spouse"
	ClassChild  HighlightClass = "child"
	ClassNone   HighlightClass = ""
)

// Selection tracks the hovered or pinned person and the highlight sets
// derived from them. Hover updates the selection unless a click has pinned
// it; clicking the pinned node again unpins and clears everything.
type Selection struct {
	generations []Generation
	children    map[string][]models.Person

	current *models.Person
	pinned  bool
	sets    Highlights
}

// NewSelection creates a selection over an already-built generation list.
func NewSelection(generations []Generation, children map[string][]models.Person) *Selection {
	return &Selection{
		generations: generations,
		children:    children,
		sets:        emptyHighlights(),
	}
}

// Hover recomputes the highlight sets for the hovered person. Ignored
// while a selection is pinned.
func (s *Selection) Hover(p *models.Person) {
	if s.pinned {
		return
	}
	s.current = p
	s.sets = ComputeHighlights(p, s.generations, s.children)
}

// Leave clears a hover-only selection.
func (s *Selection) Leave() {
	if s.pinned {
		return
	}
	s.current = nil
	s.sets = emptyHighlights()
}

// Click pins the selection on p. Clicking the already-pinned person
// toggles the pin off and clears all highlight sets.
func (s *Selection) Click(p *models.Person) {
	if s.pinned && s.current != nil && p != nil && s.current.ID == p.ID {
		s.pinned = false
		s.current = nil
		s.sets = emptyHighlights()
		return
	}
	s.pinned = true
	s.current = p
	s.sets = ComputeHighlights(p, s.generations, s.children)
}

// Pinned reports whether the current selection is pinned by a click.
func (s *Selection) Pinned() bool {
	return s.pinned
}

// Current returns the selected person, or nil.
func (s *Selection) Current() *models.Person {
	return s.current
}

// Highlights returns the current highlight sets.
func (s *Selection) Highlights() Highlights {
	return s.sets
}

// ClassFor resolves the highlight class for a node id. First matching
// condition wins: self > parent > spouse > child > none.
func (s *Selection) ClassFor(id string) HighlightClass {
	switch {
	case s.current != nil && s.current.ID == id:
		return ClassSelf
	case s.sets.Parents[id]:
		return ClassParent
	case s.sets.Spouse == id:
		return ClassSpouse
	case s.sets.Children[id]:
		return ClassChild
	default:
		return ClassNone
	}
}
