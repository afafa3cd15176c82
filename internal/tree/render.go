package tree

import (
	"strings"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// Node is the per-person render model handed to the presentation layer.
type Node struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Icon      string         `json:"icon"`
	DateRange string         `json:"date_range,omitempty"`
	Tooltip   string         `json:"tooltip,omitempty"`
	Class     HighlightClass `json:"class,omitempty"`
}

// NodeFor builds the render model for a person.
func NodeFor(p *models.Person) *Node {
	if p == nil {
		return nil
	}
	return &Node{
		ID:        p.ID,
		Name:      p.FullName(),
		Icon:      GenderIcon(p.Sex),
		DateRange: FormatDateRange(p.BirthDate, p.DeathDate),
		Tooltip:   personTooltip(p),
	}
}

func personTooltip(p *models.Person) string {
	var parts []string
	if p.Occupation != "" {
		parts = append(parts, "Occupation: "+p.Occupation)
	}
	if p.BirthPlace != "" {
		parts = append(parts, "Born in "+p.BirthPlace)
	}
	if p.DeathPlace != "" {
		parts = append(parts, "Died in "+p.DeathPlace)
	}
	if p.Notes != "" {
		parts = append(parts, p.Notes)
	}
	return strings.Join(parts, "\n")
}

// CoupleView is the presentation model for one couple.
type CoupleView struct {
	ID            string       `json:"id"`
	Husband       *Node        `json:"husband,omitempty"`
	Wife          *Node        `json:"wife,omitempty"`
	Children      []Node       `json:"children,omitempty"`
	Status        string       `json:"status,omitempty"`
	StatusTooltip string       `json:"status_tooltip,omitempty"`
	Relationship  Relationship `json:"relationship"`
}

// TreeView is the full presentation model: the generation list with every
// node rendered, ready for the viewer to draw.
type TreeView struct {
	FamilyID    string         `json:"family_id"`
	Generations [][]CoupleView `json:"generations"`
}

// RenderTree builds the presentation model for a generation list. When sel
// is non-nil every node carries its resolved highlight class.
func RenderTree(familyID string, generations []Generation, sel *Selection) *TreeView {
	view := &TreeView{
		FamilyID:    familyID,
		Generations: make([][]CoupleView, len(generations)),
	}
	for i, gen := range generations {
		views := make([]CoupleView, len(gen))
		for j, couple := range gen {
			views[j] = renderCouple(couple, sel)
		}
		view.Generations[i] = views
	}
	return view
}

func renderCouple(c Couple, sel *Selection) CoupleView {
	cv := CoupleView{
		ID:            c.ID,
		Husband:       NodeFor(c.Husband),
		Wife:          NodeFor(c.Wife),
		Status:        c.Relationship.StatusText(),
		StatusTooltip: coupleStatusTooltip(c),
		Relationship:  c.Relationship,
	}
	if len(c.Children) > 0 {
		cv.Children = make([]Node, len(c.Children))
		for i := range c.Children {
			cv.Children[i] = *NodeFor(&c.Children[i])
		}
	}
	if sel != nil {
		if cv.Husband != nil {
			cv.Husband.Class = sel.ClassFor(cv.Husband.ID)
		}
		if cv.Wife != nil {
			cv.Wife.Class = sel.ClassFor(cv.Wife.ID)
		}
		for i := range cv.Children {
			cv.Children[i].Class = sel.ClassFor(cv.Children[i].ID)
		}
	}
	return cv
}

// coupleStatusTooltip keeps the original marriage info visible even when the
// couple is shown as divorced.
func coupleStatusTooltip(c Couple) string {
	var parts []string
	if c.Relationship.IsMarried {
		line := "Married"
		if c.MarriageDate != "" {
			line += " " + FormatDate(c.MarriageDate)
		}
		if c.MarriagePlace != "" {
			line += " in " + c.MarriagePlace
		}
		parts = append(parts, line)
	}
	if c.Relationship.IsDivorced {
		line := "Divorced"
		if c.Relationship.DivorceDate != "" {
			line += " " + FormatDate(c.Relationship.DivorceDate)
		}
		if c.Relationship.DivorcePlace != "" {
			line += " in " + c.Relationship.DivorcePlace
		}
		parts = append(parts, line)
	}
	return strings.Join(parts, "\n")
}
