package tree

import (
	"strings"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// Relationship classifies a couple from its event list and marriage date.
// A couple can be both married and divorced at once (a marriage event plus
// a later divorce event); the renderer shows divorced styling in that case
// while keeping the original marriage info available.
type Relationship struct {
	IsMarried    bool   `json:"is_married"`
	IsDivorced   bool   `json:"is_divorced"`
	DivorceDate  string `json:"divorce_date,omitempty"`
	DivorcePlace string `json:"divorce_place,omitempty"`
}

var (
	marriageKeywords = []string{"marriage", "wedding", "marry"}
	divorceKeywords  = []string{"divorce", "separation", "annulment"}
)

// AnalyzeRelationship inspects a family's events and marriage date. Event
// types are matched case-insensitively against the marriage and divorce
// keyword sets. When several divorce events exist the one with the most
// recent date wins; dateless events sort as unordered among themselves.
func AnalyzeRelationship(events []models.Event, marriageDate string) Relationship {
	rel := Relationship{IsMarried: marriageDate != ""}

	var divorce *models.Event
	for i := range events {
		ev := &events[i]
		if matchesAny(ev.Type, marriageKeywords) {
			rel.IsMarried = true
		}
		if matchesAny(ev.Type, divorceKeywords) {
			rel.IsDivorced = true
			// ISO dates compare lexically; an empty date never beats a
			// dated event.
			if divorce == nil || ev.Date > divorce.Date {
				divorce = ev
			}
		}
	}

	if divorce != nil {
		rel.DivorceDate = divorce.Date
		rel.DivorcePlace = divorce.Place
	}
	return rel
}

// StatusText returns the display label for the relationship. Divorced wins
// over married.
func (r Relationship) StatusText() string {
	switch {
	case r.IsDivorced:
		return "Divorced"
	case r.IsMarried:
		return "Married"
	default:
		return ""
	}
}

func matchesAny(eventType string, keywords []string) bool {
	t := strings.ToLower(eventType)
	for _, k := range keywords {
		if strings.Contains(t, k) {
			return true
		}
	}
	return false
}
