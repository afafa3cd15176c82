package tree

import (
	"strings"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// Couple is a derived rendering unit pairing up to two parents with their
// children and relationship metadata. Its ID is the source family id.
type Couple struct {
	ID            string          `json:"id"`
	Husband       *models.Person  `json:"husband,omitempty"`
	Wife          *models.Person  `json:"wife,omitempty"`
	Children      []models.Person `json:"children,omitempty"`
	MarriageDate  string          `json:"marriage_date,omitempty"`
	MarriagePlace string          `json:"marriage_place,omitempty"`
	Events        []models.Event  `json:"events,omitempty"`
	Relationship  Relationship    `json:"relationship"`
}

// Generation is an ordered list of couples at the same depth from the root
// family. Generation 0 is always exactly the root family's couple.
type Generation []Couple

// BuildGenerations derives the generation sequence from a root family and
// the cross-family children map. It is a pure function of its inputs: the
// whole derived graph is recomputed whenever either changes.
//
// Each pass walks the current generation's children; a child with an own
// family produces a couple in the next generation. A seen set keyed by
// family id guarantees termination on cyclic or shared references.
func BuildGenerations(root *models.FamilyDetail, children map[string][]models.Person) []Generation {
	if root == nil {
		return nil
	}

	rootCouple := Couple{
		ID:            root.ID,
		Husband:       root.Husband,
		Wife:          root.Wife,
		Children:      root.ChildPersons(),
		MarriageDate:  root.MarriageDate,
		MarriagePlace: root.MarriagePlace,
		Events:        root.Events,
		Relationship:  AnalyzeRelationship(root.Events, root.MarriageDate),
	}

	generations := []Generation{{rootCouple}}
	current := []Couple{rootCouple}
	seen := map[string]bool{root.ID: true}

	for {
		var next []Couple
		for _, couple := range current {
			for _, child := range couple.Children {
				if !child.HasOwnFamily {
					continue
				}
				for _, ref := range child.OwnFamilies {
					if seen[ref.FamilyID] {
						continue
					}
					kids, haveKids := children[ref.FamilyID]
					if ref.Spouse == nil && !haveKids {
						// Nothing to show for this family; skip it rather
						// than render an empty placeholder couple.
						continue
					}
					seen[ref.FamilyID] = true
					next = append(next, childCouple(child, ref, kids))
				}
			}
		}
		if len(next) == 0 {
			break
		}
		generations = append(generations, Generation(next))
		current = next
	}

	return generations
}

// childCouple synthesizes the couple for a child's own family. The child
// occupies the husband or wife slot according to their sex; the opposite
// slot comes from the spouse summary when present.
func childCouple(child models.Person, ref models.FamilyRef, kids []models.Person) Couple {
	c := Couple{
		ID:            ref.FamilyID,
		Children:      kids,
		MarriageDate:  ref.MarriageDate,
		MarriagePlace: ref.MarriagePlace,
		Events:        ref.Events,
		Relationship:  AnalyzeRelationship(ref.Events, ref.MarriageDate),
	}

	member := child
	if child.Sex == models.SexFemale {
		c.Wife = &member
		c.Husband = spousePerson(ref.Spouse)
	} else {
		c.Husband = &member
		c.Wife = spousePerson(ref.Spouse)
	}
	return c
}

// spousePerson synthesizes a Person from the abbreviated spouse summary
// when the full record was not independently fetched.
func spousePerson(s *models.SpouseSummary) *models.Person {
	if s == nil {
		return nil
	}
	first, last := splitName(s.Name)
	return &models.Person{
		ID:        s.ID,
		FirstName: first,
		LastName:  last,
		Sex:       s.Sex,
	}
}

// splitName splits a display name on the first space; everything after it
// becomes the last name.
func splitName(name string) (first, last string) {
	first, last, found := strings.Cut(name, " ")
	if !found {
		return name, ""
	}
	return first, last
}
