package models

// Sex codes used by the family-data provider.
const (
	SexMale    = "M"
	SexFemale  = "F"
	SexUnknown = "U"
)

// Person represents a single individual as returned by the family-data
// provider. A Person is immutable once fetched within a viewing session;
// identity is by ID.
type Person struct {
	ID           string      `json:"id"`
	FirstName    string      `json:"first_name"`
	LastName     string      `json:"last_name"`
	Sex          string      `json:"sex"` // M, F or U
	BirthDate    string      `json:"birth_date,omitempty"` // ISO date string
	DeathDate    string      `json:"death_date,omitempty"` // ISO date string
	BirthPlace   string      `json:"birth_place,omitempty"`
	DeathPlace   string      `json:"death_place,omitempty"`
	Occupation   string      `json:"occupation,omitempty"`
	Notes        string      `json:"notes,omitempty"`
	HasOwnFamily bool        `json:"has_own_family"`
	OwnFamilies  []FamilyRef `json:"own_families,omitempty"`
}

// FullName returns the person's full name.
func (p *Person) FullName() string {
	if p.LastName != "" {
		return p.FirstName + " " + p.LastName
	}
	return p.FirstName
}

// FamilyRef is a lightweight reference from a person to a family they
// belong to as a parent. It carries no children; those come from a
// separately fetched family detail record.
type FamilyRef struct {
	FamilyID      string         `json:"family_id"`
	Spouse        *SpouseSummary `json:"spouse,omitempty"`
	MarriageDate  string         `json:"marriage_date,omitempty"`
	MarriagePlace string         `json:"marriage_place,omitempty"`
	Events        []Event        `json:"events,omitempty"`
}

// SpouseSummary is the abbreviated spouse record embedded in a FamilyRef.
type SpouseSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Sex  string `json:"sex"`
}
