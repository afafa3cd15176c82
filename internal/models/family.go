package models

// Child wraps a child Person inside a family detail record.
type Child struct {
	Person Person `json:"person"`
}

// FamilyDetail is the full family record served by the family-data
// provider. A family may have zero, one or two parents.
type FamilyDetail struct {
	ID            string  `json:"id"`
	Husband       *Person `json:"husband,omitempty"`
	Wife          *Person `json:"wife,omitempty"`
	MarriageDate  string  `json:"marriage_date,omitempty"`
	MarriagePlace string  `json:"marriage_place,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	Children      []Child `json:"children,omitempty"`
	Events        []Event `json:"events,omitempty"`
}

// ChildPersons returns the children as a flat person slice.
func (f *FamilyDetail) ChildPersons() []Person {
	if len(f.Children) == 0 {
		return nil
	}
	persons := make([]Person, len(f.Children))
	for i, c := range f.Children {
		persons[i] = c.Person
	}
	return persons
}
