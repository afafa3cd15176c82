package models

// Event is a dated family event such as a marriage or a divorce. Type is
// free text and is matched case-insensitively against keyword sets by the
// relationship analyzer.
type Event struct {
	Type        string `json:"type"`
	Date        string `json:"date,omitempty"` // ISO date string
	Place       string `json:"place,omitempty"`
	Description string `json:"description,omitempty"`
}
