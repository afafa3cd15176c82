package tree

import (
	"time"

	"github.com/FoxaxeWasTaken/Awkward-Legacy-sub000/internal/models"
)

// InvalidDateText is rendered in place of a date that cannot be parsed.
// Formatting never fails; the rest of the node stays intact.
const InvalidDateText = "Invalid Date"

const displayDateLayout = "Jan 2, 2006"

// Gender icon names handed to the presentation layer.
const (
	IconMale    = "male"
	IconFemale  = "female"
	IconNeutral = "neutral"
)

// FormatDate renders an ISO date string for display. Empty input stays
// empty; unparseable input yields InvalidDateText.
func FormatDate(date string) string {
	if date == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return InvalidDateText
	}
	return t.Format(displayDateLayout)
}

// FormatDateRange renders "<birth> - <death|Present>". Both dates absent
// yields an empty string; a death date alone is shown without the dangling
// separator.
func FormatDateRange(birth, death string) string {
	if birth == "" && death == "" {
		return ""
	}
	end := "Present"
	if death != "" {
		end = FormatDate(death)
	}
	if birth == "" {
		return end
	}
	return FormatDate(birth) + " - " + end
}

// GenderIcon selects the icon name for a person's sex. Anything other than
// M or F gets the neutral icon.
func GenderIcon(sex string) string {
	switch sex {
	case models.SexMale:
		return IconMale
	case models.SexFemale:
		return IconFemale
	default:
		return IconNeutral
	}
}
