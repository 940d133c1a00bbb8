package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// VisitedIcon returns the list marker for a place's visited state.
func VisitedIcon(visited bool) string {
	if visited {
		return StyleGreen.Render("✓")
	}
	return Dim("○")
}

// PadRight pads a string to a minimum width, truncating if needed.
func PadRight(s string, width int) string {
	if len(s) > width {
		return s[:width-1] + "…"
	}
	return s + strings.Repeat(" ", width-len(s))
}

// RelativeDate returns a human-friendly relative date string.
func RelativeDate(t time.Time) string {
	return RelativeDateFrom(t, time.Now())
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == -1:
		return "Yesterday"
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	case days < 0:
		return fmt.Sprintf("%dmo ago", -days/30)
	case days == 1:
		return "Tomorrow"
	case days < 14:
		return fmt.Sprintf("In %dd", days)
	case days < 60:
		return fmt.Sprintf("In %dw", days/7)
	default:
		return fmt.Sprintf("In %dmo", days/30)
	}
}
