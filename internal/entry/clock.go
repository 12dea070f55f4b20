package entry

import (
	"fmt"
	"strings"
)

// MinutesPerDay is the number of minutes in a clock day.
const MinutesPerDay = 24 * 60

// ParseClockTime converts a clock-time string to minutes since midnight.
// It accepts both 24-hour notation ("14:30") and 12-hour notation with a
// meridiem marker ("2:30 PM", "2:30pm"), with surrounding whitespace.
// Returns false for anything else, including out-of-range hours or minutes.
func ParseClockTime(raw string) (int, bool) {
	s := strings.TrimSpace(raw)

	meridiem := ""
	if len(s) >= 2 {
		switch strings.ToUpper(s[len(s)-2:]) {
		case "AM", "PM":
			meridiem = strings.ToUpper(s[len(s)-2:])
			s = strings.TrimSpace(s[:len(s)-2])
		}
	}

	colon := strings.IndexByte(s, ':')
	if colon < 1 || colon > 2 {
		return 0, false
	}
	hourPart, minPart := s[:colon], s[colon+1:]
	if len(minPart) != 2 || !isDigits(hourPart) || !isDigits(minPart) {
		return 0, false
	}

	hour := digitsToInt(hourPart)
	minute := digitsToInt(minPart)
	if minute > 59 {
		return 0, false
	}

	if meridiem != "" {
		// 12-hour convention: 12 AM is midnight, 12 PM is noon.
		if hour < 1 || hour > 12 {
			return 0, false
		}
		if meridiem == "PM" && hour != 12 {
			hour += 12
		}
		if meridiem == "AM" && hour == 12 {
			hour = 0
		}
	} else if hour > 23 {
		return 0, false
	}

	return hour*60 + minute, true
}

// ToDisplayString renders a 24-hour hour/minute pair in the canonical
// 12-hour display form "H:MM AM|PM". Hours 0 and 12 both render as 12.
func ToDisplayString(hour24, minute int) string {
	meridiem := "AM"
	if hour24 >= 12 {
		meridiem = "PM"
	}
	h := hour24 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, meridiem)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func digitsToInt(s string) int {
	n := 0
	for _, c := range s {
		n = n*10 + int(c-'0')
	}
	return n
}
