package entry

// ComputedRow holds the derived values for one entry under a payment factor.
// Rows are recomputed on every read and never cached across renders.
type ComputedRow struct {
	Minutes int
	Cost    float64
}

// DurationMinutes returns the interval length in minutes between two raw
// clock-time strings. If either side is empty or does not parse, the
// interval is not yet computable and the result is 0. An end earlier than
// the start is interpreted as crossing midnight exactly once; equal times
// yield 0, not a full day.
func DurationMinutes(startRaw, endRaw string) int {
	start, ok := ParseClockTime(startRaw)
	if !ok {
		return 0
	}
	end, ok := ParseClockTime(endRaw)
	if !ok {
		return 0
	}

	minutes := end - start
	if minutes < 0 {
		minutes += MinutesPerDay
	}
	return minutes
}

// Compute derives the minutes and cost for a single entry.
// cost = minutes * flow rate (L/min) * payment factor.
func Compute(e Entry, factor float64) ComputedRow {
	minutes := DurationMinutes(e.StartTime, e.EndTime)
	return ComputedRow{
		Minutes: minutes,
		Cost:    float64(minutes) * e.Flow() * factor,
	}
}

// TotalCost sums the cost of every entry under the given factor.
func TotalCost(entries []Entry, factor float64) float64 {
	total := 0.0
	for _, e := range entries {
		total += Compute(e, factor).Cost
	}
	return total
}
