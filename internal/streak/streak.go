// Package streak counts consecutive active calendar days.
package streak

import "github.com/fittrack/fittrack/internal/calendar"

// Compute returns the number of consecutive days ending at ref for which
// the active set contains the day. The walk goes strictly backwards, one
// day at a time, and stops at the first gap; days after ref are ignored.
// An empty set yields 0.
func Compute(active map[calendar.Day]bool, ref calendar.Day) int {
	count := 0
	for day := ref; active[day]; day = day.AddDays(-1) {
		count++
	}
	return count
}
