package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ConflictResult reports whether a candidate slot overlaps an existing item.
// When Conflict is true, With points at the first overlapping item in day
// order and ExistingEndTime is that item's formatted end time, for surfacing
// to the user.
type ConflictResult struct {
	Conflict        bool           `json:"conflict"`
	With            *ScheduledItem `json:"with,omitempty"`
	ExistingEndTime string         `json:"existingEndTime,omitempty"`
}

// CheckConflict tests a candidate [start, start+duration) interval against
// every item already on the day. Intervals are half-open: touching endpoints
// do not conflict. Scanning stops at the first overlap.
func CheckConflict(day DayPlan, start string, durationHours float64) ConflictResult {
	candStart := clockToMinutes(start)
	candEnd := candStart + durationHours*60

	for i := range day {
		existing := &day[i]
		exStart := clockToMinutes(existing.StartTime)
		exEnd := exStart + existing.Activity.DurationHours*60

		if candStart < exEnd && candEnd > exStart {
			return ConflictResult{
				Conflict:        true,
				With:            existing,
				ExistingEndTime: minutesToClock(exEnd),
			}
		}
	}

	return ConflictResult{}
}

// clockToMinutes converts "HH:MM" to minutes since midnight. A string with
// no colon, or with unparsable components, counts as 00:00. That quirk is
// deliberate and is not repaired anywhere else.
func clockToMinutes(clock string) float64 {
	h, m, found := strings.Cut(clock, ":")
	if !found {
		return 0
	}
	hours, _ := strconv.Atoi(h)
	minutes, _ := strconv.Atoi(m)
	return float64(hours*60 + minutes)
}

func minutesToClock(minutes float64) string {
	total := int(minutes)
	return fmt.Sprintf("%02d:%02d", total/60, total%60)
}
