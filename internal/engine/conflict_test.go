package engine

import (
	"testing"

	"weekend-planner/internal/catalog"
)

func item(name string, start string, hours float64) ScheduledItem {
	return ScheduledItem{
		ActivityID: 1,
		Activity:   catalog.Activity{ID: 1, Name: name, DurationHours: hours},
		StartTime:  start,
	}
}

func TestCheckConflict(t *testing.T) {
	t.Run("EmptyDay", func(t *testing.T) {
		res := CheckConflict(DayPlan{}, "09:00", 2)
		if res.Conflict {
			t.Fatal("expected no conflict on an empty day")
		}
	})

	t.Run("TouchingEndpointsAllowed", func(t *testing.T) {
		day := DayPlan{item("Brunch", "09:00", 2)} // ends 11:00
		res := CheckConflict(day, "11:00", 1)
		if res.Conflict {
			t.Errorf("back-to-back items should not conflict, got conflict with %q", res.With.Activity.Name)
		}
	})

	t.Run("StrictOverlap", func(t *testing.T) {
		day := DayPlan{item("Brunch", "09:00", 2)} // ends 11:00
		res := CheckConflict(day, "10:30", 1)
		if !res.Conflict {
			t.Fatal("expected 10:30 to conflict with an item running until 11:00")
		}
		if res.With == nil || res.With.Activity.Name != "Brunch" {
			t.Errorf("expected conflict with Brunch, got %+v", res.With)
		}
		if res.ExistingEndTime != "11:00" {
			t.Errorf("expected existing end time 11:00, got %q", res.ExistingEndTime)
		}
	})

	t.Run("CandidateEndsBeforeExisting", func(t *testing.T) {
		day := DayPlan{item("Movie Night", "15:00", 3)}
		res := CheckConflict(day, "12:00", 3) // ends exactly at 15:00
		if res.Conflict {
			t.Error("candidate ending when existing starts must not conflict")
		}
	})

	t.Run("CandidateEnclosesExisting", func(t *testing.T) {
		day := DayPlan{item("Yoga Session", "10:00", 1)}
		res := CheckConflict(day, "09:00", 4)
		if !res.Conflict {
			t.Error("candidate spanning an existing item must conflict")
		}
	})

	t.Run("FirstOverlapInDayOrderWins", func(t *testing.T) {
		day := DayPlan{
			item("Second", "13:00", 2),
			item("First", "09:00", 2),
		}
		// Overlaps both; the scan follows insertion order, not time order.
		res := CheckConflict(day, "09:30", 6)
		if !res.Conflict {
			t.Fatal("expected a conflict")
		}
		if res.With.Activity.Name != "Second" {
			t.Errorf("expected scan to stop at the first item in day order, got %q", res.With.Activity.Name)
		}
	})

	t.Run("MalformedTimeCoercesToMidnight", func(t *testing.T) {
		day := DayPlan{item("Early", "", 1)} // treated as 00:00–01:00
		res := CheckConflict(day, "0030", 1) // no colon, also 00:00
		if !res.Conflict {
			t.Error("both malformed times coerce to 00:00 and should overlap")
		}

		res = CheckConflict(day, "01:00", 1)
		if res.Conflict {
			t.Error("01:00 should not conflict with the coerced 00:00-01:00 interval")
		}
	})

	t.Run("ColonlessDigitsCoerceToMidnight", func(t *testing.T) {
		// "0930" must not be read as 930 hours; without a colon the whole
		// string collapses to 00:00.
		day := DayPlan{item("Morning", "09:00", 2)}
		if res := CheckConflict(day, "0930", 1); res.Conflict {
			t.Error("colon-less 0930 coerces to 00:00 and must not touch the 09:00 interval")
		}

		day = DayPlan{item("Midnight", "00:30", 1)}
		if res := CheckConflict(day, "0930", 1); !res.Conflict {
			t.Error("colon-less 0930 coerces to 00:00 and must overlap 00:30-01:30")
		}
	})

	t.Run("FractionalDuration", func(t *testing.T) {
		day := DayPlan{item("Half", "09:00", 0.5)} // ends 09:30
		if res := CheckConflict(day, "09:30", 1); res.Conflict {
			t.Error("expected no conflict at the fractional boundary")
		}
		if res := CheckConflict(day, "09:15", 1); !res.Conflict {
			t.Error("expected conflict inside the fractional interval")
		}
	})
}

// Any sequence of inserts accepted by CheckConflict keeps the day overlap
// free.
func TestAcceptedInsertsNeverOverlap(t *testing.T) {
	candidates := []struct {
		start string
		hours float64
	}{
		{"09:00", 2}, {"10:00", 1}, {"11:00", 1}, {"11:30", 2}, {"13:00", 1}, {"12:30", 4},
	}

	day := DayPlan{}
	for _, c := range candidates {
		if res := CheckConflict(day, c.start, c.hours); res.Conflict {
			continue
		}
		day = append(day, ScheduledItem{
			Activity:  catalog.Activity{DurationHours: c.hours},
			StartTime: c.start,
		})
	}

	for i := range day {
		for j := i + 1; j < len(day); j++ {
			aStart := clockToMinutes(day[i].StartTime)
			aEnd := aStart + day[i].Activity.DurationHours*60
			bStart := clockToMinutes(day[j].StartTime)
			bEnd := bStart + day[j].Activity.DurationHours*60
			if aStart < bEnd && aEnd > bStart {
				t.Fatalf("items %d and %d overlap: [%v,%v) vs [%v,%v)", i, j, aStart, aEnd, bStart, bEnd)
			}
		}
	}
}
