package engine

import (
	"testing"

	"weekend-planner/internal/catalog"
)

func TestPlanOperations(t *testing.T) {
	brunch := catalog.Activity{ID: 1, Name: "Brunch", Category: catalog.CategoryFood, DurationHours: 2, Mood: catalog.MoodRelaxed, IsIndoor: true}
	hiking := catalog.Activity{ID: 2, Name: "Hiking", Category: catalog.CategoryOutdoor, DurationHours: 4, Mood: catalog.MoodEnergetic}

	t.Run("AddDefaultsStartTime", func(t *testing.T) {
		plan := WeekendPlan{Title: "My Weekend Plan", Theme: ThemeLazy}
		out := AddActivity(plan, Saturday, ScheduledItem{Activity: brunch})

		if len(out.Saturday) != 1 {
			t.Fatalf("expected 1 Saturday item, got %d", len(out.Saturday))
		}
		if out.Saturday[0].StartTime != "09:00" {
			t.Errorf("expected default start 09:00, got %q", out.Saturday[0].StartTime)
		}
		if out.Saturday[0].ActivityID != brunch.ID {
			t.Errorf("activity id should be filled from the activity, got %d", out.Saturday[0].ActivityID)
		}
		if len(plan.Saturday) != 0 {
			t.Error("input plan was mutated")
		}
	})

	t.Run("AddAllowsDuplicates", func(t *testing.T) {
		plan := WeekendPlan{}
		plan = AddActivity(plan, Saturday, ScheduledItem{Activity: hiking, StartTime: "09:00"})
		plan = AddActivity(plan, Saturday, ScheduledItem{Activity: hiking, StartTime: "14:00"})
		if len(plan.Saturday) != 2 {
			t.Errorf("duplicates are allowed by design, got %d items", len(plan.Saturday))
		}
	})

	t.Run("RemoveByIndex", func(t *testing.T) {
		plan := WeekendPlan{Sunday: DayPlan{
			{ActivityID: 1, Activity: brunch, StartTime: "09:00"},
			{ActivityID: 2, Activity: hiking, StartTime: "12:00"},
		}}
		out := RemoveActivity(plan, Sunday, 0)

		if len(out.Sunday) != 1 || out.Sunday[0].ActivityID != 2 {
			t.Errorf("expected only Hiking left, got %+v", out.Sunday)
		}
		if len(plan.Sunday) != 2 {
			t.Error("input plan was mutated")
		}
	})

	t.Run("RemoveOutOfRangeIsNoOp", func(t *testing.T) {
		plan := WeekendPlan{Saturday: DayPlan{{ActivityID: 1, Activity: brunch, StartTime: "09:00"}}}
		if out := RemoveActivity(plan, Saturday, 5); len(out.Saturday) != 1 {
			t.Error("out-of-range remove should leave the plan unchanged")
		}
		if out := RemoveActivity(plan, Saturday, -1); len(out.Saturday) != 1 {
			t.Error("negative index remove should leave the plan unchanged")
		}
	})

	t.Run("UpdateTimeAndNotes", func(t *testing.T) {
		plan := WeekendPlan{Saturday: DayPlan{{ActivityID: 1, Activity: brunch, StartTime: "09:00"}}}

		out := UpdateItemTime(plan, Saturday, 0, "11:30")
		if out.Saturday[0].StartTime != "11:30" {
			t.Errorf("expected updated time 11:30, got %q", out.Saturday[0].StartTime)
		}
		if plan.Saturday[0].StartTime != "09:00" {
			t.Error("input plan was mutated")
		}

		out = UpdateItemNotes(plan, Saturday, 0, "book a table")
		if out.Saturday[0].Notes != "book a table" {
			t.Errorf("expected updated notes, got %q", out.Saturday[0].Notes)
		}
	})
}
