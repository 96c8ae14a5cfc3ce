package engine

// Day selects one of the two weekend days.
type Day string

const (
	Saturday Day = "saturday"
	Sunday   Day = "sunday"
)

// AddActivity returns a copy of the plan with the activity appended to the
// given day. An empty start time defaults to 09:00. Callers wanting conflict
// protection run CheckConflict first; adding never validates.
func AddActivity(plan WeekendPlan, day Day, item ScheduledItem) WeekendPlan {
	if item.StartTime == "" {
		item.StartTime = "09:00"
	}
	if item.ActivityID == 0 {
		item.ActivityID = item.Activity.ID
	}

	out := clonePlan(plan)
	switch day {
	case Sunday:
		out.Sunday = append(out.Sunday, item)
	default:
		out.Saturday = append(out.Saturday, item)
	}
	return out
}

// RemoveActivity returns a copy of the plan with the item at index removed
// from the given day. Out-of-range indexes leave the plan unchanged.
func RemoveActivity(plan WeekendPlan, day Day, index int) WeekendPlan {
	out := clonePlan(plan)
	target := out.dayPlan(day)
	if index < 0 || index >= len(*target) {
		return out
	}
	*target = append((*target)[:index], (*target)[index+1:]...)
	return out
}

// UpdateItemTime returns a copy of the plan with the item's start time
// replaced. Out-of-range indexes leave the plan unchanged.
func UpdateItemTime(plan WeekendPlan, day Day, index int, start string) WeekendPlan {
	out := clonePlan(plan)
	target := out.dayPlan(day)
	if index < 0 || index >= len(*target) {
		return out
	}
	(*target)[index].StartTime = start
	return out
}

// UpdateItemNotes returns a copy of the plan with the item's notes replaced.
func UpdateItemNotes(plan WeekendPlan, day Day, index int, notes string) WeekendPlan {
	out := clonePlan(plan)
	target := out.dayPlan(day)
	if index < 0 || index >= len(*target) {
		return out
	}
	(*target)[index].Notes = notes
	return out
}

func (p *WeekendPlan) dayPlan(day Day) *DayPlan {
	if day == Sunday {
		return &p.Sunday
	}
	return &p.Saturday
}

func clonePlan(plan WeekendPlan) WeekendPlan {
	out := plan
	out.Saturday = append(DayPlan{}, plan.Saturday...)
	out.Sunday = append(DayPlan{}, plan.Sunday...)
	return out
}
