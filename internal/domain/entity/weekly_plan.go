package entity

import "time"

// Weekday values accepted by the planner, in Polish as the crews enter them.
var Weekdays = []string{
	"poniedziałek", "wtorek", "środa", "czwartek", "piątek", "sobota", "niedziela",
}

// WeeklyPlanEntry is one booked banquet in the weekly planner. Entries are
// bucketed by weekday within an ISO week key such as "2025-W39".
type WeeklyPlanEntry struct {
	ID           string
	CompanyName  string
	Weekday      string
	ServiceHours string
	Hall         string
	Headcount    int
	Coordinator  string
	Remarks      string
	YearWeek     string // "2006-W02" format

	CreatedAt time.Time
	UpdatedAt time.Time
}
