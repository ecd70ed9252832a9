package domain

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Period represents a date-bounded opening configuration for one or more activities
type Period struct {
	ID         string
	Name       string
	StartDate  time.Time // inclusive, time-of-day ignored
	EndDate    time.Time // inclusive, time-of-day ignored
	Activities []string
	Schedule   []DaySchedule // one entry per ISO weekday
	IsOffPeak  bool          // pricing tier only, never affects availability

	CreatedAt time.Time
	UpdatedAt time.Time
}

// DaySchedule represents opening hours for one weekday within a period
type DaySchedule struct {
	DayOfWeek      int // 1 = Monday ... 7 = Sunday
	StartTime      types.TimeString
	EndTime        types.TimeString
	IsActive       bool
	BreakStartTime *types.TimeString
	BreakEndTime   *types.TimeString
}

// TimeWindow is a half-open [Start, End) interval within a day
type TimeWindow struct {
	Start types.TimeString
	End   types.TimeString
}

// PeriodFilter narrows period listing. Nil fields are not applied.
type PeriodFilter struct {
	ActivityID *string
	From       *time.Time // periods ending before From are skipped
	To         *time.Time // periods starting after To are skipped
}

// AppliesTo returns true if the period lists the activity
func (p *Period) AppliesTo(activityID string) bool {
	for _, id := range p.Activities {
		if id == activityID {
			return true
		}
	}
	return false
}

// HasValidRange returns true if StartDate <= EndDate
func (p *Period) HasValidRange() bool {
	return !DateOnly(p.StartDate).After(DateOnly(p.EndDate))
}

// CoversDate returns true if date falls within [StartDate, EndDate].
// A period with an inverted range never covers anything.
func (p *Period) CoversDate(date time.Time) bool {
	if !p.HasValidRange() {
		return false
	}

	d := DateOnly(date)
	return !d.Before(DateOnly(p.StartDate)) && !d.After(DateOnly(p.EndDate))
}

// DayFor returns the schedule entry for an ISO weekday (1..7)
func (p *Period) DayFor(isoWeekday int) (DaySchedule, bool) {
	for _, day := range p.Schedule {
		if day.DayOfWeek == isoWeekday {
			return day, true
		}
	}
	return DaySchedule{}, false
}

// HasBreak returns true if both break bounds are set
func (d DaySchedule) HasBreak() bool {
	return d.BreakStartTime != nil && d.BreakEndTime != nil &&
		!d.BreakStartTime.IsZero() && !d.BreakEndTime.IsZero()
}

// IsOpenAt returns true if at lies within [StartTime, EndTime) and outside [BreakStartTime, BreakEndTime).
// Inactive days and unparsable hours are closed. An unparsable break is ignored.
func (d DaySchedule) IsOpenAt(at types.TimeString) bool {
	if !d.IsActive {
		return false
	}

	atMin, err := at.Minutes()
	if err != nil {
		return false
	}
	start, end, ok := d.hours()
	if !ok || atMin < start || atMin >= end {
		return false
	}

	if breakStart, breakEnd, ok := d.breakBounds(); ok {
		if atMin >= breakStart && atMin < breakEnd {
			return false
		}
	}

	return true
}

// OpenWindows returns the open intervals of the day: the opening hours split by the break
func (d DaySchedule) OpenWindows() []TimeWindow {
	windows := make([]TimeWindow, 0, 2)
	if !d.IsActive {
		return windows
	}

	start, end, ok := d.hours()
	if !ok || start >= end {
		return windows
	}

	breakStart, breakEnd, hasBreak := d.breakBounds()
	if !hasBreak || breakStart >= breakEnd || breakEnd <= start || breakStart >= end {
		return append(windows, TimeWindow{Start: d.StartTime, End: d.EndTime})
	}

	if breakStart > start {
		windows = append(windows, TimeWindow{Start: d.StartTime, End: *d.BreakStartTime})
	}
	if breakEnd < end {
		windows = append(windows, TimeWindow{Start: *d.BreakEndTime, End: d.EndTime})
	}

	return windows
}

func (d DaySchedule) hours() (int, int, bool) {
	start, err := d.StartTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	end, err := d.EndTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	return start, end, true
}

func (d DaySchedule) breakBounds() (int, int, bool) {
	if !d.HasBreak() {
		return 0, 0, false
	}
	breakStart, err := d.BreakStartTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	breakEnd, err := d.BreakEndTime.Minutes()
	if err != nil {
		return 0, 0, false
	}
	return breakStart, breakEnd, true
}
