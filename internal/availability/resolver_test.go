package availability

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/ptr"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// week строит расписание из семи дней, все закрыты, кроме переданных
func week(open ...domain.DaySchedule) []domain.DaySchedule {
	days := make([]domain.DaySchedule, domain.DaysInWeek)
	for i := range days {
		days[i] = domain.DaySchedule{DayOfWeek: i + 1}
	}
	for _, d := range open {
		days[d.DayOfWeek-1] = d
	}
	return days
}

func openDay(dow int, start, end string) domain.DaySchedule {
	return domain.DaySchedule{
		DayOfWeek: dow,
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
		IsActive:  true,
	}
}

// p1 период из сценария: февраль-май 2025, понедельник 09:00-18:00, воскресенье закрыто
func p1() *domain.Period {
	return &domain.Period{
		ID:         "P1",
		Name:       "Saison printemps",
		StartDate:  date(2025, time.February, 1),
		EndDate:    date(2025, time.May, 31),
		Activities: []string{"kayak"},
		Schedule:   week(openDay(1, "09:00", "18:00")),
	}
}

func TestIsOpenAt_ConcreteScenario(t *testing.T) {
	periods := []*domain.Period{p1()}

	assert.True(t, IsOpenAt(date(2025, time.March, 3), "10:00", "kayak", periods), "Monday in range")
	assert.False(t, IsOpenAt(date(2025, time.March, 2), "10:00", "kayak", periods), "Sunday is inactive")
	assert.False(t, IsOpenAt(date(2025, time.June, 1), "10:00", "kayak", periods), "out of range")
}

func TestIsOpenAt_UnknownActivity(t *testing.T) {
	assert.False(t, IsOpenAt(date(2025, time.March, 3), "10:00", "paddle", []*domain.Period{p1()}))
}

func TestIsOpenAt_NoPeriods(t *testing.T) {
	assert.False(t, IsOpenAt(date(2025, time.March, 3), "10:00", "kayak", nil))
	assert.False(t, IsOpenAt(date(2025, time.March, 3), "10:00", "kayak", []*domain.Period{}))
}

func TestIsOpenAt_BreakWindow(t *testing.T) {
	day := openDay(1, "09:00", "18:00")
	day.BreakStartTime = ptr.Ptr(types.TimeString("12:00"))
	day.BreakEndTime = ptr.Ptr(types.TimeString("13:00"))

	period := p1()
	period.Schedule = week(day)
	periods := []*domain.Period{period}
	monday := date(2025, time.March, 3)

	assert.False(t, IsOpenAt(monday, "12:30", "kayak", periods))
	assert.True(t, IsOpenAt(monday, "11:59", "kayak", periods))
	assert.True(t, IsOpenAt(monday, "13:00", "kayak", periods))
	assert.False(t, IsOpenAt(monday, "12:00", "kayak", periods), "break start is closed")
}

func TestIsOpenAt_HalfOpenHours(t *testing.T) {
	periods := []*domain.Period{p1()}
	monday := date(2025, time.March, 3)

	assert.True(t, IsOpenAt(monday, "09:00", "kayak", periods))
	assert.True(t, IsOpenAt(monday, "17:59", "kayak", periods))
	assert.False(t, IsOpenAt(monday, "18:00", "kayak", periods))
	assert.False(t, IsOpenAt(monday, "08:59", "kayak", periods))
}

func TestIsOpenAt_OverlappingPeriods(t *testing.T) {
	morning := &domain.Period{
		ID:         "P1",
		StartDate:  date(2025, time.January, 1),
		EndDate:    date(2025, time.June, 30),
		Activities: []string{"kayak"},
		Schedule:   week(openDay(1, "09:00", "12:00")),
	}
	afternoon := &domain.Period{
		ID:         "P2",
		StartDate:  date(2025, time.March, 1),
		EndDate:    date(2025, time.April, 30),
		Activities: []string{"kayak"},
		Schedule:   week(openDay(1, "13:00", "18:00")),
	}
	marchMonday := date(2025, time.March, 10)

	assert.False(t, IsOpenAt(marchMonday, "14:00", "kayak", []*domain.Period{morning}))
	assert.True(t, IsOpenAt(marchMonday, "14:00", "kayak", []*domain.Period{morning, afternoon}))
	assert.True(t, IsOpenAt(marchMonday, "14:00", "kayak", []*domain.Period{afternoon, morning}), "order does not matter")
	assert.True(t, IsOpenAt(marchMonday, "10:00", "kayak", []*domain.Period{morning, afternoon}))
	assert.False(t, IsOpenAt(marchMonday, "12:30", "kayak", []*domain.Period{morning, afternoon}))

	// в мае P2 уже не действует
	mayMonday := date(2025, time.May, 5)
	assert.False(t, IsOpenAt(mayMonday, "14:00", "kayak", []*domain.Period{morning, afternoon}))
}

func TestPeriodsCoveringDate_BoundariesInclusive(t *testing.T) {
	period := &domain.Period{
		ID:         "P",
		StartDate:  date(2025, time.March, 3), // Monday
		EndDate:    date(2025, time.March, 31), // Monday
		Activities: []string{"kayak"},
		Schedule:   week(openDay(1, "09:00", "18:00")),
	}
	periods := []*domain.Period{period}

	assert.Equal(t, periods, PeriodsCoveringDate(date(2025, time.March, 3), "kayak", periods))
	assert.Equal(t, periods, PeriodsCoveringDate(date(2025, time.March, 31), "kayak", periods))
	assert.Equal(t, periods, PeriodsCoveringDate(date(2025, time.March, 31).Add(22*time.Hour), "kayak", periods),
		"time of day is ignored")
	assert.Empty(t, PeriodsCoveringDate(date(2025, time.February, 24), "kayak", periods))
	assert.Empty(t, PeriodsCoveringDate(date(2025, time.April, 7), "kayak", periods))
}

func TestPeriodsCoveringDate_ExcludesOutOfRangeRegardlessOfSchedule(t *testing.T) {
	allOpen := make([]domain.DaySchedule, 0, domain.DaysInWeek)
	for dow := 1; dow <= domain.DaysInWeek; dow++ {
		allOpen = append(allOpen, openDay(dow, "00:00", "23:59"))
	}
	period := &domain.Period{
		ID:         "P",
		StartDate:  date(2025, time.March, 10),
		EndDate:    date(2025, time.March, 20),
		Activities: []string{"kayak"},
		Schedule:   allOpen,
	}
	periods := []*domain.Period{period}

	for d := date(2025, time.February, 1); d.Before(date(2025, time.May, 1)); d = d.AddDate(0, 0, 1) {
		covered := PeriodsCoveringDate(d, "kayak", periods)
		inRange := !d.Before(period.StartDate) && !d.After(period.EndDate)

		if inRange {
			assert.Len(t, covered, 1, d.Format(domain.DateFormat))
		} else {
			assert.Empty(t, covered, d.Format(domain.DateFormat))
		}
	}
}

func TestPeriodsCoveringDate_ExcludesInactiveWeekdays(t *testing.T) {
	// открыты только вторник, четверг и суббота
	period := &domain.Period{
		ID:         "P",
		StartDate:  date(2025, time.January, 1),
		EndDate:    date(2025, time.December, 31),
		Activities: []string{"kayak"},
		Schedule:   week(openDay(2, "09:00", "18:00"), openDay(4, "09:00", "18:00"), openDay(6, "09:00", "18:00")),
	}
	periods := []*domain.Period{period}
	active := map[time.Weekday]bool{time.Tuesday: true, time.Thursday: true, time.Saturday: true}

	for d := date(2025, time.March, 1); d.Before(date(2025, time.April, 1)); d = d.AddDate(0, 0, 1) {
		covered := PeriodsCoveringDate(d, "kayak", periods)
		assert.Equal(t, active[d.Weekday()], len(covered) == 1, "%s %s", d.Format(domain.DateFormat), d.Weekday())
	}
}

func TestPeriodsCoveringDate_SundayMapsToSeven(t *testing.T) {
	period := &domain.Period{
		ID:         "P",
		StartDate:  date(2025, time.January, 1),
		EndDate:    date(2025, time.December, 31),
		Activities: []string{"kayak"},
		Schedule:   week(openDay(7, "10:00", "16:00")),
	}
	periods := []*domain.Period{period}

	assert.Len(t, PeriodsCoveringDate(date(2025, time.March, 2), "kayak", periods), 1, "Sunday")
	assert.Empty(t, PeriodsCoveringDate(date(2025, time.March, 3), "kayak", periods), "Monday")
	assert.Empty(t, PeriodsCoveringDate(date(2025, time.March, 8), "kayak", periods), "Saturday")
}

func TestPeriodsCoveringDate_PreservesInputOrder(t *testing.T) {
	a, b, c := p1(), p1(), p1()
	a.ID, b.ID, c.ID = "A", "B", "C"
	b.Activities = []string{"paddle"}

	got := PeriodsCoveringDate(date(2025, time.March, 3), "kayak", []*domain.Period{c, b, a})

	require.Len(t, got, 2)
	assert.Equal(t, "C", got[0].ID)
	assert.Equal(t, "A", got[1].ID)
}

func TestPeriodsCoveringDate_MalformedPeriods(t *testing.T) {
	inverted := p1()
	inverted.StartDate, inverted.EndDate = inverted.EndDate, inverted.StartDate

	missingDays := p1()
	missingDays.Schedule = []domain.DaySchedule{openDay(3, "09:00", "18:00")} // только среда

	noSchedule := p1()
	noSchedule.Schedule = nil

	periods := []*domain.Period{inverted, missingDays, noSchedule, nil}
	monday := date(2025, time.March, 3)

	assert.NotPanics(t, func() {
		assert.Empty(t, PeriodsCoveringDate(monday, "kayak", periods))
		assert.False(t, IsOpenAt(monday, "10:00", "kayak", periods))
	})
	assert.Len(t, PeriodsCoveringDate(date(2025, time.March, 5), "kayak", periods), 1, "Wednesday of missingDays")
}

func TestPeriodsCoveringDate_EmptyResultIsNotNil(t *testing.T) {
	got := PeriodsCoveringDate(date(2025, time.March, 3), "kayak", nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)

	entries := ScheduleForDate(date(2025, time.March, 3), "kayak", nil)
	assert.NotNil(t, entries)
	assert.Empty(t, entries)
}

func TestScheduleForDate(t *testing.T) {
	morning := p1()
	morning.ID = "morning"
	morning.Schedule = week(openDay(1, "09:00", "12:00"))

	evening := p1()
	evening.ID = "evening"
	evening.IsOffPeak = true
	evening.Schedule = week(openDay(1, "17:00", "21:00"))

	entries := ScheduleForDate(date(2025, time.March, 3), "kayak", []*domain.Period{morning, evening})

	require.Len(t, entries, 2)
	assert.Same(t, morning, entries[0].Period)
	assert.Equal(t, openDay(1, "09:00", "12:00"), entries[0].Day)
	assert.Same(t, evening, entries[1].Period)
	assert.Equal(t, types.TimeString("17:00"), entries[1].Day.StartTime)

	// isOffPeak не влияет на доступность
	assert.True(t, IsOpenAt(date(2025, time.March, 3), "18:00", "kayak", []*domain.Period{evening}))
}

func TestResolver_Idempotent(t *testing.T) {
	periods := []*domain.Period{p1()}
	monday := date(2025, time.March, 3)

	assert.Equal(t, PeriodsCoveringDate(monday, "kayak", periods), PeriodsCoveringDate(monday, "kayak", periods))
	assert.Equal(t, ScheduleForDate(monday, "kayak", periods), ScheduleForDate(monday, "kayak", periods))
	assert.Equal(t, IsOpenAt(monday, "10:00", "kayak", periods), IsOpenAt(monday, "10:00", "kayak", periods))

	// входные данные не изменяются
	assert.Equal(t, []*domain.Period{p1()}, periods)
}

func TestResolver_ConcurrentCalls(t *testing.T) {
	periods := []*domain.Period{p1()}

	var wg sync.WaitGroup
	results := make([]bool, 64)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = IsOpenAt(date(2025, time.March, 3), "10:00", "kayak", periods)
		}(i)
	}
	wg.Wait()

	for _, r := range results {
		assert.True(t, r)
	}
}
