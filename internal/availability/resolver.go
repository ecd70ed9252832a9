// Package availability решает, открыта ли активность в заданную дату и время,
// по недельным расписаниям периодов.
//
// Все функции чистые: не изменяют входные данные, не хранят состояние и безопасны
// для конкурентного вызова. Некорректные данные (инвертированный диапазон дат,
// отсутствующий день недели, неразбираемое время) не приводят к ошибке, а просто
// дают "закрыто".
//
// Если дату покрывают несколько периодов одной активности, активность открыта,
// если открыт хотя бы один из них. Порядок периодов не задает приоритета.
package availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Entry период и его расписание на конкретный день недели
type Entry struct {
	Period *domain.Period
	Day    domain.DaySchedule
}

// PeriodsCoveringDate возвращает периоды активности, которые действуют в дату date
// и у которых соответствующий день недели активен. Порядок входа сохраняется.
func PeriodsCoveringDate(date time.Time, activityID string, periods []*domain.Period) []*domain.Period {
	entries := ScheduleForDate(date, activityID, periods)

	result := make([]*domain.Period, len(entries))
	for i, entry := range entries {
		result[i] = entry.Period
	}
	return result
}

// IsOpenAt возвращает true, если хотя бы один покрывающий дату период открыт во время at
func IsOpenAt(date time.Time, at types.TimeString, activityID string, periods []*domain.Period) bool {
	for _, entry := range ScheduleForDate(date, activityID, periods) {
		if entry.Day.IsOpenAt(at) {
			return true
		}
	}
	return false
}

// ScheduleForDate возвращает пары (период, расписание дня) для даты date.
// Фильтрация та же, что в PeriodsCoveringDate.
func ScheduleForDate(date time.Time, activityID string, periods []*domain.Period) []Entry {
	weekday := domain.ISOWeekday(date)
	result := make([]Entry, 0, len(periods))

	for _, period := range periods {
		if period == nil || !period.AppliesTo(activityID) || !period.CoversDate(date) {
			continue
		}

		day, ok := period.DayFor(weekday)
		if !ok || !day.IsActive {
			continue
		}

		result = append(result, Entry{Period: period, Day: day})
	}

	return result
}
