package get_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// Request модель запроса доступности активности на дату
type Request struct {
	ActivityID string            // ID активности
	Date       time.Time         // Дата (время суток игнорируется)
	Time       *types.TimeString // Время суток, nil - только расписание дня
}

// Response модель ответа
type Response struct {
	Date       time.Time       // Дата запроса
	ActivityID string          // ID активности
	IsOpen     *bool           // Открыто ли в Time, nil если время не передано
	Schedules  []ScheduleEntry // Периоды, покрывающие дату, в порядке хранения
}

// ScheduleEntry расписание одного покрывающего периода на дату
type ScheduleEntry struct {
	PeriodID       string
	PeriodName     string
	IsOffPeak      bool
	StartTime      types.TimeString
	EndTime        types.TimeString
	BreakStartTime *types.TimeString
	BreakEndTime   *types.TimeString
	OpenWindows    []domain.TimeWindow // Часы работы без перерыва
}

// FromEntries конвертирует результат резолвера в модели ответа
func FromEntries(entries []availability.Entry) []ScheduleEntry {
	result := make([]ScheduleEntry, len(entries))
	for i, entry := range entries {
		result[i] = ScheduleEntry{
			PeriodID:       entry.Period.ID,
			PeriodName:     entry.Period.Name,
			IsOffPeak:      entry.Period.IsOffPeak,
			StartTime:      entry.Day.StartTime,
			EndTime:        entry.Day.EndTime,
			BreakStartTime: entry.Day.BreakStartTime,
			BreakEndTime:   entry.Day.BreakEndTime,
			OpenWindows:    entry.Day.OpenWindows(),
		}
	}
	return result
}
