package get_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	Date       string          `json:"date"`
	ActivityID string          `json:"activityId"`
	IsOpen     *bool           `json:"isOpen,omitempty"`
	Schedules  []ScheduleEntry `json:"schedules"`
}

// ScheduleEntry расписание покрывающего периода на дату
type ScheduleEntry struct {
	PeriodID       string       `json:"periodId"`
	PeriodName     string       `json:"periodName"`
	IsOffPeak      bool         `json:"isOffPeak"`
	StartTime      string       `json:"startTime"`
	EndTime        string       `json:"endTime"`
	BreakStartTime *string      `json:"breakStartTime"`
	BreakEndTime   *string      `json:"breakEndTime"`
	OpenWindows    []TimeWindow `json:"openWindows"`
}

// TimeWindow интервал [start, end)
type TimeWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(activityID, dateStr, timeStr string) (*getAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailability.Request{
		ActivityID: activityID,
		Date:       date,
	}

	if timeStr != "" {
		at, err := types.NewTimeStringFromString(timeStr)
		if err != nil {
			return nil, err
		}
		req.Time = &at
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		ActivityID: resp.ActivityID,
		IsOpen:     resp.IsOpen,
		Schedules:  FromScheduleEntries(resp.Schedules),
	}
}

// FromScheduleEntries конвертирует расписания периодов
func FromScheduleEntries(entries []getAvailability.ScheduleEntry) []ScheduleEntry {
	result := make([]ScheduleEntry, len(entries))
	for i, e := range entries {
		windows := make([]TimeWindow, len(e.OpenWindows))
		for j, w := range e.OpenWindows {
			windows[j] = TimeWindow{Start: w.Start.String(), End: w.End.String()}
		}

		result[i] = ScheduleEntry{
			PeriodID:       e.PeriodID,
			PeriodName:     e.PeriodName,
			IsOffPeak:      e.IsOffPeak,
			StartTime:      e.StartTime.String(),
			EndTime:        e.EndTime.String(),
			BreakStartTime: timeOrNil(e.BreakStartTime),
			BreakEndTime:   timeOrNil(e.BreakEndTime),
			OpenWindows:    windows,
		}
	}
	return result
}

func timeOrNil(t *types.TimeString) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := t.String()
	return &s
}
