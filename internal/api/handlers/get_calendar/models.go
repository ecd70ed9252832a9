package get_calendar

import (
	"fmt"
	"time"

	availabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	getCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
)

// CalendarResponse HTTP response model
type CalendarResponse struct {
	ActivityID string        `json:"activityId"`
	From       string        `json:"from"`
	To         string        `json:"to"`
	Days       []CalendarDay `json:"days"`
}

// CalendarDay доступность в одну дату
type CalendarDay struct {
	Date      string                              `json:"date"`
	Weekday   int                                 `json:"weekday"` // 1 = понедельник ... 7 = воскресенье
	IsOpen    bool                                `json:"isOpen"`
	Schedules []availabilityHandler.ScheduleEntry `json:"schedules"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(activityID, fromStr, toStr string) (*getCalendar.Request, error) {
	from, err := time.Parse(domain.DateFormat, fromStr)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	to, err := time.Parse(domain.DateFormat, toStr)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	return &getCalendar.Request{
		ActivityID: activityID,
		From:       from,
		To:         to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getCalendar.Response) *CalendarResponse {
	days := make([]CalendarDay, len(resp.Days))
	for i, day := range resp.Days {
		days[i] = CalendarDay{
			Date:      day.Date.Format(domain.DateFormat),
			Weekday:   domain.ISOWeekday(day.Date),
			IsOpen:    day.IsOpen,
			Schedules: availabilityHandler.FromScheduleEntries(day.Schedules),
		}
	}

	return &CalendarResponse{
		ActivityID: resp.ActivityID,
		From:       resp.From.Format(domain.DateFormat),
		To:         resp.To.Format(domain.DateFormat),
		Days:       days,
	}
}
