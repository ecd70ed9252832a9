package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// PeriodDraft редактируемое состояние периода: даты и время строками, как их присылает консоль.
// Превращается в domain.Period только после periods.ValidateDraft.
type PeriodDraft struct {
	Name       string             `json:"name" validate:"required,max=255"`
	StartDate  string             `json:"startDate" validate:"required,datetime=2006-01-02"`
	EndDate    string             `json:"endDate" validate:"required,datetime=2006-01-02"`
	Activities []string           `json:"activities" validate:"required,min=1,dive,required,max=64"`
	Schedule   []DayScheduleDraft `json:"schedule" validate:"required,len=7,dive"`
	IsOffPeak  bool               `json:"isOffPeak"`
}

// DayScheduleDraft расписание одного дня недели (1 = понедельник ... 7 = воскресенье)
type DayScheduleDraft struct {
	DayOfWeek      int     `json:"dayOfWeek" validate:"min=1,max=7"`
	StartTime      string  `json:"startTime" validate:"omitempty,clock"`
	EndTime        string  `json:"endTime" validate:"omitempty,clock"`
	IsActive       bool    `json:"isActive"`
	BreakStartTime *string `json:"breakStartTime,omitempty" validate:"omitempty,clock"`
	BreakEndTime   *string `json:"breakEndTime,omitempty" validate:"omitempty,clock"`
}

// ListPeriodsRequest фильтр списка периодов. Пустые поля не применяются.
type ListPeriodsRequest struct {
	ActivityID *string
	From       *time.Time
	To         *time.Time
}

// Response модели

// PeriodResponse период с расписанием
type PeriodResponse struct {
	ID         string                `json:"id"`
	Name       string                `json:"name"`
	StartDate  string                `json:"startDate"`
	EndDate    string                `json:"endDate"`
	Activities []string              `json:"activities"`
	Schedule   []DayScheduleResponse `json:"schedule"`
	IsOffPeak  bool                  `json:"isOffPeak"`
	CreatedAt  time.Time             `json:"createdAt"`
	UpdatedAt  time.Time             `json:"updatedAt"`
}

// DayScheduleResponse расписание дня недели
type DayScheduleResponse struct {
	DayOfWeek      int     `json:"dayOfWeek"`
	StartTime      *string `json:"startTime"`
	EndTime        *string `json:"endTime"`
	IsActive       bool    `json:"isActive"`
	BreakStartTime *string `json:"breakStartTime"`
	BreakEndTime   *string `json:"breakEndTime"`
}

// Converters

// FromDomainPeriod конвертирует domain.Period в PeriodResponse
func FromDomainPeriod(p *domain.Period) *PeriodResponse {
	schedule := make([]DayScheduleResponse, 0, len(p.Schedule))
	for _, day := range p.Schedule {
		schedule = append(schedule, FromDomainDaySchedule(day))
	}

	activities := make([]string, len(p.Activities))
	copy(activities, p.Activities)

	return &PeriodResponse{
		ID:         p.ID,
		Name:       p.Name,
		StartDate:  p.StartDate.Format(domain.DateFormat),
		EndDate:    p.EndDate.Format(domain.DateFormat),
		Activities: activities,
		Schedule:   schedule,
		IsOffPeak:  p.IsOffPeak,
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

// FromDomainPeriods конвертирует список периодов
func FromDomainPeriods(periods []*domain.Period) []*PeriodResponse {
	result := make([]*PeriodResponse, 0, len(periods))
	for _, p := range periods {
		result = append(result, FromDomainPeriod(p))
	}
	return result
}

// FromDomainDaySchedule конвертирует domain.DaySchedule. Пустое время отдается как null.
func FromDomainDaySchedule(d domain.DaySchedule) DayScheduleResponse {
	resp := DayScheduleResponse{
		DayOfWeek: d.DayOfWeek,
		IsActive:  d.IsActive,
	}
	if !d.StartTime.IsZero() {
		s := d.StartTime.String()
		resp.StartTime = &s
	}
	if !d.EndTime.IsZero() {
		s := d.EndTime.String()
		resp.EndTime = &s
	}
	if d.HasBreak() {
		bs, be := d.BreakStartTime.String(), d.BreakEndTime.String()
		resp.BreakStartTime = &bs
		resp.BreakEndTime = &be
	}
	return resp
}
