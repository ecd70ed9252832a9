package periods

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/types"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validation"
)

var validate = validation.New()

// ValidateDraft проверяет черновик и строит из него domain.Period (без ID).
// Ошибка оборачивает ErrInvalidInput и validation.Errors со всеми найденными проблемами.
func ValidateDraft(draft *models.PeriodDraft) (*domain.Period, error) {
	if draft == nil {
		return nil, invalid(validation.Errors{{Field: "body", Message: "is required"}})
	}

	normalized := *draft
	normalized.Name = strings.TrimSpace(draft.Name)
	normalized.Schedule = normalizeBreaks(draft.Schedule)

	if err := validate.Struct(normalized); err != nil {
		if errs, ok := validation.FromValidator(err); ok {
			return nil, invalid(errs)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	var errs validation.Errors

	// Форматы уже проверены тегами datetime
	startDate, _ := time.Parse(domain.DateFormat, normalized.StartDate)
	endDate, _ := time.Parse(domain.DateFormat, normalized.EndDate)
	if endDate.Before(startDate) {
		errs.Add("endDate", "must not be before startDate")
	}

	seen := make(map[int]int, domain.DaysInWeek)
	schedule := make([]domain.DaySchedule, 0, len(normalized.Schedule))
	for i, d := range normalized.Schedule {
		field := fmt.Sprintf("schedule[%d]", i)
		if prev, ok := seen[d.DayOfWeek]; ok {
			errs.Add(field+".dayOfWeek", fmt.Sprintf("duplicates schedule[%d]", prev))
		} else {
			seen[d.DayOfWeek] = i
		}

		schedule = append(schedule, buildDay(field, d, &errs))
	}

	if len(errs) > 0 {
		return nil, invalid(errs)
	}

	sort.Slice(schedule, func(i, j int) bool {
		return schedule[i].DayOfWeek < schedule[j].DayOfWeek
	})

	return &domain.Period{
		Name:       normalized.Name,
		StartDate:  startDate,
		EndDate:    endDate,
		Activities: uniqueIDs(normalized.Activities),
		Schedule:   schedule,
		IsOffPeak:  normalized.IsOffPeak,
	}, nil
}

func buildDay(field string, d models.DayScheduleDraft, errs *validation.Errors) domain.DaySchedule {
	day := domain.DaySchedule{
		DayOfWeek: d.DayOfWeek,
		StartTime: canonicalTime(d.StartTime),
		EndTime:   canonicalTime(d.EndTime),
		IsActive:  d.IsActive,
	}
	hasHours := !day.StartTime.IsZero() && !day.EndTime.IsZero()

	if d.IsActive {
		if day.StartTime.IsZero() {
			errs.Add(field+".startTime", "is required for an active day")
		}
		if day.EndTime.IsZero() {
			errs.Add(field+".endTime", "is required for an active day")
		}
		if hasHours && !day.StartTime.IsBefore(day.EndTime) {
			errs.Add(field+".endTime", "must be after startTime")
		}
	}

	hasBreakStart := d.BreakStartTime != nil
	hasBreakEnd := d.BreakEndTime != nil

	switch {
	case hasBreakStart && !hasBreakEnd:
		errs.Add(field+".breakEndTime", "is required when breakStartTime is set")
	case !hasBreakStart && hasBreakEnd:
		errs.Add(field+".breakStartTime", "is required when breakEndTime is set")
	case hasBreakStart && hasBreakEnd:
		breakStart := canonicalTime(*d.BreakStartTime)
		breakEnd := canonicalTime(*d.BreakEndTime)

		if !breakStart.IsBefore(breakEnd) {
			errs.Add(field+".breakEndTime", "must be after breakStartTime")
		}
		if hasHours {
			if breakStart.IsBefore(day.StartTime) {
				errs.Add(field+".breakStartTime", "must not be before startTime")
			}
			if breakEnd.IsAfter(day.EndTime) {
				errs.Add(field+".breakEndTime", "must not be after endTime")
			}
		}

		day.BreakStartTime = &breakStart
		day.BreakEndTime = &breakEnd
	}

	return day
}

// normalizeBreaks копирует расписание, пустые строки перерыва становятся nil ("перерыва нет")
func normalizeBreaks(schedule []models.DayScheduleDraft) []models.DayScheduleDraft {
	if schedule == nil {
		return nil
	}

	result := make([]models.DayScheduleDraft, len(schedule))
	for i, d := range schedule {
		if d.BreakStartTime != nil && strings.TrimSpace(*d.BreakStartTime) == "" {
			d.BreakStartTime = nil
		}
		if d.BreakEndTime != nil && strings.TrimSpace(*d.BreakEndTime) == "" {
			d.BreakEndTime = nil
		}
		result[i] = d
	}
	return result
}

// canonicalTime приводит "9:00" и "09:00:00" к "09:00".
// Формат уже проверен тегом clock, пустая строка остается пустой.
func canonicalTime(s string) types.TimeString {
	if s == "" {
		return ""
	}
	t, err := types.NewTimeStringFromString(s)
	if err != nil {
		return types.TimeString(s)
	}
	return t
}

// uniqueIDs убирает повторы, сохраняя порядок первого вхождения
func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func invalid(errs validation.Errors) error {
	return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
}
