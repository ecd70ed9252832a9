package get_calendar

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	if strings.TrimSpace(req.ActivityID) == "" {
		return fmt.Errorf("%w: activityID is required", ErrInvalidInput)
	}

	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	days := domain.DaysInRange(req.From, req.To)
	if days == 0 {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if days > domain.MaxCalendarDays {
		return fmt.Errorf("%w: %d days requested, at most %d allowed", ErrRangeTooLarge, days, domain.MaxCalendarDays)
	}

	return nil
}
