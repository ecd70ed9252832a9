package list_periods

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

// ToServiceRequest создает фильтр сервиса из query параметров. Пустые параметры не применяются.
func ToServiceRequest(activityID, fromStr, toStr string) (*models.ListPeriodsRequest, error) {
	req := &models.ListPeriodsRequest{}

	if activityID != "" {
		req.ActivityID = &activityID
	}

	if fromStr != "" {
		from, err := time.Parse(domain.DateFormat, fromStr)
		if err != nil {
			return nil, fmt.Errorf("from: %w", err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := time.Parse(domain.DateFormat, toStr)
		if err != nil {
			return nil, fmt.Errorf("to: %w", err)
		}
		req.To = &to
	}

	return req, nil
}
