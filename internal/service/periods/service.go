package periods

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	periodRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/period"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods/models"
)

// Service сервис для работы с периодами
type Service struct {
	periodRepo   PeriodRepository
	activityRepo ActivityRepository
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса периодов
func NewService(
	periodRepo PeriodRepository,
	activityRepo ActivityRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		periodRepo:   periodRepo,
		activityRepo: activityRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает период из черновика.
// Все активности, на которые ссылается период, должны существовать.
func (s *Service) Create(ctx context.Context, draft *models.PeriodDraft) (*models.PeriodResponse, error) {
	period, err := ValidateDraft(draft)
	if err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	period.ID = uuid.NewString()

	// Проверка ссылок и вставка в одной сериализуемой транзакции:
	// параллельное удаление активности не оставит висячую ссылку
	var created *domain.Period
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.ensureActivitiesExist(txCtx, period.Activities); err != nil {
			return err
		}

		var err error
		created, err = s.periodRepo.Create(txCtx, period)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			s.logger.Warn("Create: %v", err)
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Create: %v", err)
			return nil, err
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created period id=%s for activities=%v", created.ID, created.Activities)
	return models.FromDomainPeriod(created), nil
}

// GetByID получает период по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.PeriodResponse, error) {
	period, err := s.periodRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("GetByID: period id=%s not found", id)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("GetByID: repository error for period id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPeriod(period), nil
}

// List возвращает периоды по фильтру
func (s *Service) List(ctx context.Context, req *models.ListPeriodsRequest) ([]*models.PeriodResponse, error) {
	filter := domain.PeriodFilter{}
	if req != nil {
		if req.From != nil && req.To != nil && req.To.Before(*req.From) {
			s.logger.Warn("List: inverted range from=%s to=%s",
				req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
			return nil, fmt.Errorf("%w: 'to' must not be before 'from'", ErrInvalidInput)
		}
		filter = domain.PeriodFilter{ActivityID: req.ActivityID, From: req.From, To: req.To}
	}

	periods, err := s.periodRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainPeriods(periods), nil
}

// Update полностью заменяет период содержимым черновика
func (s *Service) Update(ctx context.Context, id string, draft *models.PeriodDraft) (*models.PeriodResponse, error) {
	period, err := ValidateDraft(draft)
	if err != nil {
		s.logger.Warn("Update: validation failed for period id=%s: %v", id, err)
		return nil, err
	}

	period.ID = id

	var updated *domain.Period
	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := s.ensureActivitiesExist(txCtx, period.Activities); err != nil {
			return err
		}

		var err error
		updated, err = s.periodRepo.Update(txCtx, period)
		return err
	})
	if err != nil {
		if errors.Is(err, ErrActivityNotFound) {
			s.logger.Warn("Update: period id=%s: %v", id, err)
			return nil, err
		}
		if errors.Is(err, ErrInternal) {
			s.logger.Error("Update: period id=%s: %v", id, err)
			return nil, err
		}
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Update: period id=%s not found", id)
			return nil, ErrPeriodNotFound
		}
		s.logger.Error("Update: repository error for period id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated period id=%s", id)
	return models.FromDomainPeriod(updated), nil
}

// Delete удаляет период
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.periodRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, periodRepo.ErrPeriodNotFound) {
			s.logger.Warn("Delete: period id=%s not found", id)
			return ErrPeriodNotFound
		}
		s.logger.Error("Delete: repository error for period id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: successfully deleted period id=%s", id)
	return nil
}

// Helper methods

func (s *Service) ensureActivitiesExist(ctx context.Context, ids []string) error {
	existing, err := s.activityRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return fmt.Errorf("%w: failed to check activities: %w", ErrInternal, err)
	}

	found := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		found[id] = struct{}{}
	}

	var missing []string
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s", ErrActivityNotFound, strings.Join(missing, ", "))
	}

	return nil
}
