package activities

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	activityRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/activity"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/validation"
)

var validate = validation.New()

// Service сервис для работы с активностями
type Service struct {
	activityRepo ActivityRepository
	periodRepo   PeriodRepository
	txManager    TxManager
	logger       Logger
}

// NewService создает новый экземпляр сервиса активностей
func NewService(
	activityRepo ActivityRepository,
	periodRepo PeriodRepository,
	txManager TxManager,
	logger Logger,
) *Service {
	return &Service{
		activityRepo: activityRepo,
		periodRepo:   periodRepo,
		txManager:    txManager,
		logger:       logger,
	}
}

// Create создает активность
func (s *Service) Create(ctx context.Context, req *models.CreateActivityRequest) (*models.ActivityResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request body is required", ErrInvalidInput)
	}

	normalized := *req
	normalized.Name = strings.TrimSpace(req.Name)
	// Пустой ID означает "сгенерировать"
	if normalized.ID != nil && strings.TrimSpace(*normalized.ID) == "" {
		normalized.ID = nil
	}

	if err := s.validateStruct(normalized); err != nil {
		s.logger.Warn("Create: validation failed: %v", err)
		return nil, err
	}

	activity := normalized.ToDomainActivity()
	activity.Description = normalizeDescription(normalized.Description)
	if normalized.ID != nil {
		activity.ID = *normalized.ID
	} else {
		activity.ID = uuid.NewString()
	}

	created, err := s.activityRepo.Create(ctx, activity)
	if err != nil {
		if errors.Is(err, activityRepo.ErrDuplicateActivity) {
			s.logger.Warn("Create: activity id=%s already exists", activity.ID)
			return nil, ErrActivityAlreadyExists
		}
		s.logger.Error("Create: repository error: %v", err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: successfully created activity id=%s", created.ID)
	return models.FromDomainActivity(created), nil
}

// GetByID получает активность по ID
func (s *Service) GetByID(ctx context.Context, id string) (*models.ActivityResponse, error) {
	activity, err := s.getActivity(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	return models.FromDomainActivity(activity), nil
}

// List возвращает все активности
func (s *Service) List(ctx context.Context) ([]*models.ActivityResponse, error) {
	activities, err := s.activityRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainActivities(activities), nil
}

// Update частично обновляет активность
func (s *Service) Update(ctx context.Context, id string, req *models.UpdateActivityRequest) (*models.ActivityResponse, error) {
	if req == nil {
		return nil, fmt.Errorf("%w: request body is required", ErrInvalidInput)
	}

	if err := s.validateStruct(req); err != nil {
		s.logger.Warn("Update: validation failed for activity id=%s: %v", id, err)
		return nil, err
	}

	activity, err := s.getActivity(ctx, "Update", id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, fmt.Errorf("%w: %w", ErrInvalidInput, validation.Errors{{Field: "name", Message: "must not be empty"}})
		}
		activity.Name = name
	}
	if req.Description != nil {
		activity.Description = normalizeDescription(req.Description)
	}

	updated, err := s.activityRepo.Update(ctx, activity)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("Update: activity id=%s not found", id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("Update: repository error for activity id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: successfully updated activity id=%s", id)
	return models.FromDomainActivity(updated), nil
}

// Delete удаляет активность, если на неё не ссылается ни один период
func (s *Service) Delete(ctx context.Context, id string) error {
	// Проверка ссылок и удаление в одной сериализуемой транзакции
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		periods, err := s.periodRepo.List(txCtx, domain.PeriodFilter{ActivityID: &id})
		if err != nil {
			return fmt.Errorf("%w: Delete - failed to check periods: %w", ErrInternal, err)
		}
		if len(periods) > 0 {
			return fmt.Errorf("%w: referenced by %d period(s)", ErrActivityInUse, len(periods))
		}

		return s.activityRepo.Delete(txCtx, id)
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrActivityInUse):
			s.logger.Warn("Delete: activity id=%s: %v", id, err)
			return err
		case errors.Is(err, activityRepo.ErrActivityNotFound):
			s.logger.Warn("Delete: activity id=%s not found", id)
			return ErrActivityNotFound
		case errors.Is(err, ErrInternal):
			s.logger.Error("Delete: activity id=%s: %v", id, err)
			return err
		default:
			s.logger.Error("Delete: repository error for activity id=%s: %v", id, err)
			return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Delete: successfully deleted activity id=%s", id)
	return nil
}

// Helper methods

func (s *Service) getActivity(ctx context.Context, op, id string) (*domain.Activity, error) {
	activity, err := s.activityRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, activityRepo.ErrActivityNotFound) {
			s.logger.Warn("%s: activity id=%s not found", op, id)
			return nil, ErrActivityNotFound
		}
		s.logger.Error("%s: repository error for activity id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return activity, nil
}

func (s *Service) validateStruct(v interface{}) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	if errs, ok := validation.FromValidator(err); ok {
		return fmt.Errorf("%w: %w", ErrInvalidInput, errs)
	}
	return fmt.Errorf("%w: %v", ErrInvalidInput, err)
}

// normalizeDescription обрезает пробелы, пустое описание превращается в nil
func normalizeDescription(description *string) *string {
	if description == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*description)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
