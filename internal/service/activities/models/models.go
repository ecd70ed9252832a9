package models

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модели

// CreateActivityRequest запрос на создание активности.
// Если ID не передан, генерируется UUID.
type CreateActivityRequest struct {
	ID          *string `json:"id,omitempty" validate:"omitempty,max=64,slug"`
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// UpdateActivityRequest запрос на частичное обновление.
// Обновляются только переданные поля, пустое описание удаляет его.
type UpdateActivityRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// Response модели

// ActivityResponse активность
type ActivityResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Converters

// ToDomainActivity конвертирует запрос в domain.Activity (ID заполняет сервис)
func (r *CreateActivityRequest) ToDomainActivity() *domain.Activity {
	return &domain.Activity{
		Name:        r.Name,
		Description: r.Description,
	}
}

// FromDomainActivity конвертирует domain.Activity в ActivityResponse
func FromDomainActivity(a *domain.Activity) *ActivityResponse {
	return &ActivityResponse{
		ID:          a.ID,
		Name:        a.Name,
		Description: a.Description,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

// FromDomainActivities конвертирует список активностей
func FromDomainActivities(activities []*domain.Activity) []*ActivityResponse {
	result := make([]*ActivityResponse, 0, len(activities))
	for _, a := range activities {
		result = append(result, FromDomainActivity(a))
	}
	return result
}
