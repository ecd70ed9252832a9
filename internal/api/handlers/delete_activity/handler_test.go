package delete_activity

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/activities"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestHandler_Handle(t *testing.T) {
	service := new(MockActivityService)
	service.On("Delete", mock.Anything, "kayak").Return(nil)
	service.On("Delete", mock.Anything, "ghost").Return(activities.ErrActivityNotFound)
	service.On("Delete", mock.Anything, "paddle").Return(fmt.Errorf("%w: referenced by 2 period(s)", activities.ErrActivityInUse))
	service.On("Delete", mock.Anything, "broken").Return(activities.ErrInternal)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/activities/{activityId}", NewHandler(service, logger.NewNop()).Handle).
		Methods(http.MethodDelete)

	tests := map[string]int{
		"kayak":  http.StatusNoContent,
		"ghost":  http.StatusNotFound,
		"paddle": http.StatusConflict,
		"broken": http.StatusInternalServerError,
	}

	for id, status := range tests {
		t.Run(id, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/activities/"+id, nil))
			assert.Equal(t, status, rec.Code)
		})
	}
}
