package delete_period

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/service/periods"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type MockPeriodService struct {
	mock.Mock
}

func (m *MockPeriodService) Delete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

func TestHandler_Handle(t *testing.T) {
	service := new(MockPeriodService)
	service.On("Delete", mock.Anything, "P1").Return(nil)
	service.On("Delete", mock.Anything, "ghost").Return(periods.ErrPeriodNotFound)
	service.On("Delete", mock.Anything, "broken").Return(periods.ErrInternal)

	router := mux.NewRouter()
	router.HandleFunc("/api/v1/periods/{periodId}", NewHandler(service, logger.NewNop()).Handle).Methods(http.MethodDelete)

	for id, status := range map[string]int{
		"P1":     http.StatusNoContent,
		"ghost":  http.StatusNotFound,
		"broken": http.StatusInternalServerError,
	} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/v1/periods/"+id, nil))
		assert.Equal(t, status, rec.Code, id)
	}
}
