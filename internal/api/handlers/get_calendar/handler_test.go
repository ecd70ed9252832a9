package get_calendar

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	getAvailability "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_availability"
	getCalendar "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_calendar"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type MockUseCase struct {
	mock.Mock
}

func (m *MockUseCase) Execute(ctx context.Context, req *getCalendar.Request) (*getCalendar.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*getCalendar.Response), args.Error(1)
}

func serve(uc *MockUseCase, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/api/v1/activities/{activityId}/calendar", NewHandler(uc, logger.NewNop()).Handle).
		Methods(http.MethodGet)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Handle(t *testing.T) {
	uc := new(MockUseCase)
	sat := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	sun := sat.AddDate(0, 0, 1)

	uc.On("Execute", mock.Anything, &getCalendar.Request{ActivityID: "kayak", From: sat, To: sun}).
		Return(&getCalendar.Response{
			ActivityID: "kayak",
			From:       sat,
			To:         sun,
			Days: []getCalendar.Day{
				{Date: sat, IsOpen: true, Schedules: []getAvailability.ScheduleEntry{{PeriodID: "P1", StartTime: "10:00", EndTime: "16:00"}}},
				{Date: sun, Schedules: []getAvailability.ScheduleEntry{}},
			},
		}, nil)

	rec := serve(uc, "/api/v1/activities/kayak/calendar?from=2025-03-01&to=2025-03-02")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"activityId": "kayak",
		"from": "2025-03-01",
		"to": "2025-03-02",
		"days": [
			{"date": "2025-03-01", "weekday": 6, "isOpen": true, "schedules": [{
				"periodId": "P1", "periodName": "", "isOffPeak": false,
				"startTime": "10:00", "endTime": "16:00",
				"breakStartTime": null, "breakEndTime": null, "openWindows": []
			}]},
			{"date": "2025-03-02", "weekday": 7, "isOpen": false, "schedules": []}
		]
	}`, rec.Body.String())
}

func TestHandler_Handle_Errors(t *testing.T) {
	tests := []struct {
		name           string
		query          string
		err            error
		expectedStatus int
		expectedBody   string
	}{
		{"missing to", "?from=2025-03-01", nil, http.StatusBadRequest, msgMissingRange},
		{"bad date", "?from=2025-03-01&to=March", nil, http.StatusBadRequest, msgInvalidDate},
		{"too large", "?from=2025-01-01&to=2025-12-31", fmt.Errorf("%w: 365 days", getCalendar.ErrRangeTooLarge), http.StatusBadRequest, msgRangeTooLarge},
		{"inverted", "?from=2025-03-02&to=2025-03-01", getCalendar.ErrInvalidInput, http.StatusBadRequest, msgInvalidRange},
		{"unknown activity", "?from=2025-03-01&to=2025-03-02", getCalendar.ErrActivityNotFound, http.StatusNotFound, msgActivityNotFound},
		{"internal", "?from=2025-03-01&to=2025-03-02", getCalendar.ErrInternal, http.StatusInternalServerError, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(MockUseCase)
			if tt.err != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)
			}

			rec := serve(uc, "/api/v1/activities/kayak/calendar"+tt.query)

			assert.Equal(t, tt.expectedStatus, rec.Code)
			if tt.expectedBody != "" {
				assert.Contains(t, rec.Body.String(), tt.expectedBody)
			}
			uc.AssertExpectations(t)
		})
	}
}
