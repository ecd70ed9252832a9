package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/pkg/validation"
)

func TestRespondJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondJSON(rec, http.StatusCreated, map[string]string{"id": "kayak"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"id":"kayak"}`, rec.Body.String())
}

func TestRespondError(t *testing.T) {
	tests := []struct {
		name    string
		respond func(w http.ResponseWriter)
		status  int
	}{
		{"bad request", func(w http.ResponseWriter) { RespondBadRequest(w, "bad") }, http.StatusBadRequest},
		{"not found", func(w http.ResponseWriter) { RespondNotFound(w, "missing") }, http.StatusNotFound},
		{"conflict", func(w http.ResponseWriter) { RespondConflict(w, "exists") }, http.StatusConflict},
		{"too many requests", RespondTooManyRequests, http.StatusTooManyRequests},
		{"internal", RespondInternalError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			tt.respond(rec)

			assert.Equal(t, tt.status, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.status, body.Code)
			assert.NotEmpty(t, body.Message)
			assert.Nil(t, body.Errors)
		})
	}
}

func TestRespondValidationError(t *testing.T) {
	rec := httptest.NewRecorder()
	fieldErrs := validation.Errors{{Field: "endDate", Message: "must not be before startDate"}}

	RespondValidationError(rec, "invalid period", fmt.Errorf("%w: %w", errors.New("invalid input"), fieldErrs))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{
		"code": 400,
		"message": "invalid period",
		"errors": [{"field": "endDate", "message": "must not be before startDate"}]
	}`, rec.Body.String())
}

func TestRespondValidationError_PlainError(t *testing.T) {
	rec := httptest.NewRecorder()

	RespondValidationError(rec, "invalid", errors.New("boom"))

	assert.JSONEq(t, `{"code":400,"message":"invalid"}`, rec.Body.String())
}

func TestDecodeJSON(t *testing.T) {
	var v struct {
		Name string `json:"name"`
	}

	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Kayak"}`))
	require.NoError(t, DecodeJSON(req, &v))
	assert.Equal(t, "Kayak", v.Name)

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":`))
	assert.Error(t, DecodeJSON(req, &v))

	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"a"}{"name":"b"}`))
	assert.Error(t, DecodeJSON(req, &v))
}
