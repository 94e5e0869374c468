package handlers

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/embryolab/backend/internal/models"
	"github.com/embryolab/backend/internal/services"
	sharedHandlers "github.com/embryolab/backend/libs/handlers"
)

func TestParsePageQuery(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected models.PageQuery
	}{
		{name: "both parameters", url: "/models?page=3&pageSize=50", expected: models.PageQuery{Page: 3, PageSize: 50}},
		{name: "missing parameters stay zero", url: "/models", expected: models.PageQuery{}},
		{name: "garbage is ignored", url: "/models?page=abc&pageSize=50", expected: models.PageQuery{PageSize: 50}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, tt.url, nil)

			assert.Equal(t, tt.expected, parsePageQuery(r))
		})
	}
}

func TestRespondServiceError(t *testing.T) {
	base := &sharedHandlers.BaseHandler{Logger: zap.NewNop()}

	tests := []struct {
		name           string
		err            error
		expectedStatus int
	}{
		{name: "not found", err: services.ErrNotFound, expectedStatus: http.StatusNotFound},
		{name: "parent not found", err: services.ErrParentNotFound, expectedStatus: http.StatusNotFound},
		{name: "forbidden", err: services.ErrForbidden, expectedStatus: http.StatusForbidden},
		{name: "invalid options", err: services.ErrInvalidOptions, expectedStatus: http.StatusUnprocessableEntity},
		{name: "invalid answer", err: services.ErrInvalidAnswer, expectedStatus: http.StatusUnprocessableEntity},
		{name: "validation", err: services.ErrValidation, expectedStatus: http.StatusBadRequest},
		{name: "wrapped validation", err: fmt.Errorf("%w: title is required", services.ErrValidation), expectedStatus: http.StatusBadRequest},
		{name: "unknown error is a 500", err: fmt.Errorf("database error"), expectedStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			respondServiceError(base, w, tt.err)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}

	t.Run("internal errors never leak details", func(t *testing.T) {
		w := httptest.NewRecorder()

		respondServiceError(base, w, fmt.Errorf("dsn user:password@tcp"))

		assert.NotContains(t, w.Body.String(), "password")
		assert.Contains(t, w.Body.String(), "internal server error")
	})
}
