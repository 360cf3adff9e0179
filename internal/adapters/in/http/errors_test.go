package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"breakfast/internal/pkg/errs"
)

func TestRespondError_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "not found maps to 404",
			err:        errs.NewObjectNotFoundError("sale", "42"),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "conflict maps to 409",
			err:        errs.NewConflictError("account", "email taken"),
			wantStatus: http.StatusConflict,
		},
		{
			name:       "invalid state maps to 400",
			err:        errs.NewInvalidStateError("close sale", "completed"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "validation maps to 400",
			err:        errs.NewValueIsRequiredError("name"),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown maps to 500",
			err:        errors.New("connection reset"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rec := httptest.NewRecorder()
			ctx := e.NewContext(req, rec)

			require.NoError(t, respondError(ctx, tt.err))
			assert.Equal(t, tt.wantStatus, rec.Code)

			var body ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Equal(t, tt.wantStatus, body.Code)
		})
	}
}

func TestRespondError_HidesInternalDetails(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, respondError(ctx, errors.New("pq: password authentication failed")))

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotContains(t, body.Message, "password")
}
