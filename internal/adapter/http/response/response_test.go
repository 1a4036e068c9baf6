package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupEcho() (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

func decodeFailure(t *testing.T, rec *httptest.ResponseRecorder) *ErrorDetail {
	t.Helper()
	var result Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.False(t, result.Success)
	require.NotNil(t, result.Error)
	return result.Error
}

func TestHealth(t *testing.T) {
	_, c, rec := setupEcho()

	err := Health(c, 41)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var result HealthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "ok", result.Status)
	assert.Equal(t, 41, result.Airports)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name        string
		write       func(c echo.Context) error
		wantStatus  int
		wantCode    string
		wantMessage string
	}{
		{
			name:        "bad request",
			write:       func(c echo.Context) error { return BadRequest(c, "Invalid input") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: "Invalid input",
		},
		{
			name:        "invalid body",
			write:       InvalidRequestBody,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidRequest,
			wantMessage: MsgInvalidRequestBody,
		},
		{
			name:        "validation message",
			write:       func(c echo.Context) error { return ValidationErrorWithMessage(c, "Custom validation message") },
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeValidationError,
			wantMessage: "Custom validation message",
		},
		{
			name:        "invalid interval",
			write:       InvalidInterval,
			wantStatus:  http.StatusBadRequest,
			wantCode:    CodeInvalidInterval,
			wantMessage: MsgInvalidInterval,
		},
		{
			name:        "not found",
			write:       func(c echo.Context) error { return NotFound(c, MsgAirportNotFound) },
			wantStatus:  http.StatusNotFound,
			wantCode:    CodeNotFound,
			wantMessage: MsgAirportNotFound,
		},
		{
			name:        "unresolvable zone",
			write:       UnresolvableZone,
			wantStatus:  http.StatusUnprocessableEntity,
			wantCode:    CodeUnresolvableZone,
			wantMessage: MsgUnresolvableZone,
		},
		{
			name:        "gateway timeout",
			write:       GatewayTimeout,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgTimeout,
		},
		{
			name:        "cancelled",
			write:       RequestCancelled,
			wantStatus:  http.StatusGatewayTimeout,
			wantCode:    CodeTimeout,
			wantMessage: MsgRequestCancelled,
		},
		{
			name:        "internal",
			write:       InternalServerError,
			wantStatus:  http.StatusInternalServerError,
			wantCode:    CodeInternalError,
			wantMessage: MsgInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, c, rec := setupEcho()

			require.NoError(t, tt.write(c))

			assert.Equal(t, tt.wantStatus, rec.Code)
			detail := decodeFailure(t, rec)
			assert.Equal(t, tt.wantCode, detail.Code)
			assert.Equal(t, tt.wantMessage, detail.Message)
			assert.Empty(t, detail.Details)
		})
	}
}

func TestValidationError(t *testing.T) {
	_, c, rec := setupEcho()

	details := map[string]string{
		"airportCode": "is required",
		"arrival":     "must be YYYY-MM-DD HH:MM or RFC3339",
	}

	err := ValidationError(c, details)
	require.NoError(t, err)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	detail := decodeFailure(t, rec)
	assert.Equal(t, CodeValidationError, detail.Code)
	assert.Equal(t, MsgValidationFailed, detail.Message)
	assert.Equal(t, details, detail.Details)
}

func TestSolarUnavailable(t *testing.T) {
	t.Run("with date", func(t *testing.T) {
		_, c, rec := setupEcho()
		require.NoError(t, SolarUnavailable(c, "2025-04-16"))

		assert.Equal(t, http.StatusBadGateway, rec.Code)
		detail := decodeFailure(t, rec)
		assert.Equal(t, CodeSolarUnavailable, detail.Code)
		assert.Equal(t, "2025-04-16", detail.Details["date"])
	})

	t.Run("without date", func(t *testing.T) {
		_, c, rec := setupEcho()
		require.NoError(t, SolarUnavailable(c, ""))

		detail := decodeFailure(t, rec)
		assert.Nil(t, detail.Details)
	})
}

func TestOK(t *testing.T) {
	_, c, rec := setupEcho()

	results := struct {
		Items []string `json:"items"`
		Total int      `json:"total"`
	}{
		Items: []string{"a", "b", "c"},
		Total: 3,
	}

	err := OK(c, results)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []string `json:"items"`
		Total int      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.Total)
	assert.Len(t, resp.Items, 3)
}

func TestEnvelopes(t *testing.T) {
	ok := Success(map[string]int{"n": 1})
	assert.True(t, ok.Success)
	assert.Nil(t, ok.Error)

	failed := Failure(CodeNotFound, "gone", nil)
	assert.False(t, failed.Success)
	assert.Equal(t, CodeNotFound, failed.Error.Code)
}
