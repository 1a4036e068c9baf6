// Package integration provides helpers and integration tests for the layover planner.
// Integration tests verify that components work together correctly, including
// HTTP handlers, the use case, the airport table and solar doubles.
package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/rest-planner/layover-daylight/internal/adapter/airport"
	httpAdapter "github.com/rest-planner/layover-daylight/internal/adapter/http"
	"github.com/rest-planner/layover-daylight/internal/adapter/http/middleware"
	"github.com/rest-planner/layover-daylight/internal/adapter/solar"
	"github.com/rest-planner/layover-daylight/internal/adapter/timezone"
	"github.com/rest-planner/layover-daylight/internal/domain"
	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
	"github.com/rest-planner/layover-daylight/internal/usecase"
	"github.com/rest-planner/layover-daylight/test/mock"
)

// TestServer wraps an Echo instance and provides helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.StayHandler
}

// NewTestServer creates a new test server with the given use case.
func NewTestServer(uc usecase.StayPlannerUseCase) *TestServer {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.Setup(e, logger.NewWithOutput(logger.DefaultConfig(), io.Discard))

	handler := httpAdapter.NewStayHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)

	return &TestServer{
		Echo:    e,
		Handler: handler,
	}
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	switch body := req.Body.(type) {
	case nil:
		bodyReader = bytes.NewReader(nil)
	case string:
		bodyReader = bytes.NewReader([]byte(body))
	default:
		bodyBytes, _ := json.Marshal(body)
		bodyReader = bytes.NewReader(bodyBytes)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// SummaryRequest posts a stay summary request.
func (ts *TestServer) SummaryRequest(body interface{}) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/stays/summary",
		Body:   body,
	})
}

// SearchRequest searches airports by query.
func (ts *TestServer) SearchRequest(query string, limit int) Response {
	params := url.Values{}
	params.Set("q", query)
	if limit != 0 {
		params.Set("limit", fmt.Sprint(limit))
	}
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/airports?" + params.Encode(),
	})
}

// AirportRequest fetches one airport by code.
func (ts *TestServer) AirportRequest(code string) Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/api/v1/airports/" + code,
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Do(Request{
		Method: http.MethodGet,
		Path:   "/health",
	})
}

// ParseSummary parses the response body as a stay summary.
func (r *Response) ParseSummary() (*httpAdapter.StaySummaryDTO, error) {
	var resp httpAdapter.StaySummaryDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseAirports parses the response body as an airport list.
func (r *Response) ParseAirports() (*httpAdapter.AirportListDTO, error) {
	var resp httpAdapter.AirportListDTO
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// ErrorCode returns error.code from an error envelope, or "" if absent.
func (r *Response) ErrorCode() string {
	body, err := r.ParseError()
	if err != nil {
		return ""
	}
	inner, ok := body["error"].(map[string]interface{})
	if !ok {
		return ""
	}
	code, _ := inner["code"].(string)
	return code
}

// SummaryRequestBody is a helper struct for building summary request bodies.
type SummaryRequestBody struct {
	AirportCode string `json:"airportCode"`
	Arrival     string `json:"arrival"`
	Departure   string `json:"departure"`
}

// DefaultSummaryRequest returns an overnight Istanbul layover.
func DefaultSummaryRequest() SummaryRequestBody {
	return SummaryRequestBody{
		AirportCode: "IST",
		Arrival:     "2025-04-16 10:00",
		Departure:   "2025-04-17 03:00",
	}
}

// CreateUseCase wires the sample airport table, a fixed-zone resolver and sun.
func CreateUseCase(t *testing.T, sun domain.SolarCalculator, zones domain.ZoneResolver) usecase.StayPlannerUseCase {
	return CreateUseCaseWithConfig(t, sun, zones, nil)
}

// CreateUseCaseWithConfig is CreateUseCase with custom configuration.
func CreateUseCaseWithConfig(t *testing.T, sun domain.SolarCalculator, zones domain.ZoneResolver, config *usecase.Config) usecase.StayPlannerUseCase {
	t.Helper()
	dir, err := airport.NewDirectory(mock.SampleAirports())
	if err != nil {
		t.Fatalf("Failed to build airport directory: %v", err)
	}
	return usecase.NewStayPlanner(usecase.Dependencies{
		Airports: dir,
		Zones:    zones,
		Solar:    sun,
	}, config)
}

// CreateRealUseCase wires the embedded airport table, the polygon zone
// resolver and the sunrise engine, as the server does.
func CreateRealUseCase(t *testing.T) usecase.StayPlannerUseCase {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping polygon-backed zone resolution in short mode")
	}

	dir, err := airport.NewLoader(nil).Load(context.Background(), airport.SourceEmbedded)
	if err != nil {
		t.Fatalf("Failed to load embedded airports: %v", err)
	}
	zones, err := timezone.NewResolver()
	if err != nil {
		t.Fatalf("Failed to load zone resolver: %v", err)
	}
	return usecase.NewStayPlanner(usecase.Dependencies{
		Airports: dir,
		Zones:    zones,
		Solar:    solar.NewCachedCalculator(solar.NewSunriseCalculator(), solar.DefaultCacheSize),
	}, nil)
}
