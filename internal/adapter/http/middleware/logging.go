package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/rest-planner/layover-daylight/internal/infrastructure/logger"
)

// RequestLogger returns middleware that logs each HTTP request on completion.
// It also attaches a request-scoped logger carrying the request id to the
// request context, so the use case logs correlate with the access log.
func RequestLogger(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			reqID := GetRequestID(c)
			reqLog := log
			if reqID != "" {
				reqLog = log.WithRequestID(reqID)
			}
			req := c.Request()
			c.SetRequest(req.WithContext(reqLog.Into(req.Context())))

			err := next(c)
			if err != nil {
				// Let Echo's error handler write the response
				c.Error(err)
			}

			duration := time.Since(start)
			res := c.Response()

			var event *zerolog.Event
			status := res.Status
			switch {
			case status >= 500:
				event = reqLog.Error()
			case status >= 400:
				event = reqLog.Warn()
			default:
				event = reqLog.Info()
			}

			event.
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Str("query", req.URL.RawQuery).
				Int("status", status).
				Int64("duration_ms", duration.Milliseconds()).
				Int64("bytes_out", res.Size).
				Str("client_ip", c.RealIP()).
				Str("user_agent", req.UserAgent()).
				Msg("HTTP request")

			return nil
		}
	}
}
