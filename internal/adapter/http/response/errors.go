package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

func fail(c echo.Context, status int, code, message string, details map[string]string) error {
	return c.JSON(status, Failure(code, message, details))
}

// BadRequest writes a 400 Bad Request response with the given error message.
func BadRequest(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, message, nil)
}

// InvalidRequestBody writes a 400 Bad Request response for malformed request bodies.
func InvalidRequestBody(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidRequest, MsgInvalidRequestBody, nil)
}

// ValidationError writes a 400 Bad Request response with validation error details.
func ValidationError(c echo.Context, details map[string]string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, MsgValidationFailed, details)
}

// ValidationErrorWithMessage writes a 400 Bad Request response with a custom message.
func ValidationErrorWithMessage(c echo.Context, message string) error {
	return fail(c, http.StatusBadRequest, CodeValidationError, message, nil)
}

// InvalidInterval writes a 400 Bad Request response for a stay that ends before it starts.
func InvalidInterval(c echo.Context) error {
	return fail(c, http.StatusBadRequest, CodeInvalidInterval, MsgInvalidInterval, nil)
}

// NotFound writes a 404 Not Found response.
func NotFound(c echo.Context, message string) error {
	return fail(c, http.StatusNotFound, CodeNotFound, message, nil)
}

// UnresolvableZone writes a 422 Unprocessable Entity response.
func UnresolvableZone(c echo.Context) error {
	return fail(c, http.StatusUnprocessableEntity, CodeUnresolvableZone, MsgUnresolvableZone, nil)
}

// SolarUnavailable writes a 502 Bad Gateway response, naming the failed date when known.
func SolarUnavailable(c echo.Context, date string) error {
	var details map[string]string
	if date != "" {
		details = map[string]string{"date": date}
	}
	return fail(c, http.StatusBadGateway, CodeSolarUnavailable, MsgSolarUnavailable, details)
}

// GatewayTimeout writes a 504 Gateway Timeout response.
func GatewayTimeout(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgTimeout, nil)
}

// RequestCancelled writes a 504 Gateway Timeout response for cancelled requests.
func RequestCancelled(c echo.Context) error {
	return fail(c, http.StatusGatewayTimeout, CodeTimeout, MsgRequestCancelled, nil)
}

// InternalServerError writes a 500 Internal Server Error response.
func InternalServerError(c echo.Context) error {
	return fail(c, http.StatusInternalServerError, CodeInternalError, MsgInternalError, nil)
}
