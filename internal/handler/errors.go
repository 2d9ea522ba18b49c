package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/gccoffee/member-api/internal/apperror"
	middlewarepkg "github.com/gccoffee/member-api/internal/middleware"
)

// NewErrorHandler translates handler errors into the error envelope.
// Domain errors keep their catalogue status; anything unrecognised is logged
// and answered with a generic 500.
func NewErrorHandler(log zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var (
			status  int
			code    string
			message string
			details any
		)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			status = he.Code
			code = statusCode(he.Code)
			message = httpErrorMessage(he)
		} else {
			resolved := apperror.ToHTTP(err)
			status, code, message, details = resolved.Status, resolved.Code, resolved.Message, resolved.Details
		}

		if status >= http.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("request_id", middlewarepkg.RequestIDFromContext(c)).
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Msg("request failed")
		}

		if c.Request().Method == http.MethodHead {
			err = c.NoContent(status)
		} else {
			err = Error(c, status, code, message, details)
		}
		if err != nil {
			log.Error().Err(err).Msg("write error response")
		}
	}
}

func statusCode(status int) string {
	text := http.StatusText(status)
	if text == "" {
		return apperror.CodeInternalError
	}
	return strings.ToUpper(strings.ReplaceAll(text, " ", "_"))
}

func httpErrorMessage(he *echo.HTTPError) string {
	switch msg := he.Message.(type) {
	case string:
		return msg
	case nil:
		return strings.ToLower(http.StatusText(he.Code))
	default:
		return fmt.Sprint(msg)
	}
}
