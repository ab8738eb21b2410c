package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/thepKz/gender-care-sub009/internal/service"
)

// httpError maps service sentinel errors onto HTTP status codes and logs the
// outcome. Unrecognized errors (connectivity included) become 500s and are
// logged at error level, never swallowed.
func httpError(l *slog.Logger, action string, err error) error {
	switch {
	case errors.Is(err, service.ErrValidation):
		l.Warn(action+"_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, service.ErrNotFound), errors.Is(err, gorm.ErrRecordNotFound):
		l.Warn(action+"_failed", "status", 404, "error", err)
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrConflict):
		l.Warn(action+"_failed", "status", 409, "error", err)
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	case errors.Is(err, service.ErrInvalidCredentials):
		l.Warn(action+"_failed", "status", 401, "error", err)
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	default:
		l.Error(action+"_failed", "status", 500, "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "internal error")
	}
}
