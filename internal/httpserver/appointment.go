package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/thepKz/gender-care-sub009/internal/logging"
	"github.com/thepKz/gender-care-sub009/internal/service"
	"github.com/thepKz/gender-care-sub009/internal/transport"
	"github.com/thepKz/gender-care-sub009/internal/util"
)

type AppointmentHTTP struct {
	Svc *service.AppointmentService
}

func (h *AppointmentHTTP) CreateAppointment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointment.create")

	var req transport.CreateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_appointment_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	app, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "create_appointment", err)
	}

	l.Info("create_appointment_success", "appointment_id", app.ID)
	return c.JSON(http.StatusCreated, app)
}

func (h *AppointmentHTTP) GetAppointment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointment.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_appointment_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	app, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "get_appointment", err)
	}
	return c.JSON(http.StatusOK, app)
}

func (h *AppointmentHTTP) GetAppointmentsByUser(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointment.list_by_user")

	userID, err := uuid.Parse(c.Param("userId"))
	if err != nil {
		l.Warn("list_appointments_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "user id is not a uuid")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListByUser(ctx, userID, offset, limit)
	if err != nil {
		return httpError(l, "list_appointments", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *AppointmentHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "appointment.update_status")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_appointment_status_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_appointment_status_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	app, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return httpError(l, "update_appointment_status", err)
	}
	return c.JSON(http.StatusOK, app)
}
