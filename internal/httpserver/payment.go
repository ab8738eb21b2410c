package httpserver

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/thepKz/gender-care-sub009/internal/logging"
	"github.com/thepKz/gender-care-sub009/internal/service"
	"github.com/thepKz/gender-care-sub009/internal/transport"
)

type PaymentHTTP struct {
	Svc *service.PaymentService
}

func (h *PaymentHTTP) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.create")

	var req transport.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_payment_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	payment, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "create_payment", err)
	}

	l.Info("create_payment_success", "payment_id", payment.ID, "order_id", payment.OrderID)
	return c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHTTP) GetPayment(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_payment_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	payment, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "get_payment", err)
	}
	return c.JSON(http.StatusOK, payment)
}

func (h *PaymentHTTP) GetOrderPayments(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.list_by_order")

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("list_order_payments_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "order id is not a uuid")
	}

	items, err := h.Svc.ListByOrder(ctx, orderID)
	if err != nil {
		return httpError(l, "list_order_payments", err)
	}
	return c.JSON(http.StatusOK, map[string]any{"data": items})
}

func (h *PaymentHTTP) UpdateStatus(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "payment.update_status")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("update_payment_status_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.UpdateStatusRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("update_payment_status_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	payment, err := h.Svc.UpdateStatus(ctx, id, req.Status)
	if err != nil {
		return httpError(l, "update_payment_status", err)
	}

	l.Info("update_payment_status_success", "payment_id", payment.ID, "payment_status", payment.Status)
	return c.JSON(http.StatusOK, payment)
}
