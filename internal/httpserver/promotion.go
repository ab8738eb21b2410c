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

type PromotionHTTP struct {
	Svc *service.PromotionService
}

func (h *PromotionHTTP) CreatePromotion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "promotion.create")

	var req transport.CreatePromotionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_promotion_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	promo, err := h.Svc.Create(ctx, req)
	if err != nil {
		return httpError(l, "create_promotion", err)
	}

	l.Info("create_promotion_success", "promotion_id", promo.ID, "code", promo.Code)
	return c.JSON(http.StatusCreated, promo)
}

func (h *PromotionHTTP) GetPromotion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "promotion.get")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_promotion_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	promo, err := h.Svc.Get(ctx, id)
	if err != nil {
		return httpError(l, "get_promotion", err)
	}
	return c.JSON(http.StatusOK, promo)
}

func (h *PromotionHTTP) GetPromotions(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "promotion.list")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.List(ctx, offset, limit)
	if err != nil {
		return httpError(l, "list_promotions", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *PromotionHTTP) PatchPromotion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "promotion.patch")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("patch_promotion_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.PatchPromotionRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_promotion_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	promo, err := h.Svc.Patch(ctx, req, id)
	if err != nil {
		return httpError(l, "patch_promotion", err)
	}
	return c.JSON(http.StatusOK, promo)
}

func (h *PromotionHTTP) DeletePromotion(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "promotion.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_promotion_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(l, "delete_promotion", err)
	}
	return c.NoContent(http.StatusNoContent)
}
