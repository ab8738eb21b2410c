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

type ReviewHTTP struct {
	Svc *service.ReviewService
}

func (h *ReviewHTTP) CreateReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.create")

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("create_review_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id is not a uuid")
	}

	var req transport.CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_review_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	review, err := h.Svc.Create(ctx, req, productID)
	if err != nil {
		return httpError(l, "create_review", err)
	}

	l.Info("create_review_success", "review_id", review.ID, "product_id", productID)
	return c.JSON(http.StatusCreated, review)
}

func (h *ReviewHTTP) GetProductReviews(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.list")

	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("list_reviews_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "product id is not a uuid")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListByProduct(ctx, productID, offset, limit)
	if err != nil {
		return httpError(l, "list_reviews", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *ReviewHTTP) DeleteReview(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "review.delete")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_review_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.Delete(ctx, id); err != nil {
		return httpError(l, "delete_review", err)
	}
	return c.NoContent(http.StatusNoContent)
}
