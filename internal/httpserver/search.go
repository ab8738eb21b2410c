package httpserver

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/thepKz/gender-care-sub009/internal/logging"
	"github.com/thepKz/gender-care-sub009/internal/search"
	"github.com/thepKz/gender-care-sub009/internal/util"
)

type SearchHTTP struct {
	Index *search.Index
}

func (h *SearchHTTP) SearchProducts(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "product.search")

	q := c.QueryParam("q")
	if q == "" {
		l.Warn("search_products_failed", "status", 400, "error", "empty query")
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	from, size := util.Calculate(page, size)

	total, products, err := h.Index.Search(ctx, q, from, size)
	if err != nil {
		return httpError(l, "search_products", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"total": total, "products": products})
}
