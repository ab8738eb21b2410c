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

type CareHTTP struct {
	Svc *service.CareService
}

func (h *CareHTTP) GetServices(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.list_services")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListServices(ctx, offset, limit)
	if err != nil {
		return httpError(l, "list_services", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *CareHTTP) GetService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.get_service")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_service_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	svc, err := h.Svc.GetService(ctx, id)
	if err != nil {
		return httpError(l, "get_service", err)
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *CareHTTP) CreateService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.create_service")

	var req transport.CreateServiceRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_service_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	svc, err := h.Svc.CreateService(ctx, req)
	if err != nil {
		return httpError(l, "create_service", err)
	}

	l.Info("create_service_success", "service_id", svc.ID)
	return c.JSON(http.StatusCreated, svc)
}

func (h *CareHTTP) PatchService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.patch_service")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("patch_service_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.PatchServiceRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_service_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	svc, err := h.Svc.PatchService(ctx, req, id)
	if err != nil {
		return httpError(l, "patch_service", err)
	}
	return c.JSON(http.StatusOK, svc)
}

func (h *CareHTTP) DeleteService(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.delete_service")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_service_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeleteService(ctx, id); err != nil {
		return httpError(l, "delete_service", err)
	}

	l.Info("delete_service_success", "service_id", id)
	return c.NoContent(http.StatusNoContent)
}

func (h *CareHTTP) GetPackages(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.list_packages")

	page := util.ParseIntDefault(c.QueryParam("page"), 1)
	size := util.ParseIntDefault(c.QueryParam("size"), util.DefaultPageSize)
	offset, limit := util.Calculate(page, size)

	total, items, err := h.Svc.ListPackages(ctx, offset, limit)
	if err != nil {
		return httpError(l, "list_packages", err)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"data": items,
		"meta": transport.NewPageMeta(page, limit, offset, total),
	})
}

func (h *CareHTTP) GetPackage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.get_package")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("get_package_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	pkg, err := h.Svc.GetPackage(ctx, id)
	if err != nil {
		return httpError(l, "get_package", err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *CareHTTP) CreatePackage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.create_package")

	var req transport.CreateServicePackageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("create_package_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	pkg, err := h.Svc.CreatePackage(ctx, req)
	if err != nil {
		return httpError(l, "create_package", err)
	}

	l.Info("create_package_success", "package_id", pkg.ID)
	return c.JSON(http.StatusCreated, pkg)
}

func (h *CareHTTP) PatchPackage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.patch_package")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("patch_package_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	var req transport.PatchServicePackageRequest
	if err := c.Bind(&req); err != nil {
		l.Warn("patch_package_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	pkg, err := h.Svc.PatchPackage(ctx, req, id)
	if err != nil {
		return httpError(l, "patch_package", err)
	}
	return c.JSON(http.StatusOK, pkg)
}

func (h *CareHTTP) DeletePackage(c echo.Context) error {
	ctx := c.Request().Context()
	l := logging.FromContext(ctx).With("handler", "care.delete_package")

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		l.Warn("delete_package_failed", "status", 400, "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "id is not a uuid")
	}

	if err := h.Svc.DeletePackage(ctx, id); err != nil {
		return httpError(l, "delete_package", err)
	}
	return c.NoContent(http.StatusNoContent)
}
