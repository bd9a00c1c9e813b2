package routes

import (
	"dealership/cmd/internal/service"
	"github.com/labstack/echo/v4"
	"net/http"
)

type CatalogService interface {
	GetCatalog() *service.CatalogResponse
}

type DefaultCatalogRoute struct {
	CatalogService CatalogService
}

func NewCatalogDefault(catService CatalogService) *DefaultCatalogRoute {
	return &DefaultCatalogRoute{CatalogService: catService}
}

func (r *DefaultCatalogRoute) GetCatalog(c echo.Context) error {
	return c.JSON(http.StatusOK, r.CatalogService.GetCatalog())
}

func (r *DefaultCatalogRoute) Health(c echo.Context) error {
	resp := echo.Map{"status": "ok"}
	return c.JSON(http.StatusOK, &resp)
}
