package main

import (
	"dealership/cmd/internal/config"
	"dealership/cmd/internal/domain/sqlite/repository"
	"dealership/cmd/internal/inventory"
	"dealership/cmd/internal/metrics"
	"dealership/cmd/internal/routes"
	"dealership/cmd/internal/schedule"
	"dealership/cmd/internal/service"
	"dealership/cmd/internal/utils/apierror"
	"dealership/cmd/internal/utils/validators"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
	"net/http"
)

// newServer wires repositories, services and routes onto a fresh echo instance.
// A nil picker assigns salesmen at random; a nil m disables metrics.
func newServer(cfg *config.Config, db *gorm.DB, m *metrics.Metrics, picker schedule.Picker) (*echo.Echo, error) {
	week, err := cfg.Week()
	if err != nil {
		return nil, err
	}

	validate := validator.New()
	if err := validators.Register(validate, week); err != nil {
		return nil, err
	}

	// Getting repositories
	apptRepo := repository.NewAppointmentRepository(db)
	invRepo := repository.NewInventoryRepository(db)

	// Getting services
	apptService := service.NewAppointmentService(apptRepo, validate, week, cfg.Dealership.Salesmen, picker, m)
	invService := service.NewInventoryService(invRepo, validate, inventory.NewView(), m)
	finService := service.NewFinancingService(invRepo, cfg.Dealership.DefaultAPR, m)
	catService := service.NewCatalogService(week, cfg.Dealership.Salesmen, cfg.Dealership.DefaultAPR)

	// Getting routes
	apptRoutes := routes.NewAppointmentDefault(apptService)
	invRoutes := routes.NewInventoryDefault(invService)
	finRoutes := routes.NewFinancingDefault(finService)
	catRoutes := routes.NewCatalogDefault(catService)

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{AllowOrigins: []string{cfg.Server.CORSOrigin}}))
	if cfg.Server.RateLimit > 0 {
		e.Use(middleware.RateLimiterWithConfig(middleware.RateLimiterConfig{
			Store: middleware.NewRateLimiterMemoryStore(rate.Limit(cfg.Server.RateLimit)),
			DenyHandler: func(c echo.Context, identifier string, err error) error {
				apierr := apierror.NewSimple(http.StatusTooManyRequests, "Too many requests")
				return c.JSON(apierr.Code(), apierr)
			},
		}))
	}
	if m != nil {
		e.Use(m.Middleware())
		e.GET(cfg.Metrics.Path, echo.WrapHandler(m.Handler()))
	}

	// Appointments
	e.POST("/api/appointments/service", apptRoutes.CreateServiceAppointment)
	e.POST("/api/appointments/sales", apptRoutes.CreateSalesAppointment)
	e.GET("/api/appointments/:kind", apptRoutes.GetAppointments)
	e.GET("/api/appointments/:kind/grid", apptRoutes.GetGrid)

	// Inventory
	e.POST("/api/inventory", invRoutes.CreateItem)
	e.GET("/api/inventory", invRoutes.GetInventory)
	e.GET("/api/inventory/vins", invRoutes.GetVINs)
	e.POST("/api/inventory/search", invRoutes.RunSearch)
	e.GET("/api/inventory/search", invRoutes.GetSearch)
	e.DELETE("/api/inventory/search", invRoutes.ResetSearch)

	// Financing
	e.POST("/api/inventory/:vin/financing", finRoutes.CreateCalculation)
	e.GET("/api/inventory/:vin/financing", finRoutes.GetHistory)
	e.GET("/api/financing", finRoutes.GetFinanced)

	e.GET("/api/catalog", catRoutes.GetCatalog)
	e.GET("/api/health", catRoutes.Health)

	return e, nil
}
