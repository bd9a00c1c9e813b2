package routes

import (
	"dealership/cmd/internal/schedule"
	"dealership/cmd/internal/service"
	"dealership/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
)

type AppointmentService interface {
	AddServiceAppointment(req *service.ServiceAppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	AddSalesAppointment(req *service.SalesAppointmentRequest) (*service.AppointmentResponse, apierror.ErrorResponse)
	ListAppointments(kind string) ([]*service.AppointmentResponse, apierror.ErrorResponse)
	GetGrid(kind string) (*schedule.Grid, apierror.ErrorResponse)
}

type DefaultAppointmentRoute struct {
	AppointmentService AppointmentService
}

func NewAppointmentDefault(apptService AppointmentService) *DefaultAppointmentRoute {
	return &DefaultAppointmentRoute{AppointmentService: apptService}
}

func (a *DefaultAppointmentRoute) CreateServiceAppointment(c echo.Context) error {
	var req service.ServiceAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.AddServiceAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) CreateSalesAppointment(c echo.Context) error {
	var req service.SalesAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	appt, apierr := a.AppointmentService.AddSalesAppointment(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, appt)
}

func (a *DefaultAppointmentRoute) GetAppointments(c echo.Context) error {
	appts, apierr := a.AppointmentService.ListAppointments(c.Param("kind"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"appointments": appts}
	return c.JSON(http.StatusOK, &resp)
}

func (a *DefaultAppointmentRoute) GetGrid(c echo.Context) error {
	grid, apierr := a.AppointmentService.GetGrid(c.Param("kind"))
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, grid)
}
