package routes

import (
	"dealership/cmd/internal/service"
	"dealership/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
)

type FinancingService interface {
	SubmitCalculation(vin string, req *service.FinancingRequest) (*service.FinancingResponse, apierror.ErrorResponse)
	GetHistory(vin string) ([]string, apierror.ErrorResponse)
	ListFinanced() ([]*service.FinancingSummary, apierror.ErrorResponse)
}

type DefaultFinancingRoute struct {
	FinancingService FinancingService
}

func NewFinancingDefault(finService FinancingService) *DefaultFinancingRoute {
	return &DefaultFinancingRoute{FinancingService: finService}
}

func (f *DefaultFinancingRoute) CreateCalculation(c echo.Context) error {
	var req service.FinancingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	calc, apierr := f.FinancingService.SubmitCalculation(c.Param("vin"), &req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, calc)
}

func (f *DefaultFinancingRoute) GetHistory(c echo.Context) error {
	vin := c.Param("vin")
	history, apierr := f.FinancingService.GetHistory(vin)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"vin": vin, "financing_options": history}
	return c.JSON(http.StatusOK, &resp)
}

func (f *DefaultFinancingRoute) GetFinanced(c echo.Context) error {
	items, apierr := f.FinancingService.ListFinanced()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"items": items}
	return c.JSON(http.StatusOK, &resp)
}
