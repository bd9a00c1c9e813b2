package routes

import (
	"dealership/cmd/internal/inventory"
	"dealership/cmd/internal/service"
	"dealership/cmd/internal/utils/apierror"
	"github.com/labstack/echo/v4"
	"net/http"
)

type InventoryService interface {
	AddItem(req *service.InventoryRequest) (*service.ItemResponse, apierror.ErrorResponse)
	ListInventory(filter *inventory.Filter) (*service.ListingResponse, apierror.ErrorResponse)
	RunSearch(req *service.SearchRequest) (*service.ListingResponse, apierror.ErrorResponse)
	CurrentListing() (*service.ListingResponse, apierror.ErrorResponse)
	ResetSearch() (*service.ListingResponse, apierror.ErrorResponse)
	ListVINs() ([]string, apierror.ErrorResponse)
}

type DefaultInventoryRoute struct {
	InventoryService InventoryService
}

func NewInventoryDefault(invService InventoryService) *DefaultInventoryRoute {
	return &DefaultInventoryRoute{InventoryService: invService}
}

func (i *DefaultInventoryRoute) CreateItem(c echo.Context) error {
	var req service.InventoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	item, apierr := i.InventoryService.AddItem(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusCreated, item)
}

// GetInventory lists everything, or only what matches when any of
// make, model, type or year is given as a query parameter.
func (i *DefaultInventoryRoute) GetInventory(c echo.Context) error {
	var filter *inventory.Filter
	if hasFilterParams(c) {
		filter = &inventory.Filter{
			Make:  c.QueryParam("make"),
			Model: c.QueryParam("model"),
			Type:  c.QueryParam("type"),
			Year:  c.QueryParam("year"),
		}
	}

	listing, apierr := i.InventoryService.ListInventory(filter)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, listing)
}

func (i *DefaultInventoryRoute) RunSearch(c echo.Context) error {
	var req service.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(400, apierror.MalformedBodyError)
	}

	listing, apierr := i.InventoryService.RunSearch(&req)
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, listing)
}

func (i *DefaultInventoryRoute) GetSearch(c echo.Context) error {
	listing, apierr := i.InventoryService.CurrentListing()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, listing)
}

func (i *DefaultInventoryRoute) ResetSearch(c echo.Context) error {
	listing, apierr := i.InventoryService.ResetSearch()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}
	return c.JSON(http.StatusOK, listing)
}

func (i *DefaultInventoryRoute) GetVINs(c echo.Context) error {
	vins, apierr := i.InventoryService.ListVINs()
	if apierr != nil {
		return c.JSON(apierr.Code(), apierr)
	}

	resp := echo.Map{"vins": vins}
	return c.JSON(http.StatusOK, &resp)
}

func hasFilterParams(c echo.Context) bool {
	params := c.QueryParams()
	for _, key := range []string{"make", "model", "type", "year"} {
		if _, ok := params[key]; ok {
			return true
		}
	}
	return false
}
