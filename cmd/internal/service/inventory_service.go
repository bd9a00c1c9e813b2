package service

import (
	"dealership/cmd/internal/domain"
	"dealership/cmd/internal/domain/entity"
	"dealership/cmd/internal/inventory"
	"dealership/cmd/internal/metrics"
	"dealership/cmd/internal/utils"
	"dealership/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

type InventoryRepository interface {
	Save(item *entity.InventoryItem) error
	FindAll() ([]*entity.InventoryItem, error)
	FindFirstByVIN(vin string) (*entity.InventoryItem, error)
	FindWithFinancing() ([]*entity.InventoryItem, error)
	ListVINs() ([]string, error)
	AppendFinancingOption(item *entity.InventoryItem, option *entity.FinancingOption) error
}

// InventoryRequest carries the add-inventory form. Year and price are free text.
type InventoryRequest struct {
	Type  string `json:"type" validate:"required,vehicletype"`
	Make  string `json:"make" validate:"required,vehiclemake"`
	Model string `json:"model" validate:"required"`
	Year  string `json:"year" validate:"required"`
	VIN   string `json:"vin" validate:"required"`
	Price string `json:"price" validate:"required"`
}

type SearchRequest struct {
	Make  string `json:"make" query:"make"`
	Model string `json:"model" query:"model"`
	Type  string `json:"type" query:"type"`
	Year  string `json:"year" query:"year"`
}

type ItemResponse struct {
	ID               int            `json:"id"`
	Type             string         `json:"type"`
	Make             string         `json:"make"`
	Model            string         `json:"model"`
	Year             string         `json:"year"`
	VIN              string         `json:"vin"`
	Price            string         `json:"price"`
	FinancingOptions []string       `json:"financing_options"`
	Card             inventory.Card `json:"card"`
	Text             string         `json:"text"`
	CreatedAt        string         `json:"created_at"`
}

type ListingResponse struct {
	Filter   inventory.Filter `json:"filter"`
	Filtered bool             `json:"filtered"`
	Items    []*ItemResponse  `json:"items"`
}

type DefaultInventoryService struct {
	InventoryRepo InventoryRepository
	Validate      *validator.Validate
	View          *inventory.View
	Metrics       *metrics.Metrics
}

func NewInventoryService(invRepo InventoryRepository, validate *validator.Validate, view *inventory.View, m *metrics.Metrics) *DefaultInventoryService {
	if view == nil {
		view = inventory.NewView()
	}
	return &DefaultInventoryService{InventoryRepo: invRepo, Validate: validate, View: view, Metrics: m}
}

func (s *DefaultInventoryService) AddItem(req *InventoryRequest) (*ItemResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	if valerr := s.Validate.Struct(req); valerr != nil {
		return nil, reject(s.Metrics, "add_inventory", apierror.FromValidationError(valerr))
	}

	vehicleType, _ := domain.ParseVehicleType(req.Type)
	canonicalMake, _ := domain.CanonicalMake(req.Make)

	item := &entity.InventoryItem{
		Type:             string(vehicleType),
		Make:             canonicalMake,
		Model:            req.Model,
		Year:             req.Year,
		VIN:              req.VIN,
		Price:            req.Price,
		CreatedAt:        utils.NowUTC(),
		FinancingOptions: []entity.FinancingOption{},
	}
	if err := s.InventoryRepo.Save(item); err != nil {
		log.Errorf("failed to save inventory item %s: %v", req.VIN, err)
		return nil, apierror.InternalServerError
	}

	s.Metrics.ItemAdded()
	return toItemResponse(item), nil
}

// ListInventory returns the items passing filter, or every item when filter is nil.
// The shared view is left untouched.
func (s *DefaultInventoryService) ListInventory(filter *inventory.Filter) (*ListingResponse, apierror.ErrorResponse) {
	f := inventory.DefaultFilter()
	if filter != nil {
		f = filter.Normalized()
	}
	return s.listing(f)
}

// RunSearch makes req the view's selection and returns the matching items.
func (s *DefaultInventoryService) RunSearch(req *SearchRequest) (*ListingResponse, apierror.ErrorResponse) {
	utils.Sanitize(req)
	f := s.View.Apply(inventory.Filter{Make: req.Make, Model: req.Model, Type: req.Type, Year: req.Year})
	return s.listing(f)
}

// CurrentListing returns the items passing the view's selection.
func (s *DefaultInventoryService) CurrentListing() (*ListingResponse, apierror.ErrorResponse) {
	return s.listing(s.View.Current())
}

// ResetSearch clears the view's selection and returns the full listing.
func (s *DefaultInventoryService) ResetSearch() (*ListingResponse, apierror.ErrorResponse) {
	return s.listing(s.View.Reset())
}

// ListVINs feeds the VIN choice of the financing form, in store order.
func (s *DefaultInventoryService) ListVINs() ([]string, apierror.ErrorResponse) {
	vins, err := s.InventoryRepo.ListVINs()
	if err != nil {
		log.Errorf("failed to list inventory VINs: %v", err)
		return nil, apierror.InternalServerError
	}
	if vins == nil {
		vins = []string{}
	}
	return vins, nil
}

func (s *DefaultInventoryService) listing(f inventory.Filter) (*ListingResponse, apierror.ErrorResponse) {
	items, err := s.InventoryRepo.FindAll()
	if err != nil {
		log.Errorf("failed to find inventory: %v", err)
		return nil, apierror.InternalServerError
	}

	matched := inventory.Search(items, f)
	response := &ListingResponse{Filter: f, Filtered: !f.IsDefault(), Items: make([]*ItemResponse, len(matched))}
	for i, item := range matched {
		response.Items[i] = toItemResponse(item)
	}
	return response, nil
}

func toItemResponse(item *entity.InventoryItem) *ItemResponse {
	card := inventory.CardFor(item)
	return &ItemResponse{
		ID:               item.ID,
		Type:             item.Type,
		Make:             item.Make,
		Model:            item.Model,
		Year:             item.Year,
		VIN:              item.VIN,
		Price:            item.Price,
		FinancingOptions: item.OptionDescriptions(),
		Card:             card,
		Text:             card.Text(),
		CreatedAt:        utils.FormatEpoch(item.CreatedAt),
	}
}
