package service

import (
	"dealership/cmd/internal/domain"
	"dealership/cmd/internal/domain/entity"
	"dealership/cmd/internal/financing"
	"dealership/cmd/internal/inventory"
	"dealership/cmd/internal/metrics"
	"dealership/cmd/internal/utils"
	"dealership/cmd/internal/utils/apierror"
	"github.com/labstack/gommon/log"
	"slices"
	"strconv"
	"strings"
)

// FinancingRequest carries the financing form as typed. Empty months and APR
// fall back to the form defaults; empty amounts are not numbers and are rejected.
type FinancingRequest struct {
	LowestPrice string `json:"lowest_price"`
	MoneyDown   string `json:"money_down"`
	Months      string `json:"months"`
	APR         string `json:"apr"`
}

type FinancingResponse struct {
	VIN              string                  `json:"vin"`
	Result           financing.PaymentResult `json:"result"`
	Option           string                  `json:"option"`
	FinancingOptions []string                `json:"financing_options"`
}

type FinancingSummary struct {
	VIN              string   `json:"vin"`
	Title            string   `json:"title"`
	FinancingOptions []string `json:"financing_options"`
	Text             string   `json:"text"`
}

type DefaultFinancingService struct {
	InventoryRepo InventoryRepository
	DefaultAPR    float64
	Metrics       *metrics.Metrics
}

func NewFinancingService(invRepo InventoryRepository, defaultAPR float64, m *metrics.Metrics) *DefaultFinancingService {
	return &DefaultFinancingService{InventoryRepo: invRepo, DefaultAPR: defaultAPR, Metrics: m}
}

// SubmitCalculation computes a payment and appends it to the first item with vin.
// Nothing is stored unless the inputs are valid and the vehicle exists.
func (f *DefaultFinancingService) SubmitCalculation(vin string, req *FinancingRequest) (*FinancingResponse, apierror.ErrorResponse) {
	const command = "submit_financing"

	vin = strings.TrimSpace(vin)
	if vin == "" {
		return nil, reject(f.Metrics, command, apierror.NewMissingParamError("vin"))
	}

	utils.Sanitize(req)
	if req.Months == "" {
		req.Months = strconv.Itoa(domain.MinFinancingMonths)
	}
	if req.APR == "" {
		req.APR = strconv.FormatFloat(f.DefaultAPR, 'f', -1, 64)
	}

	in, err := financing.ParseInputs(req.LowestPrice, req.MoneyDown, req.Months, req.APR)
	if err != nil {
		return nil, reject(f.Metrics, command, apierror.FromDomainError(err))
	}
	if !slices.Contains(domain.FinancingMonthOptions(), in.Months) {
		err := domain.NewValidationError("months", req.Months, domain.ErrInvalidChoice)
		return nil, reject(f.Metrics, command, apierror.FromDomainError(err))
	}

	result, err := financing.CalculateInputs(in)
	if err != nil {
		return nil, reject(f.Metrics, command, apierror.FromDomainError(err))
	}

	item, apierr := f.findItem(vin)
	if apierr != nil {
		return nil, reject(f.Metrics, command, apierr)
	}

	option := &entity.FinancingOption{Description: result.String(), CreatedAt: utils.NowUTC()}
	if err := f.InventoryRepo.AppendFinancingOption(item, option); err != nil {
		log.Errorf("failed to append financing option to %s: %v", vin, err)
		return nil, apierror.InternalServerError
	}

	f.Metrics.FinancingSaved()
	return &FinancingResponse{
		VIN:              item.VIN,
		Result:           result,
		Option:           option.Description,
		FinancingOptions: item.OptionDescriptions(),
	}, nil
}

// GetHistory returns the options saved on the first item with vin, oldest first.
func (f *DefaultFinancingService) GetHistory(vin string) ([]string, apierror.ErrorResponse) {
	item, apierr := f.findItem(strings.TrimSpace(vin))
	if apierr != nil {
		return nil, apierr
	}
	return item.OptionDescriptions(), nil
}

// ListFinanced is the manager's list: every item with at least one option, in store order.
func (f *DefaultFinancingService) ListFinanced() ([]*FinancingSummary, apierror.ErrorResponse) {
	items, err := f.InventoryRepo.FindWithFinancing()
	if err != nil {
		log.Errorf("failed to find financed inventory: %v", err)
		return nil, apierror.InternalServerError
	}

	summaries := make([]*FinancingSummary, len(items))
	for i, item := range items {
		options := item.OptionDescriptions()
		summaries[i] = &FinancingSummary{
			VIN:              item.VIN,
			Title:            inventory.CardFor(item).Title,
			FinancingOptions: options,
			Text:             strings.Join(options, "\n"),
		}
	}
	return summaries, nil
}

func (f *DefaultFinancingService) findItem(vin string) (*entity.InventoryItem, apierror.ErrorResponse) {
	if vin == "" {
		return nil, apierror.NewMissingParamError("vin")
	}

	item, err := f.InventoryRepo.FindFirstByVIN(vin)
	if err != nil {
		log.Errorf("failed to fetch inventory item %s: %v", vin, err)
		return nil, apierror.InternalServerError
	}
	if item == nil {
		return nil, apierror.FromDomainError(domain.NewValidationError("vin", vin, domain.ErrVehicleNotFound))
	}
	return item, nil
}
