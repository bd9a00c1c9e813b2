package service

import (
	"dealership/cmd/internal/domain"
	"dealership/cmd/internal/schedule"
)

// CatalogResponse is every fixed choice the forms offer, plus their defaults.
type CatalogResponse struct {
	Week          WeekResponse `json:"week"`
	Types         []string     `json:"types"`
	Makes         []string     `json:"makes"`
	Salesmen      []string     `json:"salesmen"`
	MonthOptions  []int        `json:"month_options"`
	DefaultType   string       `json:"default_type"`
	DefaultMake   string       `json:"default_make"`
	DefaultMonths int          `json:"default_months"`
	DefaultAPR    float64      `json:"default_apr"`
}

type WeekResponse struct {
	Start string         `json:"start"`
	End   string         `json:"end"`
	Days  []schedule.Day `json:"days"`
	Hours []string       `json:"hours"`
}

type DefaultCatalogService struct {
	Week       schedule.Week
	Salesmen   []string
	DefaultAPR float64
}

func NewCatalogService(week schedule.Week, salesmen []string, defaultAPR float64) *DefaultCatalogService {
	return &DefaultCatalogService{Week: week, Salesmen: salesmen, DefaultAPR: defaultAPR}
}

func (c *DefaultCatalogService) GetCatalog() *CatalogResponse {
	types := make([]string, len(domain.VehicleTypes))
	for i, t := range domain.VehicleTypes {
		types[i] = string(t)
	}

	return &CatalogResponse{
		Week: WeekResponse{
			Start: c.Week.Start.Format(schedule.DateLayout),
			End:   c.Week.End().Format(schedule.DateLayout),
			Days:  c.Week.Days(),
			Hours: c.Week.Hours(),
		},
		Types:         types,
		Makes:         append([]string(nil), domain.SupportedMakes...),
		Salesmen:      append([]string(nil), c.Salesmen...),
		MonthOptions:  domain.FinancingMonthOptions(),
		DefaultType:   types[0],
		DefaultMake:   domain.SupportedMakes[0],
		DefaultMonths: domain.MinFinancingMonths,
		DefaultAPR:    c.DefaultAPR,
	}
}
