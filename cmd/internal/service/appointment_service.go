package service

import (
	"dealership/cmd/internal/domain/entity"
	"dealership/cmd/internal/metrics"
	"dealership/cmd/internal/schedule"
	"dealership/cmd/internal/utils"
	"dealership/cmd/internal/utils/apierror"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/gommon/log"
)

const (
	KindService = "service"
	KindSales   = "sales"
)

type AppointmentRepository interface {
	SaveService(appointment *entity.ServiceAppointment) error
	SaveSales(appointment *entity.SalesAppointment) error
	FindAllService() ([]*entity.ServiceAppointment, error)
	FindAllSales() ([]*entity.SalesAppointment, error)
	FindServiceBetween(first, last int64) ([]*entity.ServiceAppointment, error)
	FindSalesBetween(first, last int64) ([]*entity.SalesAppointment, error)
}

type ServiceAppointmentRequest struct {
	Customer string `json:"customer" validate:"required"`
	VIN      string `json:"vin" validate:"required"`
	Date     string `json:"date" validate:"required,calendardate"`
	Hour     string `json:"hour" validate:"required,hourslot"`
}

type SalesAppointmentRequest struct {
	Customer string `json:"customer" validate:"required"`
	Date     string `json:"date" validate:"required,calendardate"`
	Hour     string `json:"hour" validate:"required,hourslot"`
}

type AppointmentResponse struct {
	ID        int                `json:"id"`
	Kind      string             `json:"kind"`
	Customer  string             `json:"customer"`
	VIN       string             `json:"vin,omitempty"`
	Date      string             `json:"date"`
	Hour      string             `json:"hour"`
	Salesman  string             `json:"salesman,omitempty"`
	Placement schedule.Placement `json:"placement"`
	Label     string             `json:"label"`
	CreatedAt string             `json:"created_at"`
}

type DefaultAppointmentService struct {
	AppointmentRepo AppointmentRepository
	Validate        *validator.Validate
	Week            schedule.Week
	Salesmen        []string
	Picker          schedule.Picker
	Metrics         *metrics.Metrics
}

func NewAppointmentService(apptRepo AppointmentRepository, validate *validator.Validate, week schedule.Week, salesmen []string, picker schedule.Picker, m *metrics.Metrics) *DefaultAppointmentService {
	if picker == nil {
		picker = &schedule.RandomPicker{}
	}
	return &DefaultAppointmentService{
		AppointmentRepo: apptRepo,
		Validate:        validate,
		Week:            week,
		Salesmen:        salesmen,
		Picker:          picker,
		Metrics:         m,
	}
}

func (a *DefaultAppointmentService) AddServiceAppointment(req *ServiceAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	const command = "add_service_appointment"

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, reject(a.Metrics, command, apierror.FromValidationError(valerr))
	}

	date, placement, apierr := a.place(req.Date, req.Hour)
	if apierr != nil {
		return nil, reject(a.Metrics, command, apierr)
	}

	appt := &entity.ServiceAppointment{
		Customer:  req.Customer,
		VIN:       req.VIN,
		Date:      date,
		Hour:      req.Hour,
		CreatedAt: utils.NowUTC(),
	}
	if err := a.AppointmentRepo.SaveService(appt); err != nil {
		log.Errorf("failed to save service appointment for %s: %v", req.Customer, err)
		return nil, apierror.InternalServerError
	}

	a.Metrics.AppointmentBooked(KindService)
	return toServiceResponse(appt, placement), nil
}

func (a *DefaultAppointmentService) AddSalesAppointment(req *SalesAppointmentRequest) (*AppointmentResponse, apierror.ErrorResponse) {
	const command = "add_sales_appointment"

	utils.Sanitize(req)
	if valerr := a.Validate.Struct(req); valerr != nil {
		return nil, reject(a.Metrics, command, apierror.FromValidationError(valerr))
	}

	date, placement, apierr := a.place(req.Date, req.Hour)
	if apierr != nil {
		return nil, reject(a.Metrics, command, apierr)
	}

	salesman := a.Picker.Pick(a.Salesmen)
	if salesman == "" {
		log.Errorf("no salesman available, roster has %d names", len(a.Salesmen))
		return nil, apierror.InternalServerError
	}

	appt := &entity.SalesAppointment{
		Customer:  req.Customer,
		Date:      date,
		Hour:      req.Hour,
		Salesman:  salesman,
		CreatedAt: utils.NowUTC(),
	}
	if err := a.AppointmentRepo.SaveSales(appt); err != nil {
		log.Errorf("failed to save sales appointment for %s: %v", req.Customer, err)
		return nil, apierror.InternalServerError
	}

	a.Metrics.AppointmentBooked(KindSales)
	return toSalesResponse(appt, placement), nil
}

// ListAppointments returns every appointment of kind in booking order.
func (a *DefaultAppointmentService) ListAppointments(kind string) ([]*AppointmentResponse, apierror.ErrorResponse) {
	switch kind {
	case KindService:
		appts, err := a.AppointmentRepo.FindAllService()
		if err != nil {
			log.Errorf("failed to find service appointments: %v", err)
			return nil, apierror.InternalServerError
		}
		response := make([]*AppointmentResponse, len(appts))
		for i, appt := range appts {
			response[i] = toServiceResponse(appt, a.placementOf(appt.Date, appt.Hour))
		}
		return response, nil

	case KindSales:
		appts, err := a.AppointmentRepo.FindAllSales()
		if err != nil {
			log.Errorf("failed to find sales appointments: %v", err)
			return nil, apierror.InternalServerError
		}
		response := make([]*AppointmentResponse, len(appts))
		for i, appt := range appts {
			response[i] = toSalesResponse(appt, a.placementOf(appt.Date, appt.Hour))
		}
		return response, nil
	}
	return nil, apierror.NotFoundError
}

// GetGrid lays the week's appointments of kind out on the scheduling grid.
func (a *DefaultAppointmentService) GetGrid(kind string) (*schedule.Grid, apierror.ErrorResponse) {
	first := utils.DayToEpoch(a.Week.Start)
	last := utils.DayToEpoch(a.Week.End())

	var entries []schedule.Entry
	switch kind {
	case KindService:
		appts, err := a.AppointmentRepo.FindServiceBetween(first, last)
		if err != nil {
			log.Errorf("failed to fetch service appointments [%d - %d]: %v", first, last, err)
			return nil, apierror.InternalServerError
		}
		for _, appt := range appts {
			entries = append(entries, schedule.Entry{
				Placement: a.placementOf(appt.Date, appt.Hour),
				Label:     schedule.ServiceLabel(appt.Customer, appt.VIN, appt.Hour),
			})
		}

	case KindSales:
		appts, err := a.AppointmentRepo.FindSalesBetween(first, last)
		if err != nil {
			log.Errorf("failed to fetch sales appointments [%d - %d]: %v", first, last, err)
			return nil, apierror.InternalServerError
		}
		for _, appt := range appts {
			entries = append(entries, schedule.Entry{
				Placement: a.placementOf(appt.Date, appt.Hour),
				Label:     schedule.SalesLabel(appt.Customer, appt.Hour, appt.Salesman),
			})
		}

	default:
		return nil, apierror.NotFoundError
	}

	grid := a.Week.Grid(entries)
	return &grid, nil
}

// place resolves a validated date and hour to the stored day and grid slot.
func (a *DefaultAppointmentService) place(rawDate, hour string) (int64, schedule.Placement, apierror.ErrorResponse) {
	date, err := schedule.ParseDate(rawDate)
	if err != nil {
		return 0, schedule.Placement{}, apierror.FromDomainError(err)
	}
	placement, err := a.Week.Place(date, hour)
	if err != nil {
		return 0, schedule.Placement{}, apierror.FromDomainError(err)
	}
	return utils.DayToEpoch(date), placement, nil
}

// placementOf is the zero Placement for rows stored under a different week.
func (a *DefaultAppointmentService) placementOf(day int64, hour string) schedule.Placement {
	p, err := a.Week.Place(utils.EpochToDay(day), hour)
	if err != nil {
		return schedule.Placement{}
	}
	return p
}

func toServiceResponse(appt *entity.ServiceAppointment, p schedule.Placement) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        appt.ID,
		Kind:      KindService,
		Customer:  appt.Customer,
		VIN:       appt.VIN,
		Date:      utils.FormatDay(appt.Date),
		Hour:      appt.Hour,
		Placement: p,
		Label:     schedule.ServiceLabel(appt.Customer, appt.VIN, appt.Hour),
		CreatedAt: utils.FormatEpoch(appt.CreatedAt),
	}
}

func toSalesResponse(appt *entity.SalesAppointment, p schedule.Placement) *AppointmentResponse {
	return &AppointmentResponse{
		ID:        appt.ID,
		Kind:      KindSales,
		Customer:  appt.Customer,
		Date:      utils.FormatDay(appt.Date),
		Hour:      appt.Hour,
		Salesman:  appt.Salesman,
		Placement: p,
		Label:     schedule.SalesLabel(appt.Customer, appt.Hour, appt.Salesman),
		CreatedAt: utils.FormatEpoch(appt.CreatedAt),
	}
}
