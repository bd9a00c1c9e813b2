package repository

import (
	"dealership/cmd/internal/domain/entity"
	"errors"
	"gorm.io/gorm"
)

type DefaultAppointmentRepository struct {
	db *gorm.DB
}

func NewAppointmentRepository(db *gorm.DB) *DefaultAppointmentRepository {
	return &DefaultAppointmentRepository{db: db}
}

func (a *DefaultAppointmentRepository) SaveService(appointment *entity.ServiceAppointment) error {
	return a.db.Create(appointment).Error
}

func (a *DefaultAppointmentRepository) SaveSales(appointment *entity.SalesAppointment) error {
	return a.db.Create(appointment).Error
}

// FindAllService returns service appointments in booking order.
func (a *DefaultAppointmentRepository) FindAllService() ([]*entity.ServiceAppointment, error) {
	var appts []*entity.ServiceAppointment
	err := a.db.Order("id asc").Find(&appts).Error
	return appts, err
}

// FindAllSales returns sales appointments in booking order.
func (a *DefaultAppointmentRepository) FindAllSales() ([]*entity.SalesAppointment, error) {
	var appts []*entity.SalesAppointment
	err := a.db.Order("id asc").Find(&appts).Error
	return appts, err
}

// FindServiceBetween returns service appointments whose day lies in [first, last],
// both given as epoch millis of UTC midnight.
func (a *DefaultAppointmentRepository) FindServiceBetween(first, last int64) ([]*entity.ServiceAppointment, error) {
	if first > last {
		return nil, errors.New("first day must not be after last day")
	}

	var appts []*entity.ServiceAppointment
	err := a.db.
		Where("date >= ?", first).
		Where("date <= ?", last).
		Order("id asc").
		Find(&appts).Error
	return appts, err
}

// FindSalesBetween is FindServiceBetween for sales appointments.
func (a *DefaultAppointmentRepository) FindSalesBetween(first, last int64) ([]*entity.SalesAppointment, error) {
	if first > last {
		return nil, errors.New("first day must not be after last day")
	}

	var appts []*entity.SalesAppointment
	err := a.db.
		Where("date >= ?", first).
		Where("date <= ?", last).
		Order("id asc").
		Find(&appts).Error
	return appts, err
}
