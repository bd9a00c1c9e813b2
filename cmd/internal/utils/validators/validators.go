package validators

import (
	"dealership/cmd/internal/domain"
	"dealership/cmd/internal/schedule"
	"github.com/go-playground/validator/v10"
	"reflect"
	"strings"
)

// Register installs the dealership tags on validate and makes field errors
// report JSON names. Hour slots are checked against week.
func Register(validate *validator.Validate, week schedule.Week) error {
	validate.RegisterTagNameFunc(jsonName)

	tags := map[string]validator.Func{
		"calendardate": CalendarDate,
		"hourslot":     HourSlot(week),
		"vehicletype":  VehicleType,
		"vehiclemake":  VehicleMake,
	}
	for tag, fn := range tags {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			return err
		}
	}
	return nil
}

// CalendarDate accepts YYYY-MM-DD and the MM/DD/YY(YY) picker formats.
func CalendarDate(fl validator.FieldLevel) bool {
	_, err := schedule.ParseDate(fl.Field().String())
	return err == nil
}

// HourSlot accepts only the slot labels of week, e.g. "08:00".
func HourSlot(week schedule.Week) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return week.HasHour(fl.Field().String())
	}
}

func VehicleType(fl validator.FieldLevel) bool {
	_, ok := domain.ParseVehicleType(fl.Field().String())
	return ok
}

func VehicleMake(fl validator.FieldLevel) bool {
	_, ok := domain.CanonicalMake(fl.Field().String())
	return ok
}

func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}
	if name == "" {
		return field.Name
	}
	return name
}
