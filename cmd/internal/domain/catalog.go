package domain

import "strings"

// VehicleType is the lot a vehicle is sold from.
type VehicleType string

const (
	TypeNew  VehicleType = "New"
	TypeUsed VehicleType = "Used"
)

// FilterAll matches every value of a make or type filter.
const FilterAll = "All"

// VehicleTypes lists the types in the order forms offer them.
var VehicleTypes = []VehicleType{TypeNew, TypeUsed}

// SupportedMakes lists the makes the dealership stocks, in form order.
var SupportedMakes = []string{"Audi", "BMW", "Mercedes", "Lexus", "Acura"}

// DefaultSalesmen is the sales roster used when none is configured.
var DefaultSalesmen = []string{"Chris", "Anthony", "Tyler", "Zach"}

// Financing term bounds, in months.
const (
	MinFinancingMonths  = 36
	MaxFinancingMonths  = 144
	FinancingMonthsStep = 6
	DefaultAPRPercent   = 3.5
)

// FinancingMonthOptions returns 36, 42, ..., 144.
func FinancingMonthOptions() []int {
	opts := make([]int, 0, (MaxFinancingMonths-MinFinancingMonths)/FinancingMonthsStep+1)
	for m := MinFinancingMonths; m <= MaxFinancingMonths; m += FinancingMonthsStep {
		opts = append(opts, m)
	}
	return opts
}

// ParseVehicleType matches s against the known types ignoring case.
func ParseVehicleType(s string) (VehicleType, bool) {
	for _, t := range VehicleTypes {
		if strings.EqualFold(string(t), s) {
			return t, true
		}
	}
	return "", false
}

// CanonicalMake returns the catalog spelling of name, ignoring case.
func CanonicalMake(name string) (string, bool) {
	for _, m := range SupportedMakes {
		if strings.EqualFold(m, name) {
			return m, true
		}
	}
	return "", false
}
