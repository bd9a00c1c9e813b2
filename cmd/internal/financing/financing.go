// Package financing computes fixed-rate loan payments for inventory vehicles.
package financing

import (
	"dealership/cmd/internal/domain"
	"fmt"
	"github.com/shopspring/decimal"
	"math"
	"strconv"
	"strings"
)

// Inputs are the parsed values of the financing form.
type Inputs struct {
	LowestPrice float64
	MoneyDown   float64
	Months      int
	APRPercent  float64
}

// PaymentResult is the outcome of one calculation.
type PaymentResult struct {
	Payment       float64 `json:"payment"`
	Months        int     `json:"months"`
	APRPercent    float64 `json:"apr_percent"`
	Principal     float64 `json:"principal"`
	TotalPayment  float64 `json:"total_payment"`
	TotalInterest float64 `json:"total_interest"`
}

// Calculate returns the monthly payment for financing lowestPrice-moneyDown
// over months at aprPercent. A zero rate splits the principal evenly.
func Calculate(lowestPrice, moneyDown float64, months int, aprPercent float64) (PaymentResult, error) {
	fields := []struct {
		name  string
		value float64
	}{{"lowest_price", lowestPrice}, {"money_down", moneyDown}, {"apr", aprPercent}}
	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return PaymentResult{}, domain.NewValidationError(f.name, formatFloat(f.value), domain.ErrInvalidNumericInput)
		}
	}
	if months <= 0 {
		return PaymentResult{}, domain.NewValidationError("months", strconv.Itoa(months), domain.ErrInvalidNumericInput)
	}

	principal := lowestPrice - moneyDown
	if principal <= 0 {
		return PaymentResult{}, domain.NewValidationError("money_down", formatFloat(moneyDown), domain.ErrNonPositivePrincipal)
	}

	monthlyRate := aprPercent / 100 / 12
	var payment float64
	if monthlyRate == 0 {
		payment = principal / float64(months)
	} else {
		payment = principal * monthlyRate / (1 - math.Pow(1+monthlyRate, -float64(months)))
	}
	if math.IsNaN(payment) || math.IsInf(payment, 0) {
		return PaymentResult{}, domain.NewValidationError("apr", formatFloat(aprPercent), domain.ErrInvalidNumericInput)
	}

	total := payment * float64(months)
	return PaymentResult{
		Payment:       payment,
		Months:        months,
		APRPercent:    aprPercent,
		Principal:     principal,
		TotalPayment:  total,
		TotalInterest: total - principal,
	}, nil
}

// CalculateInputs is Calculate over parsed form values.
func CalculateInputs(in Inputs) (PaymentResult, error) {
	return Calculate(in.LowestPrice, in.MoneyDown, in.Months, in.APRPercent)
}

// ParseInputs reads the raw text fields of the financing form. Surrounding
// space is ignored; currency signs and digit grouping are not numbers.
// Any field that is not a finite number yields ErrInvalidNumericInput.
func ParseInputs(lowestPrice, moneyDown, months, apr string) (Inputs, error) {
	lp, err := parseAmount("lowest_price", lowestPrice)
	if err != nil {
		return Inputs{}, err
	}
	md, err := parseAmount("money_down", moneyDown)
	if err != nil {
		return Inputs{}, err
	}
	m, err := strconv.Atoi(strings.TrimSpace(months))
	if err != nil || m <= 0 {
		return Inputs{}, domain.NewValidationError("months", months, domain.ErrInvalidNumericInput)
	}
	rate, err := parseAmount("apr", apr)
	if err != nil {
		return Inputs{}, err
	}
	return Inputs{LowestPrice: lp, MoneyDown: md, Months: m, APRPercent: rate}, nil
}

func parseAmount(field, raw string) (float64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return 0, domain.NewValidationError(field, raw, domain.ErrInvalidNumericInput)
	}
	return d.InexactFloat64(), nil
}

// String renders the result as stored in an item's financing options,
// e.g. "$327.45/month for 60 months at 3.5% APR".
func (r PaymentResult) String() string {
	return fmt.Sprintf("$%.2f/month for %d months at %s%% APR", r.Payment, r.Months, FormatAPR(r.APRPercent))
}

// FormatAPR always shows a fractional part: 3.5 -> "3.5", 5 -> "5.0".
func FormatAPR(apr float64) string {
	s := formatFloat(apr)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
