package financing

import (
	"dealership/cmd/internal/domain"
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"math"
	"testing"
)

func TestCalculate_ZeroAPR(t *testing.T) {
	res, err := Calculate(20000, 2000, 60, 0)
	require.NoError(t, err)

	assert.Equal(t, 300.0, res.Payment)
	assert.Equal(t, 60, res.Months)
	assert.Equal(t, 18000.0, res.Principal)
	assert.InDelta(t, 0, res.TotalInterest, 1e-9)
	assert.Equal(t, "$300.00/month for 60 months at 0.0% APR", res.String())
}

func TestCalculate_Amortized(t *testing.T) {
	res, err := Calculate(20000, 2000, 60, 3.5)
	require.NoError(t, err)

	r := 3.5 / 100 / 12
	want := 18000 * r / (1 - math.Pow(1+r, -60))
	assert.InDelta(t, want, res.Payment, 1e-9)
	assert.InDelta(t, 327.4514, res.Payment, 1e-4)
	assert.InDelta(t, 19647.08, res.TotalPayment, 0.01)
	assert.InDelta(t, 1647.08, res.TotalInterest, 0.01)
	assert.Equal(t, "$327.45/month for 60 months at 3.5% APR", res.String())
}

func TestCalculate_Cases(t *testing.T) {
	cases := []struct {
		name   string
		price  float64
		down   float64
		months int
		apr    float64
		want   string
	}{
		{"five percent three years", 19000, 1000, 36, 5, "$539.48/month for 36 months at 5.0% APR"},
		{"six years", 30000, 5000, 72, 4.9, "$401.46/month for 72 months at 4.9% APR"},
		{"no money down", 12000, 0, 144, 0, "$83.33/month for 144 months at 0.0% APR"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := Calculate(tc.price, tc.down, tc.months, tc.apr)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.String())
		})
	}
}

func TestCalculate_HalfCentRoundsLikePrintf(t *testing.T) {
	res, err := Calculate(36.18, 0, 36, 0)
	require.NoError(t, err)
	assert.Equal(t, "$1.00/month for 36 months at 0.0% APR", res.String())

	res, err = Calculate(0.125, 0, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, "$0.12/month for 1 months at 0.0% APR", res.String())
}

func TestCalculate_NonPositivePrincipal(t *testing.T) {
	_, err := Calculate(1000, 1000, 36, 5)
	assert.True(t, errors.Is(err, domain.ErrNonPositivePrincipal))

	_, err = Calculate(1000, 1500, 36, 5)
	assert.True(t, errors.Is(err, domain.ErrNonPositivePrincipal))
}

func TestCalculate_InvalidNumbers(t *testing.T) {
	_, err := Calculate(20000, 2000, 0, 3.5)
	assert.True(t, errors.Is(err, domain.ErrInvalidNumericInput))

	_, err = Calculate(20000, 2000, -12, 3.5)
	assert.True(t, errors.Is(err, domain.ErrInvalidNumericInput))

	_, err = Calculate(math.NaN(), 2000, 60, 3.5)
	assert.True(t, errors.Is(err, domain.ErrInvalidNumericInput))

	_, err = Calculate(20000, 2000, 60, math.Inf(1))
	assert.True(t, errors.Is(err, domain.ErrInvalidNumericInput))
}

func TestParseInputs(t *testing.T) {
	in, err := ParseInputs(" 20000 ", "2000.50", "60", "3.5")
	require.NoError(t, err)
	assert.Equal(t, Inputs{LowestPrice: 20000, MoneyDown: 2000.5, Months: 60, APRPercent: 3.5}, in)

	res, err := CalculateInputs(in)
	require.NoError(t, err)
	assert.Equal(t, 60, res.Months)
}

func TestParseInputs_Rejects(t *testing.T) {
	cases := []struct {
		name                     string
		price, down, months, apr string
		field                    string
	}{
		{"empty price", "", "0", "36", "3.5", "lowest_price"},
		{"word price", "twenty", "0", "36", "3.5", "lowest_price"},
		{"bad down", "20000", "1k", "36", "3.5", "money_down"},
		{"fractional months", "20000", "0", "36.5", "3.5", "months"},
		{"zero months", "20000", "0", "0", "3.5", "months"},
		{"nan apr", "20000", "0", "36", "NaN", "apr"},
		{"currency sign", "$1000", "0", "36", "3.5", "lowest_price"},
		{"thousands separator", "20000", "1,000", "36", "3.5", "money_down"},
		{"scattered commas", "1,2,3,4", "0", "36", "3.5", "lowest_price"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseInputs(tc.price, tc.down, tc.months, tc.apr)
			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrInvalidNumericInput))

			var verr *domain.ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestFormatAPR(t *testing.T) {
	assert.Equal(t, "3.5", FormatAPR(3.5))
	assert.Equal(t, "5.0", FormatAPR(5))
	assert.Equal(t, "0.0", FormatAPR(0))
	assert.Equal(t, "2.75", FormatAPR(2.75))
}
