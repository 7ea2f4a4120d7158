package tax_test

import (
	"testing"

	"github.com/invoclear/ubl/tax"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestSetCalculate(t *testing.T) {
	t.Run("single scheme", func(t *testing.T) {
		set := tax.Set{
			{Scheme: tax.SchemeVAT, Percent: dec("10")},
		}
		rates := set.Calculate(dec("100.00"))
		require.Len(t, rates, 1)
		assert.Equal(t, "100.00", rates[0].Base.StringFixed(2))
		assert.Equal(t, "10.00", rates[0].Amount.StringFixed(2))
		assert.Equal(t, tax.CategoryStandard, rates[0].Category)
	})

	t.Run("schemes do not compound", func(t *testing.T) {
		set := tax.Set{
			{Scheme: tax.SchemeVAT, Percent: dec("10")},
			{Scheme: tax.SchemeExcise, Percent: dec("5")},
		}
		rates := set.Calculate(dec("100.00"))
		require.Len(t, rates, 2)

		// Both schemes tax the original base, 10.00 and 5.00, not 5.25.
		assert.Equal(t, "100.00", rates[0].Base.StringFixed(2))
		assert.Equal(t, "10.00", rates[0].Amount.StringFixed(2))
		assert.Equal(t, "100.00", rates[1].Base.StringFixed(2))
		assert.Equal(t, "5.00", rates[1].Amount.StringFixed(2))

		assert.Equal(t, "15.00", tax.Sum(rates).StringFixed(2))
	})

	t.Run("zero rated", func(t *testing.T) {
		set := tax.Set{
			{Scheme: tax.SchemeVAT, Percent: decimal.Zero},
		}
		rates := set.Calculate(dec("250.00"))
		require.Len(t, rates, 1)
		assert.Equal(t, "0.00", rates[0].Amount.StringFixed(2))
		assert.Equal(t, tax.CategoryZero, rates[0].Category)
	})

	t.Run("empty set", func(t *testing.T) {
		assert.Nil(t, tax.Set{}.Calculate(dec("100.00")))
	})

	t.Run("rounding half away from zero", func(t *testing.T) {
		set := tax.Set{
			{Scheme: tax.SchemeVAT, Percent: dec("15")},
		}
		// 33.30 * 15% = 4.995, rounds up to 5.00
		rates := set.Calculate(dec("33.30"))
		assert.Equal(t, "5.00", rates[0].Amount.StringFixed(2))
	})
}

func TestCalculateTotal(t *testing.T) {
	t.Run("groups by scheme and rate", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
			{Base: dec("200.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
			{Base: dec("50.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("5")}}},
		}
		total := tax.CalculateTotal(lines, nil)
		require.Len(t, total.Rates, 2)

		assert.Equal(t, "300.00", total.Rates[0].Base.StringFixed(2))
		assert.Equal(t, "30.00", total.Rates[0].Amount.StringFixed(2))
		assert.Equal(t, "50.00", total.Rates[1].Base.StringFixed(2))
		assert.Equal(t, "2.50", total.Rates[1].Amount.StringFixed(2))
		assert.Equal(t, "32.50", total.Sum.StringFixed(2))
	})

	t.Run("stable first encounter order", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("10.00"), Taxes: tax.Set{{Scheme: tax.SchemeAccommodation, Percent: dec("3")}}},
			{Base: dec("10.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
			{Base: dec("10.00"), Taxes: tax.Set{{Scheme: tax.SchemeAccommodation, Percent: dec("3")}}},
		}
		total := tax.CalculateTotal(lines, nil)
		require.Len(t, total.Rates, 2)
		assert.Equal(t, tax.SchemeAccommodation, total.Rates[0].Scheme)
		assert.Equal(t, tax.SchemeVAT, total.Rates[1].Scheme)
	})

	t.Run("same scheme different rates stay separate", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
			{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("16")}}},
		}
		total := tax.CalculateTotal(lines, nil)
		require.Len(t, total.Rates, 2)
		assert.Equal(t, "10.00", total.Rates[0].Amount.StringFixed(2))
		assert.Equal(t, "16.00", total.Rates[1].Amount.StringFixed(2))
	})

	t.Run("taxable charge folds into VAT group", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
		}
		charges := []tax.ChargeInput{
			{Charge: true, Amount: dec("20.00"), Taxable: true, Percent: dec("10")},
		}
		total := tax.CalculateTotal(lines, charges)
		require.Len(t, total.Rates, 1)
		assert.Equal(t, "120.00", total.Rates[0].Base.StringFixed(2))
		assert.Equal(t, "12.00", total.Rates[0].Amount.StringFixed(2))
	})

	t.Run("taxable allowance reduces VAT group", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
		}
		charges := []tax.ChargeInput{
			{Charge: false, Amount: dec("20.00"), Taxable: true, Percent: dec("10")},
		}
		total := tax.CalculateTotal(lines, charges)
		require.Len(t, total.Rates, 1)
		assert.Equal(t, "80.00", total.Rates[0].Base.StringFixed(2))
		assert.Equal(t, "8.00", total.Rates[0].Amount.StringFixed(2))
	})

	t.Run("non-taxable entries ignored", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
		}
		charges := []tax.ChargeInput{
			{Charge: false, Amount: dec("20.00")},
		}
		total := tax.CalculateTotal(lines, charges)
		require.Len(t, total.Rates, 1)
		assert.Equal(t, "100.00", total.Rates[0].Base.StringFixed(2))
		assert.Equal(t, "10.00", total.Sum.StringFixed(2))
	})

	t.Run("taxable charge on new rate opens its own group", func(t *testing.T) {
		charges := []tax.ChargeInput{
			{Charge: true, Amount: dec("50.00"), Taxable: true, Percent: dec("16")},
		}
		total := tax.CalculateTotal(nil, charges)
		require.Len(t, total.Rates, 1)
		assert.Equal(t, tax.SchemeVAT, total.Rates[0].Scheme)
		assert.Equal(t, "8.00", total.Rates[0].Amount.StringFixed(2))
	})

	t.Run("sum matches subtotal sum", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("33.33"), Taxes: tax.Set{
				{Scheme: tax.SchemeVAT, Percent: dec("16")},
				{Scheme: tax.SchemePublicLighting, Percent: dec("1")},
			}},
			{Base: dec("66.67"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("16")}}},
		}
		total := tax.CalculateTotal(lines, nil)
		sum := decimal.Zero
		for _, rt := range total.Rates {
			sum = sum.Add(rt.Amount)
		}
		assert.True(t, total.Sum.Equal(sum))
	})

	t.Run("idempotent", func(t *testing.T) {
		lines := []tax.LineInput{
			{Base: dec("123.45"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("7.5")}}},
		}
		a := tax.CalculateTotal(lines, nil)
		b := tax.CalculateTotal(lines, nil)
		assert.Equal(t, a, b)
	})
}

func TestTotalRate(t *testing.T) {
	lines := []tax.LineInput{
		{Base: dec("100.00"), Taxes: tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}}},
	}
	total := tax.CalculateTotal(lines, nil)
	assert.NotNil(t, total.Rate(tax.SchemeVAT, dec("10")))
	assert.Nil(t, total.Rate(tax.SchemeVAT, dec("16")))
	assert.Nil(t, total.Rate(tax.SchemeExcise, dec("10")))
}

func TestComboValidate(t *testing.T) {
	c := &tax.Combo{Scheme: tax.SchemeVAT, Percent: dec("10")}
	assert.NoError(t, c.Validate())

	c = &tax.Combo{Scheme: "GST", Percent: dec("10")}
	assert.Error(t, c.Validate())

	set := tax.Set{{Scheme: tax.SchemeVAT, Percent: dec("10")}, {Scheme: "??"}}
	assert.Error(t, set.Validate())
}
