package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIsValidAmount(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		expected bool
	}{
		{name: "integer amount", value: "1000", expected: true},
		{name: "amount with cents", value: "1000.50", expected: true},
		{name: "amount with one decimal", value: "1000.5", expected: true},
		{name: "zero", value: "0", expected: true},
		{name: "zero with cents", value: "0.00", expected: true},
		{name: "dollar symbol prefix", value: "$1000.00", expected: true},
		{name: "empty string", value: "", expected: false},
		{name: "too many decimals", value: "1000.505", expected: false},
		{name: "double fraction", value: "1000.00.1231", expected: false},
		{name: "comma separator", value: "1000,00", expected: false},
		{name: "trailing dot", value: "1000.", expected: false},
		{name: "negative amount", value: "-1000.00", expected: false},
		{name: "thousands separators", value: "1,000.00", expected: false},
		{name: "symbol after the digits", value: "1000$", expected: false},
		{name: "not a number", value: "lots", expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, IsValidAmount(tt.value))
		})
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		value       string
		expected    string
		expectError bool
	}{
		{name: "plain amount", value: "1000.50", expected: "1000.50"},
		{name: "symbol prefix is stripped", value: "$1000.50", expected: "1000.50"},
		{name: "empty string is zero", value: "", expected: "0.00"},
		{name: "integer amount", value: "7", expected: "7.00"},
		{name: "garbage", value: "lots", expectError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Parse(tt.value)
			if tt.expectError {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
				require.Equal(t, tt.expected, Format(d))
			}
		})
	}
}

func TestParseOrZeroTreatsGarbageAsZero(t *testing.T) {
	require.True(t, ParseOrZero("not an amount").IsZero())
	require.Equal(t, "12.34", Format(ParseOrZero("$12.34")))
}

func TestInvoiceTotal(t *testing.T) {
	tests := []struct {
		name         string
		subtotal     string
		vatRate      float64
		discountRate float64
		expected     string
	}{
		{name: "no rates", subtotal: "1000.00", expected: "1000.00"},
		{name: "vat only", subtotal: "1000.00", vatRate: 19, expected: "1190.00"},
		{name: "discount only", subtotal: "1000.00", discountRate: 25, expected: "750.00"},
		{name: "both rates", subtotal: "1000.00", vatRate: 20, discountRate: 10, expected: "1100.00"},
		{name: "components are rounded to cents", subtotal: "33.33", vatRate: 7.7, discountRate: 1.1, expected: "35.53"},
		{name: "zero subtotal", subtotal: "0.00", vatRate: 19, discountRate: 10, expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total, err := InvoiceTotal(tt.subtotal, tt.vatRate, tt.discountRate)
			require.NoError(t, err)
			require.Equal(t, tt.expected, Format(total))
		})
	}
}

func TestInvoiceTotalRejectsMalformedSubtotal(t *testing.T) {
	_, err := InvoiceTotal("lots", 19, 0)
	require.Error(t, err)
}

func TestFormat(t *testing.T) {
	require.Equal(t, "0.00", Format(decimal.Zero))
	require.Equal(t, "2000.00", Format(decimal.NewFromInt(2000)))
	require.Equal(t, "12.30", Format(decimal.RequireFromString("12.3")))
}
