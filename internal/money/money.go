// Package money contains the currency format rules and the decimal
// arithmetic used for wallet balances and invoice totals. All amounts are
// carried as decimal strings in the database and parsed into
// shopspring decimals for calculation, never into binary floats.
package money

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// SupportedCurrencies lists the ISO codes the marketplace settles in.
var SupportedCurrencies = []string{"USD"}

// SupportedCurrencySymbols lists the symbols an amount string may be
// prefixed with.
var SupportedCurrencySymbols = []string{"$"}

// MaxNumberOfDecimals is the maximum number of fractional digits an amount
// string may carry.
const MaxNumberOfDecimals = 2

var amountRegexp = regexp.MustCompile(fmt.Sprintf(`(?i)^([%s])?(\d)+(\.\d{1,%d})?$`,
	strings.Join(SupportedCurrencySymbols, ""), MaxNumberOfDecimals))

// IsValidAmount reports whether value is a well-formed amount string:
// an optional currency symbol, digits, and an optional fractional part of
// at most MaxNumberOfDecimals digits.
func IsValidAmount(value string) bool {
	return amountRegexp.MatchString(value)
}

// Parse converts an amount string into a decimal, accepting an optional
// leading currency symbol. The empty string parses as zero, matching the
// treatment of absent balances.
func Parse(value string) (decimal.Decimal, error) {
	if value == "" {
		return decimal.Zero, nil
	}

	trimmed := value
	for _, sym := range SupportedCurrencySymbols {
		trimmed = strings.TrimPrefix(trimmed, sym)
	}

	d, err := decimal.NewFromString(trimmed)
	if err != nil {
		return decimal.Zero, fmt.Errorf("invalid amount %q: %w", value, err)
	}

	return d, nil
}

// ParseOrZero converts an amount string into a decimal, treating malformed
// input as zero the way lenient currency parsers do. Callers that need to
// distinguish malformed input use Parse or IsValidAmount instead.
func ParseOrZero(value string) decimal.Decimal {
	d, err := Parse(value)
	if err != nil {
		return decimal.Zero
	}

	return d
}

// Format renders a decimal as a balance string with exactly
// MaxNumberOfDecimals fractional digits, e.g. "0.00" or "2000.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(MaxNumberOfDecimals)
}

// InvoiceTotal computes the payable amount of an invoice:
//
//	subtotal - subtotal*discountRate/100 + subtotal*vatRate/100
//
// The discount and vat components are each rounded to cents before being
// applied, as the billing frontend does.
func InvoiceTotal(subtotal string, vatRate float64, discountRate float64) (decimal.Decimal, error) {
	sub, err := Parse(subtotal)
	if err != nil {
		return decimal.Zero, err
	}

	hundred := decimal.NewFromInt(100)
	discount := sub.Mul(decimal.NewFromFloat(discountRate)).Div(hundred).Round(MaxNumberOfDecimals)
	vat := sub.Mul(decimal.NewFromFloat(vatRate)).Div(hundred).Round(MaxNumberOfDecimals)

	return sub.Sub(discount).Add(vat), nil
}
