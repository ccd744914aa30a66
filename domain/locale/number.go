package locale

import (
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	ThousandsSeparator = "."
	DecimalSeparator   = ","
)

var numberPattern = regexp.MustCompile(`^[1-9]\d{0,2}(\.\d{3})*(,\d+)?$`)

// Valid reports whether s conforms to the number grammar.
func Valid(s string) bool {
	return numberPattern.MatchString(s)
}

// Parse converts s to a float64. The second return value is false when s
// does not match the grammar in full, in which case the number is 0.
func Parse(s string) (float64, bool) {
	d, ok := ParseDecimal(s)
	if !ok {
		return 0, false
	}
	v, _ := d.Float64()
	return v, true
}

// ParseDecimal is Parse without the float conversion.
func ParseDecimal(s string) (decimal.Decimal, bool) {
	if !Valid(s) {
		return decimal.Zero, false
	}
	plain := strings.ReplaceAll(s, ThousandsSeparator, "")
	plain = strings.Replace(plain, DecimalSeparator, ".", 1)
	d, err := decimal.NewFromString(plain)
	if err != nil {
		// unreachable for strings accepted by numberPattern
		return decimal.Zero, false
	}
	return d, true
}
