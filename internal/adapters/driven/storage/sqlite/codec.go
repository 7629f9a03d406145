package sqlite

import (
	"fmt"
	"regexp"
	"time"

	"github.com/shopspring/decimal"

	"github.com/custodia-labs/grocery-cli/internal/core/domain"
)

// dateLayout is the storage format for dates (yyyy-mm-dd).
const dateLayout = "2006-01-02"

// Representable years. Four digits are written for every stored year.
const (
	minYear = 0
	maxYear = 9999
)

// moneyPattern accepts plain decimal text: optional minus sign, digits and
// an optional fraction. No grouping, no exponent, '.' as separator.
var moneyPattern = regexp.MustCompile(`^-?[0-9]+(\.[0-9]+)?$`)

// FormatDate encodes a date as yyyy-mm-dd. The zero date, dates outside
// years 0..9999 and dates that do not exist on the calendar (such as
// February 30) fail with domain.ErrWrite, since ParseDate could not read
// them back.
func FormatDate(d domain.Date) (string, error) {
	if d.IsZero() {
		return "", fmt.Errorf("%w: date is not set", domain.ErrWrite)
	}
	if d.Year < minYear || d.Year > maxYear {
		return "", fmt.Errorf("%w: date %s: year outside %d..%d", domain.ErrWrite, d, minYear, maxYear)
	}
	if domain.NewDate(d.Year, d.Month, d.Day) != d {
		return "", fmt.Errorf("%w: date %s does not exist", domain.ErrWrite, d)
	}
	return d.String(), nil
}

// ParseDate decodes a yyyy-mm-dd date. Any other text, including other
// separators or missing zero padding, fails with domain.ErrDecode.
func ParseDate(s string) (domain.Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return domain.Date{}, fmt.Errorf("%w: date %q: %w", domain.ErrDecode, s, err)
	}
	d := domain.DateOf(t)
	if d.String() != s {
		return domain.Date{}, fmt.Errorf("%w: date %q is not in yyyy-mm-dd form", domain.ErrDecode, s)
	}
	return d, nil
}

// FormatMoney encodes an amount as decimal text with exactly two
// fractional digits, e.g. "1.50". Amounts with more precision fail with
// domain.ErrWrite instead of being rounded.
func FormatMoney(m decimal.Decimal) (string, error) {
	if !m.Equal(m.Truncate(2)) {
		return "", fmt.Errorf("%w: amount %s has more than two decimals", domain.ErrWrite, m)
	}
	return m.StringFixed(2), nil
}

// encodeProduct formats the text columns of a product.
func encodeProduct(p domain.Product) (shelfLife, price string, err error) {
	if shelfLife, err = FormatDate(p.ShelfLife); err != nil {
		return "", "", fmt.Errorf("product %q shelf life: %w", p.Name, err)
	}
	if price, err = FormatMoney(p.Price); err != nil {
		return "", "", fmt.Errorf("product %q price: %w", p.Name, err)
	}
	return shelfLife, price, nil
}

// ParseMoney decodes decimal text written by FormatMoney.
// Text that is not a plain decimal fails with domain.ErrDecode.
func ParseMoney(s string) (decimal.Decimal, error) {
	if !moneyPattern.MatchString(s) {
		return decimal.Zero, fmt.Errorf("%w: money %q is not a plain decimal", domain.ErrDecode, s)
	}
	m, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: money %q: %w", domain.ErrDecode, s, err)
	}
	return m, nil
}
