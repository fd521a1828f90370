package pgrepo

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// parseNumeric разбирает значение numeric, выбранное как `::text`. Так точность не теряется
// на стороне драйвера.
func parseNumeric(value string, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parse %s `%s`: %s", field, value, err.Error())
	}
	return d, nil
}
