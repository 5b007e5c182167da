package models

import (
	"fmt"
	"strings"
)

// Amount is a monetary value in minor units (pence, cents) of Currency.
type Amount struct {
	Value    int64
	Currency string
}

func NewAmount(value int64, currency string) Amount {
	return Amount{Value: value, Currency: currency}
}

// minorUnits lists currencies that do not use two decimal places.
var minorUnits = map[string]int{
	"JPY": 0,
	"KRW": 0,
	"ISK": 0,
	"BHD": 3,
	"KWD": 3,
	"JOD": 3,
}

// String renders the amount in major units, e.g. "-12.05 GBP".
func (a Amount) String() string {
	exp, ok := minorUnits[strings.ToUpper(a.Currency)]
	if !ok {
		exp = 2
	}

	sign := ""
	v := a.Value
	if v < 0 {
		sign = "-"
		v = -v
	}

	if exp == 0 {
		return strings.TrimSpace(fmt.Sprintf("%s%d %s", sign, v, a.Currency))
	}

	div := int64(1)
	for range exp {
		div *= 10
	}
	return strings.TrimSpace(fmt.Sprintf("%s%d.%0*d %s", sign, v/div, exp, v%div, a.Currency))
}
