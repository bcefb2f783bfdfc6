package catalog

import (
	"bytes"
	"strconv"

	"github.com/shopspring/decimal"
)

// The upstream serializes numeric fields inconsistently: sometimes JSON
// numbers, sometimes quoted strings, sometimes null. The flex types absorb
// that here, once, so the rest of the service only ever sees strict types.
// Absent or unparseable values coerce to zero rather than erroring — the
// contract treats them as "no data".

type flexInt int64

func (v *flexInt) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" {
		*v = 0
		return nil
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		*v = flexInt(n)
		return nil
	}
	// Some rows carry integer fields as "12.0".
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		*v = flexInt(int64(f))
		return nil
	}
	*v = 0
	return nil
}

type flexDecimal struct {
	decimal.Decimal
}

func (v *flexDecimal) UnmarshalJSON(b []byte) error {
	s := unquote(b)
	if s == "" {
		v.Decimal = decimal.Zero
		return nil
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		v.Decimal = decimal.Zero
		return nil
	}
	v.Decimal = d
	return nil
}

func unquote(b []byte) string {
	b = bytes.TrimSpace(b)
	if string(b) == "null" {
		return ""
	}
	if len(b) >= 2 && b[0] == '"' && b[len(b)-1] == '"' {
		b = b[1 : len(b)-1]
	}
	return string(bytes.TrimSpace(b))
}

// Wire shapes of the catalog fetch contract. Only the fields the storefront
// consumes are declared; the rest of the payload is ignored on decode.

type envelope struct {
	Success bool           `json:"success"`
	Data    []wireCategory `json:"data"`
}

type wireCategory struct {
	ID          flexInt     `json:"id"`
	Code        string      `json:"code"`
	Description string      `json:"description"`
	Groups      []wireGroup `json:"productgroup"`
	Images      []wireImage `json:"images"`
}

type wireGroup struct {
	ID          flexInt     `json:"id"`
	Code        string      `json:"code"`
	Description string      `json:"description"`
	Items       []wireItem  `json:"items"`
	Images      []wireImage `json:"images"`
}

type wireItem struct {
	ID            flexInt     `json:"id"`
	Description   string      `json:"description"`
	UnitOfMeasure flexInt     `json:"unit_of_measure"`
	WAC           flexDecimal `json:"wac"`
	Stock         flexInt     `json:"stock"`
	IsActive      flexInt     `json:"is_active"`
	Images        []wireImage `json:"images"`
}

type wireImage struct {
	Path string `json:"path"`
}
