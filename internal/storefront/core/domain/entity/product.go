package entity

import "github.com/shopspring/decimal"

// Product is a display-ready catalog item. Every numeric field is parsed
// and normalized exactly once at the catalog adapter boundary; nothing
// downstream re-parses source data.
type Product struct {
	ID          string
	ItemID      int64 // backend item reference used for order submission
	Name        string
	Category    string
	Description string

	// Unit is the resolved unit-of-measure label. Unknown upstream codes
	// normalize to "unit" before the product is ever exposed.
	Unit string

	// Price is never negative. A missing or unparseable source price
	// normalizes to zero.
	Price decimal.Decimal

	// InStock is advisory display data only; the cart does not enforce it.
	InStock          int
	MinOrderQuantity int

	Image string
}

// ProductGroup is one level of the catalog hierarchy below a category.
type ProductGroup struct {
	ID          string
	Code        string
	Description string
	Products    []Product
}

// Category is the top level of the normalized catalog tree.
type Category struct {
	ID          string
	Code        string
	Description string
	Groups      []ProductGroup
}
