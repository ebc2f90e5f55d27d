package models

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category classifies a product. The persisted value is the plain string.
type Category string

const (
	CategoryCoffee      Category = "Coffee"
	CategoryBundle      Category = "Bundle"
	CategoryAccessories Category = "Accessories"
	CategoryEquipment   Category = "Equipment"
	CategoryOther       Category = "Other"

	// CategoryAll is a filter sentinel only; products never carry it.
	CategoryAll Category = "All"
)

// Categories lists the assignable product categories in display order.
var Categories = []Category{
	CategoryCoffee,
	CategoryBundle,
	CategoryAccessories,
	CategoryEquipment,
	CategoryOther,
}

// ParseCategory maps a raw string to a known product category.
// The filter sentinel "All" is not accepted here.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

// Product is a single catalog item. Id is assigned at creation time and is
// the only immutable field. The catalog is persisted whole under the
// "products" key; slice order is display order.
type Product struct {
	Id          string          `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    Category        `json:"category"`
	Image       string          `json:"image,omitempty"`
}

// PriceString renders the price with exactly two decimal places,
// matching how the store displays money everywhere.
func (p Product) PriceString() string {
	return p.Price.StringFixed(2)
}

// ProductFields carries the mutable fields for create/update operations.
type ProductFields struct {
	Title       string
	Price       decimal.Decimal
	Description string
	Category    Category
	Image       string
}
