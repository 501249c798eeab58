// Package pricing holds the static package-size price table and the total
// amount derivation used by the order form and the submission pipeline.
package pricing

import (
	"pickleshop/internal/pkg/errs"
)

// Package sizes offered by the shop.
const (
	Size300g = "300 g"
	Size500g = "500 g"
	Size1kg  = "1 kg"
)

// priceTable maps package size to the unit price per bottle in LKR.
var priceTable = map[string]int{
	Size300g: 650,
	Size500g: 850,
	Size1kg:  1450,
}

// Sizes returns the known package sizes in menu order.
func Sizes() []string {
	return []string{Size300g, Size500g, Size1kg}
}

// UnitPrice returns the price per bottle for a package size.
func UnitPrice(size string) (int, error) {
	price, ok := priceTable[size]
	if !ok {
		return 0, errs.NewObjectNotFoundError("packageSize", size)
	}
	return price, nil
}

// Total derives the order total: unit price times bottle count when the size
// is known and the count is at least one, zero otherwise. The result is never
// negative and, for a positive count, always an integer multiple of a valid
// unit price.
func Total(size string, bottles int) int {
	price, ok := priceTable[size]
	if !ok || bottles < 1 {
		return 0
	}
	return price * bottles
}
