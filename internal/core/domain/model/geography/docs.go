// Package geography holds the static delivery-area reference table:
// provinces, their districts, and the postal code of each district.
//
// The catalog is pure data with lookup functions and no mutable state.
// Invariants:
//   - every district has exactly one postal code
//   - district names are unique within their province
//   - the catalog is immutable after package initialization
package geography
