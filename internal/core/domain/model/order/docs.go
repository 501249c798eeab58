// Package order provides the order aggregate and its draft form.
//
// Draft is the mutable in-progress record owned by the form controller and
// persisted to the snapshot slot on every mutation. Order is the immutable
// aggregate produced by the submission pipeline once a draft passes
// validation: it carries the server-assigned identifier, the customer
// reference, the derived total amount and the creation timestamp.
//
// Key business rules:
//   - every required draft field must be present before an Order exists
//   - the postal code must match the catalog value for the selected
//     province and district
//   - the total is derived from the price table, never supplied by a caller
package order
