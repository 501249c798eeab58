// Package errs provides standardized error types for the pickle shop
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// The package includes error types for common scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsOutOfRangeError: a value fell outside its numeric bounds
//   - ObjectNotFoundError: a lookup by identifier found nothing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct carrying the error details, including the offending
//     parameter name (which doubles as the form field for field-level
//     validation reporting)
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() returning the sentinel,
//     so errors.Is classification works across layers
package errs
