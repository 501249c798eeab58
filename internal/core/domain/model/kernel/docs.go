// Package kernel contains the shared value objects of the domain model:
// identifiers and small validated scalars used across aggregates.
//
// Every type here follows the same rules:
//   - the zero value is invalid and fails Validate()
//   - instances are created through constructor functions that enforce
//     the type's invariants
//   - values are immutable once constructed
//
// Types:
//   - UUID: aggregate identifier wrapping github.com/google/uuid
//   - PhoneNumber: permissive WhatsApp contact number
//   - BottleCount: per-order bottle quantity bounded to [1, 50]
//   - EmailAddress: normalized customer email
package kernel
