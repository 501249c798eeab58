// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the storefront. It implements workflows
// that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - FormController: A domain service that owns the order draft, its location
//     cascade, delivery-address mirroring and derived total amount
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
