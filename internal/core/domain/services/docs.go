// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the borrowing system. It implements
// logic that doesn't naturally belong to a single aggregate root.
//
// The package includes:
//   - AccessPolicy: A domain service deciding which actors may view, change
//     and delete borrowing orders and manage the catalogue
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
