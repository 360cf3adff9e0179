// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the breakfast delivery system. It implements
// workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: A domain service that derives the initial visiting order
//     for a sale's delivery route from its customers
//
// Domain services coordinate between aggregates, implementing business logic that
// spans multiple bounded contexts following Domain-Driven Design principles.
package services
