// Package sale provides domain entities and business logic for sale and
// delivery-route management in the breakfast-delivery system. It implements
// the Sale aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Sale: The aggregate root that manages a delivery event, its items, and its delivery route
//   - Item: A (customer, product, quantity) line with prices captured at sale time
//   - DeliveryStep: A single customer's stop within the sale's delivery route
//   - Status: A state machine enforcing the draft -> closed -> in_progress -> completed lifecycle
//   - StepStatus: A state machine for per-step pending/completed/skipped transitions
//   - AcceptsOrders: The pure order-cutoff policy
//
// Key business rules:
//   - Sale status transitions follow a single transition table; only closed sales can be reopened to draft
//   - Items are replaceable only while the sale is draft
//   - Delivery steps are created in bulk exactly once, when delivery starts
//   - Step sequence orders form a contiguous 0..n-1 ordering at all times
//   - A sale completes once no step remains pending; completion is one-way
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package sale
