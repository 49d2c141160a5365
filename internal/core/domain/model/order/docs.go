// Package order provides domain entities and business logic for production order
// management in the shopfloor system. It implements the Order aggregate root that
// carries the attributes the queue managers schedule by.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, rush state,
//     global queue rank, and shipping state
//
// Key business rules:
//   - Orders must have a valid unique identifier and a positive total quantity
//   - The rush timestamp exists exactly when the rush flag is set
//   - Leaving the rush class discards the order's queue position
//   - A fully shipped order leaves the active scheduling set
//   - The finished flag is monotonic and never reverts
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
