// Package services provides domain services that orchestrate business operations
// across multiple domain entities in the shopfloor system. It implements complex
// business workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - GlobalQueueRanker: Derives the global production queue over active orders
//   - LocationQueueRanker: Derives one location's work queue from the global
//     scheduling attributes
//   - AutoPromotion: Pulls consistently positioned orders into primary location
//     queues without operator action
//
// All three services are pure in-memory computations over aggregates; command
// handlers own transactions and persistence. Domain services coordinate between
// aggregates, implementing business logic that spans multiple bounded contexts
// following Domain-Driven Design principles.
package services
