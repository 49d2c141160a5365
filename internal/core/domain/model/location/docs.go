// Package location provides domain entities for the processing locations an
// order travels through on the shopfloor.
//
// The package includes:
//   - Location: The aggregate root carrying the routing key and the flags
//     steering queue behavior (primary, skip auto queue, count hints)
//   - Sequence: A value object imposing the routing order over a set of
//     locations and answering which location comes next
//
// Key business rules:
//   - Routing keys are unique across locations; their relative order defines
//     the production flow
//   - The auto queue rule applies on primary locations unless suppressed
//   - Locations are immutable for scheduling once created
package location
