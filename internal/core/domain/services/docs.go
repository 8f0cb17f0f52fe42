// Package services provides domain services that work across aggregates of the
// order engine.
//
// The package includes:
//   - OrderPlacer: validates an order against its restaurant and the current
//     catalog state and confirms it
//   - StatisticsCalculator: aggregates order counts and spend over a set of orders
package services
