// Package order implements the Order aggregate: a customer's cart while it is
// PENDING and the order lifecycle after placement.
//
// The package includes:
//   - Order: the aggregate root, owning its items and a derived total
//   - Item and Product: order lines with a price snapshot taken at add time
//   - Status: a closed enum with an explicit transition table
//
// Key business rules:
//   - the total always equals the sum of price × quantity over the items
//   - items belong to the order's restaurant and can change only while PENDING
//   - PENDING -> CONFIRMED -> PREPARING -> READY -> OUT_FOR_DELIVERY -> DELIVERED,
//     with CANCELLED reachable from PENDING, CONFIRMED and PREPARING
//
// Inventory is not touched here; the application layer decrements and restores
// stock in the same unit of work as the status change.
package order
