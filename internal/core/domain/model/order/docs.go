// Package order provides domain entities and business logic for the
// marketplace order lifecycle. It implements the Order aggregate root with a
// multi-party (buyer/seller) fulfillment state machine.
//
// The package includes:
//   - Order: the aggregate root managing identity, commercial data, and lifecycle
//   - Status: a state machine that enforces valid order status transitions
//   - PaymentKind: the settlement mode that steers the confirmation branch
//
// Key business rules:
//   - Orders are created at buyer checkout in PendingSellerConfirmation status
//   - Each transition requires the right actor: seller confirms/rejects/ships,
//     buyer submits proof and confirms delivery, either party may cancel pre-shipment
//   - Completed, RejectedBySeller, and Cancelled are terminal; orders are never deleted
//   - Every mutation advances the row version for optimistic concurrency control
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
