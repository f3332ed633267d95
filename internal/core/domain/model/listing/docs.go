// Package listing provides the Listing aggregate and its admin moderation
// sub-flow: a two-outcome machine moving Pending listings to Active (approve)
// or Rejected (reject with reason). Statuses are resolved at runtime from a
// domain-scoped status table, and mutations follow the same row-version
// concurrency contract as orders.
package listing
