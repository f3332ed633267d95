// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - RowVersion: the optimistic-concurrency token carried by every mutable
//     entity, opaque base64 outwardly and a monotonic counter inwardly
//   - Actor and Role: the authenticated identity attempting an operation,
//     whose role and party membership gate which transitions are legal
//
// All value objects are immutable, validated at construction, and guarded
// against zero-value instantiation.
package kernel
