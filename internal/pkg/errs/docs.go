// Package errs provides standardized error types for the bookmarket application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - VersionIsInvalidError: For when a row-version token cannot be parsed
//   - ForbiddenError: For when the actor may not perform an operation
//   - InvalidStateError: For when a transition is not legal from the current state
//   - ConcurrencyConflictError: For when a presented row-version is stale
//   - StatusNotFoundError: For when a status-table lookup fails (misconfiguration)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// The transition service returns one of these kinds rather than panicking for
// expected business conditions; only truly unexpected failures (storage
// unavailable) propagate as plain errors. The HTTP adapter maps each kind to a
// distinct response code so callers can tell "retry with fresh data" from
// "this action is no longer possible" from "you may not do this".
package errs
