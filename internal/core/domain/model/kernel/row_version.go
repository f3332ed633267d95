package kernel

import (
	"encoding/base64"
	"fmt"

	"bookmarket/internal/pkg/errs"
	"bookmarket/internal/pkg/guard"
)

// ErrRowVersionIsNotConstructed indicates that a RowVersion was not created through
// one of the constructor functions. This error is returned when validating a
// zero-value RowVersion.
var ErrRowVersionIsNotConstructed = errs.NewValueIsRequiredError(
	"RowVersion must be created via InitialRowVersion, RowVersionFromToken, or RowVersionFromCounter",
)

// maxTokenBytes bounds the decoded token so it fits a uint64 counter.
const maxTokenBytes = 8

// RowVersion is the optimistic-concurrency token carried by every mutable entity.
// Outwardly it is an opaque base64 string; inwardly it is a monotonically
// incrementing counter. Every mutating call must present the version it last
// read; a mismatch against the stored version signals a concurrency conflict.
//
// RowVersion is immutable: Next returns a new value rather than modifying the
// receiver. The zero value is invalid and must be constructed through
// InitialRowVersion, RowVersionFromToken, or RowVersionFromCounter.
//
// Example usage:
//
//	v := kernel.InitialRowVersion()
//	presented, err := kernel.RowVersionFromToken(req.RowVersion)
//	if err != nil {
//	    // malformed token: validation failure, not a conflict
//	}
//	if !presented.IsEqual(stored) {
//	    // stale read: concurrency conflict
//	}
type RowVersion struct {
	counter uint64
	guard   guard.ConstructorGuard
}

// InitialRowVersion returns the version assigned to a freshly created entity.
func InitialRowVersion() RowVersion {
	return RowVersion{guard: guard.NewConstructorGuard()}
}

// RowVersionFromCounter restores a RowVersion from its persisted counter value.
// Used by repositories when reconstructing aggregates from storage.
func RowVersionFromCounter(counter uint64) RowVersion {
	return RowVersion{counter: counter, guard: guard.NewConstructorGuard()}
}

// RowVersionFromToken parses an opaque token presented by a caller.
// The token is standard base64 over the big-endian counter bytes; any decodable
// byte string of at most eight bytes is accepted, so tokens produced by earlier
// encodings (for example two-byte zero counters) still round-trip.
//
// Returns ValueIsRequiredError for an empty token and VersionIsInvalidError for
// anything that does not decode.
func RowVersionFromToken(token string) (RowVersion, error) {
	if token == "" {
		return RowVersion{}, errs.NewValueIsRequiredError("rowVersion")
	}

	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return RowVersion{}, errs.NewVersionIsInvalidErrorWithCause("rowVersion", err)
	}
	if len(raw) == 0 || len(raw) > maxTokenBytes {
		return RowVersion{}, errs.NewVersionIsInvalidErrorWithCause(
			"rowVersion",
			fmt.Errorf("token must decode to 1..%d bytes, got %d", maxTokenBytes, len(raw)),
		)
	}

	var counter uint64
	for _, b := range raw {
		counter = counter<<8 | uint64(b)
	}

	return RowVersionFromCounter(counter), nil
}

// Counter returns the underlying counter value for persistence.
func (v RowVersion) Counter() uint64 {
	return v.counter
}

// Token returns the opaque base64 representation exposed to callers.
func (v RowVersion) Token() string {
	raw := make([]byte, 0, maxTokenBytes)
	c := v.counter
	for c > 0 {
		raw = append([]byte{byte(c)}, raw...)
		c >>= 8
	}
	if len(raw) == 0 {
		raw = []byte{0}
	}
	return base64.StdEncoding.EncodeToString(raw)
}

// String implements fmt.Stringer using the token representation.
func (v RowVersion) String() string {
	return v.Token()
}

// Next returns the version that follows this one. Applied by aggregates on
// every successful mutation so the stored version changes on each write.
func (v RowVersion) Next() RowVersion {
	return RowVersionFromCounter(v.counter + 1)
}

// IsEqual compares two versions by counter value.
func (v RowVersion) IsEqual(other RowVersion) bool {
	return v.counter == other.counter
}

// Validate checks that the RowVersion was created through a constructor.
func (v RowVersion) Validate() error {
	return v.guard.Validate(ErrRowVersionIsNotConstructed)
}
