// Package errs provides standardized error types for the order-processing backend.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package covers the application's error taxonomy:
//   - ValueIsRequiredError / ValueIsInvalidError / ValueIsOutOfRangeError: input validation
//   - ObjectNotFoundError: unknown order or shipment lookups
//   - DuplicateKeyError: store insert conflicts
//   - SignatureInvalidError: webhook authentication failures
//   - UpstreamUnavailableError / UpstreamRejectedError: payment gateway and
//     shipping carrier failures
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions, with and without cause where a cause makes sense
//   - Error() for formatting and Unwrap() so errors.Is matches the sentinel
//
// The HTTP layer relies on the sentinels to map errors onto status codes, so
// every error that crosses a port boundary should be one of these types or wrap
// one of them.
package errs
