// Package errs provides the error types of the order engine.
//
// Every concrete error follows the same pattern: a sentinel variable, a struct
// carrying details, constructors with and without cause, Error and Unwrap.
// Errors also report one of the business kinds through errors.Is:
//   - ErrInvalidArgument: ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError
//   - ErrObjectNotFound: ObjectNotFoundError
//   - ErrInvalidState: InvalidStateError
//
// Anything else, including ErrConcurrentModification once retries are exhausted,
// is treated as an internal failure. KindOf maps an error to its Kind.
package errs
