package errs

import "errors"

// Kind classifies an error for transports and logging.
type Kind int

const (
	// KindInternal is any error that is not one of the business kinds.
	KindInternal Kind = iota
	KindInvalidArgument
	KindNotFound
	KindInvalidState
	KindConflict
)

// KindOf returns the kind of err. NotFound wins over InvalidArgument when an
// error chain carries both.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindInternal
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidArgument):
		return KindInvalidArgument
	case errors.Is(err, ErrInvalidState):
		return KindInvalidState
	case errors.Is(err, ErrConcurrentModification):
		return KindConflict
	default:
		return KindInternal
	}
}

func (k Kind) String() string {
	switch k {
	case KindInvalidArgument:
		return "InvalidArgument"
	case KindNotFound:
		return "NotFound"
	case KindInvalidState:
		return "InvalidState"
	case KindConflict:
		return "Conflict"
	default:
		return "Internal"
	}
}
