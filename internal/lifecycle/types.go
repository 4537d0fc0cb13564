package lifecycle

// Instance is anything with a synchronous teardown step and a log tag.
// DecodingContext implements it so Manager can guard its Close against
// being run twice.
type Instance interface {
	Close_()
	String() string
}

// Manager wraps one Instance with idempotent Start/Close semantics.
// There is no background Step loop here: this module's dispatcher runs
// single-threaded and cooperative per file (no operation yields to a
// scheduler), so the only lifecycle concerns are "don't start twice,
// don't tear down twice" and "tear down even if Start panicked".
type Manager[T Instance] interface {
	Start(func(T) error) error
	Close()
}

// StartedAlreadyError is returned when Start is called more than once.
type StartedAlreadyError struct{}

func (*StartedAlreadyError) Error() string {
	return "started already"
}

// StartedAfterCloseError is returned when Start is called on a manager
// whose instance has already been torn down.
type StartedAfterCloseError struct{}

func (*StartedAfterCloseError) Error() string {
	return "start after close"
}
