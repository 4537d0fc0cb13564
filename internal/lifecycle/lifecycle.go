package lifecycle

import (
	"fmt"
	"sync"

	"github.com/ugparu/mp4thumb/internal/logger"
)

// manager wraps one Instance with idempotent start/close semantics and
// a panic-safe Start: a malformed input file can drive the dispatch
// loop into a slice-bounds panic deep inside H.264 parsing, and that
// panic must not skip teardown, since Close_ is what unmaps the
// Feeder's mmap region. Without the recover below, a panicking decode
// run would leak that mapping for the rest of the process's life.
type manager[T Instance] struct {
	instance T

	mu      sync.Mutex
	started bool

	closeOnce sync.Once
	closeChan chan struct{}
}

// NewManager wraps instance with idempotent start/close.
func NewManager[T Instance](instance T) Manager[T] {
	return &manager[T]{
		instance:  instance,
		closeChan: make(chan struct{}),
	}
}

// Start runs startFunc exactly once. A second call returns
// StartedAlreadyError; a call after Close returns StartedAfterCloseError.
// A panic inside startFunc is recovered and returned as an error so the
// caller's subsequent Close still runs.
func (m *manager[T]) Start(startFunc func(T) error) (err error) {
	select {
	case <-m.closeChan:
		return &StartedAfterCloseError{}
	default:
	}

	m.mu.Lock()
	if m.started {
		m.mu.Unlock()
		return &StartedAlreadyError{}
	}
	m.started = true
	m.mu.Unlock()

	defer func() {
		if r := recover(); r != nil {
			logger.Errorf(m.instance, "recovered panic: %v", r)
			err = fmt.Errorf("lifecycle: panic in %s: %v", m.instance.String(), r)
		}
	}()

	logger.Debugf(m.instance, "starting")
	return startFunc(m.instance)
}

// Close tears the instance down exactly once, even if Start panicked,
// was never called, or already returned an error.
func (m *manager[T]) Close() {
	m.closeOnce.Do(func() {
		m.instance.Close_()
		close(m.closeChan)
	})
}
