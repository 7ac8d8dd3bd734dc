package engine

import "sync"

// Pending is the result of one in-flight operation. It resolves exactly once.
type Pending[T any] struct {
	once  sync.Once
	done  chan struct{}
	value T
	err   error
}

func newPending[T any]() *Pending[T] {
	return &Pending[T]{done: make(chan struct{})}
}

// Ready returns a Pending that is already resolved to v and err.
func Ready[T any](v T, err error) *Pending[T] {
	p := newPending[T]()
	p.resolve(v, err)
	return p
}

func (p *Pending[T]) resolve(v T, err error) {
	p.once.Do(func() {
		p.value = v
		p.err = err
		close(p.done)
	})
}

// Done is closed once the Pending has resolved.
func (p *Pending[T]) Done() <-chan struct{} {
	return p.done
}

// Poll checks readiness without blocking. ready is false until the operation
// resolves; after that Poll keeps returning the same value and error.
func (p *Pending[T]) Poll() (value T, ready bool, err error) {
	select {
	case <-p.done:
		return p.value, true, p.err
	default:
		var zero T
		return zero, false, nil
	}
}

// Wait blocks the calling goroutine until p resolves and returns its result.
// There is no timeout: a Pending that never resolves blocks forever.
func Wait[T any](p *Pending[T]) (T, error) {
	<-p.done
	return p.value, p.err
}
