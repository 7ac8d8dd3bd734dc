package engine

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"

	"github.com/sagarc03/lumpctl"
)

// DefaultQueueSize is the task queue capacity of a Handle.
const DefaultQueueSize = 16

// Task is a unit of work run on the engine worker.
type Task func(ctx context.Context)

// FatalFunc is called once when the worker loop fails.
type FatalFunc func(err error)

type options struct {
	queueSize int
	fatal     FatalFunc
	logger    *slog.Logger
}

// Option configures Start.
type Option func(*options)

// WithQueueSize sets the task queue capacity.
func WithQueueSize(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithFatal overrides the hook invoked when the worker fails. The default logs
// the error and exits the process with status 2.
func WithFatal(fn FatalFunc) Option {
	return func(o *options) {
		if fn != nil {
			o.fatal = fn
		}
	}
}

// WithLogger sets the logger used by the worker.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// Handle schedules tasks on the engine worker. It is safe for concurrent use.
type Handle struct {
	tasks chan<- Task
	done  <-chan struct{}
}

// Worker reports the state of the engine worker.
type Worker struct {
	done chan struct{}
	err  error
}

// Done is closed when the worker loop has terminated.
func (w *Worker) Done() <-chan struct{} {
	return w.done
}

// Err returns the failure that stopped the worker. It is only meaningful
// after Done is closed.
func (w *Worker) Err() error {
	select {
	case <-w.done:
		return w.err
	default:
		return nil
	}
}

// Start launches the engine worker and returns its Handle.
func Start(opts ...Option) (*Handle, *Worker) {
	o := options{
		queueSize: DefaultQueueSize,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.fatal == nil {
		logger := o.logger
		o.fatal = func(err error) {
			logger.Error("engine worker failed", "err", err)
			os.Exit(2)
		}
	}

	tasks := make(chan Task, o.queueSize)
	w := &Worker{done: make(chan struct{})}
	h := &Handle{tasks: tasks, done: w.done}

	go func() {
		runtime.LockOSThread()

		err := run(context.Background(), tasks, o.logger)

		w.err = err
		close(w.done)
		o.fatal(err)
	}()

	return h, w
}

// run drains the task queue one task at a time. It only returns on failure.
func run(ctx context.Context, tasks <-chan Task, logger *slog.Logger) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("engine task panicked: %v", r)
		}
	}()

	logger.Debug("engine worker started")
	for task := range tasks {
		task(ctx)
	}
	// Nothing closes the queue; reaching here means the loop was broken.
	return fmt.Errorf("engine task queue closed")
}

// Schedule queues a task. It reports false if the worker has stopped.
func (h *Handle) Schedule(task Task) bool {
	select {
	case <-h.done:
		return false
	default:
	}

	select {
	case h.tasks <- task:
		return true
	case <-h.done:
		return false
	}
}

// Spawn schedules fn on the engine and returns a Pending for its result.
// If the engine has stopped, the Pending resolves to lumpctl.ErrEngineStopped.
func Spawn[T any](h *Handle, fn func(ctx context.Context) (T, error)) *Pending[T] {
	p := newPending[T]()

	ok := h.Schedule(func(ctx context.Context) {
		completed := false
		defer func() {
			// fn panicked: the worker is going down, release the waiter.
			if !completed {
				var zero T
				p.resolve(zero, lumpctl.ErrEngineStopped)
			}
		}()

		v, err := fn(ctx)
		completed = true
		p.resolve(v, err)
	})
	if !ok {
		var zero T
		p.resolve(zero, lumpctl.ErrEngineStopped)
	}

	return p
}
