// Package engine hosts the execution engine that drives network work for a
// single lumpctl invocation.
//
// Start launches one worker goroutine locked to its own OS thread. Work is
// scheduled through the returned Handle and observed through a Pending, which
// resolves exactly once to a value or an error:
//
//	h, w := engine.Start()
//	p := engine.Spawn(h, func(ctx context.Context) (int, error) {
//		return 42, nil
//	})
//	v, err := engine.Wait(p)
//
// The worker runs for the life of the process. If it fails, the fatal hook
// configured with WithFatal is called; the default terminates the process.
package engine
