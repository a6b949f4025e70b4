package gpu

import "runtime"

// Future is an asynchronous result polled for completion.
type Future[T any] interface {
	// Poll reports the result once the future has completed. It must
	// be cheap; completion is expected to happen elsewhere.
	Poll() (T, bool)
}

// BlockOn drives a single future to completion, blocking the calling
// thread on device progress between polls.
//
// This is valid only for futures whose sole source of readiness is GPU
// work on dev: there is no waker and no scheduler, progress is observed
// entirely through Device.Poll. A future waiting on anything else
// (timers, I/O, channels) hangs the calling thread forever.
//
// BlockOn occupies the calling thread for its entire duration and must
// not run on a thread that has to stay responsive. On js the one shared
// thread is what drives the device, so blocking it can never finish;
// BlockOn panics there instead of deadlocking silently.
func BlockOn[T any](dev Device, fut Future[T]) T {
	if runtime.GOOS == "js" {
		panic("gpu: BlockOn cannot work on js, blocking the main thread stalls the device forever")
	}

	for {
		if value, ok := fut.Poll(); ok {
			return value
		}

		dev.Poll(true)
	}
}

// Promise adapts callback style completions to Future. Resolve is meant
// to be passed as the completion callback of an asynchronous backend
// operation; the callback fires while the device is polled, on the
// polling thread, so no locking is needed under the single-owner
// discipline this package assumes.
type Promise[T any] struct {
	value T
	done  bool
}

// Resolve completes the promise. Resolving twice panics.
func (p *Promise[T]) Resolve(value T) {
	if p.done {
		panic("gpu: promise resolved twice")
	}

	p.value = value
	p.done = true
}

// Poll implements Future.
func (p *Promise[T]) Poll() (T, bool) {
	return p.value, p.done
}
