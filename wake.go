// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

// wakeObject is a process-local kernel counting object in semaphore-
// decrement mode: add(n) adds n to the counter; a receiver consumes the
// counter one unit at a time via pollWait (block until >0, without
// decrementing) followed by consume (decrement by exactly one).
//
// Splitting wait from consume is the non-consuming-wait protocol for the
// stolen-wakeup problem (see receiver.go): a receiver that wakes and finds
// its own state still idle knows the credit was meant for some other
// receiver, and must not have decremented the counter on that receiver's
// behalf. It re-polls instead, and only calls consume after tryClaim
// actually wins the armed->busy transition.
//
// On linux this is backed by eventfd(2) in EFD_SEMAPHORE mode (see
// wake_linux.go), reached through golang.org/x/sys/unix. Everywhere else
// it is emulated with a mutex, a condition variable, and a counter (see
// wake_other.go) for kernels without a native counting event object.
type wakeObject struct {
	impl wakeObjectImpl
}

// wakeObjectImpl is the platform-specific backing implementation. Each
// build of this package provides exactly one.
type wakeObjectImpl interface {
	// add writes n credits to the counter in a single atomic operation.
	add(n int) error
	// pollWait blocks until the counter is greater than zero. It does not
	// decrement the counter. Retries transparently on EINTR.
	pollWait() error
	// consume decrements the counter by exactly one. The caller must only
	// call this after pollWait returned and after winning a tryClaim —
	// i.e. exactly once per successful delivery.
	consume() error
	// close releases any OS resources held by the implementation.
	close() error
}

func newWakeObject() (*wakeObject, error) {
	impl, err := newWakeObjectImpl()
	if err != nil {
		return nil, err
	}
	return &wakeObject{impl: impl}, nil
}

func (w *wakeObject) add(n int) error {
	if n <= 0 {
		// Flush with zero pending credits is a no-op: skip the syscall
		// instead of writing a zero-credit add.
		return nil
	}
	return w.impl.add(n)
}

func (w *wakeObject) pollWait() error {
	return w.impl.pollWait()
}

func (w *wakeObject) consume() error {
	return w.impl.consume()
}

func (w *wakeObject) close() error {
	return w.impl.close()
}
