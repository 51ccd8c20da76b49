// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package burstchan

import "sync"

// condWake backs wakeObject with a mutex, a condition variable, and a
// counter, for kernels that do not expose a counting event-object fd in
// semaphore mode. This preserves invariant I3 (the counter equals credits
// written minus credits consumed, plus outstanding teardown credits): add
// and consume both hold mu while touching count, and pollWait never
// decrements it.
type condWake struct {
	mu    sync.Mutex
	cond  *sync.Cond
	count int
}

func newWakeObjectImpl() (wakeObjectImpl, error) {
	w := &condWake{}
	w.cond = sync.NewCond(&w.mu)
	return w, nil
}

func (w *condWake) add(n int) error {
	w.mu.Lock()
	w.count += n
	w.mu.Unlock()
	w.cond.Broadcast()
	return nil
}

// pollWait blocks until count > 0 without decrementing it. Broadcast
// (rather than Signal) in add is required precisely because this is a
// level-triggered, non-consuming wait: every blocked goroutine must
// re-check count on every credit added, not just one.
func (w *condWake) pollWait() error {
	w.mu.Lock()
	for w.count <= 0 {
		w.cond.Wait()
	}
	w.mu.Unlock()
	return nil
}

// consume decrements count by exactly one. By the time this is called the
// caller has already won a tryClaim, so a legitimate credit is guaranteed
// to exist eventually; block on the condition variable rather than
// failing if a racing consumer got there first.
func (w *condWake) consume() error {
	w.mu.Lock()
	for w.count <= 0 {
		w.cond.Wait()
	}
	w.count--
	w.mu.Unlock()
	return nil
}

func (w *condWake) close() error {
	return nil
}
