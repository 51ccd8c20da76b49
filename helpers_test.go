// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan_test

import (
	"testing"
	"time"

	"code.hybscloud.com/burstchan"
	"code.hybscloud.com/iox"
)

// retryWithTimeout retries f until it returns true or timeout expires.
// Reports failure with the given message if timeout is reached.
func retryWithTimeout(t *testing.T, timeout time.Duration, f func() bool, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	backoff := iox.Backoff{}
	for !f() {
		if time.Now().After(deadline) {
			t.Fatalf("timeout after %v: %s", timeout, msg)
		}
		backoff.Wait()
	}
}

// enqueueEventually retries Enqueue with backoff until a receiver is
// idle to accept payload, or timeout expires. A freshly spawned receiver
// goroutine takes an unbounded but short amount of scheduler time to
// reach its busy->idle transition inside Recv; tests use this instead of
// reaching into unexported state to observe that transition directly.
func enqueueEventually[T any](t *testing.T, sender *burstchan.Sender[T], payload *T, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	backoff := iox.Backoff{}
	for {
		err := sender.Enqueue(payload)
		if err == nil {
			return
		}
		if !burstchan.IsWouldBlock(err) {
			t.Fatalf("Enqueue: unexpected error %v", err)
		}
		if time.Now().After(deadline) {
			t.Fatalf("timeout after %v: Enqueue never found an idle receiver", timeout)
		}
		backoff.Wait()
	}
}
