// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

import (
	"errors"

	"code.hybscloud.com/iox"
)

// ErrWouldBlock indicates Enqueue could not find an idle receiver right now.
//
// This is not a fault: it is the expected outcome of a burst that exceeds
// the number of currently-waiting receivers. The caller keeps the payload
// (it was passed by pointer) and may drop it, retry, or queue it elsewhere.
//
// This is an alias for [iox.ErrWouldBlock] for ecosystem consistency.
//
// Example:
//
//	backoff := iox.Backoff{}
//	for {
//	    err := sender.Enqueue(&task)
//	    if err == nil {
//	        backoff.Reset()
//	        break
//	    }
//	    if burstchan.IsWouldBlock(err) {
//	        backoff.Wait() // no idle receiver, drop or retry
//	        break
//	    }
//	    panic(err) // unreachable: Enqueue has no other failure mode
//	}
var ErrWouldBlock = iox.ErrWouldBlock

// ErrOrphaned indicates the channel's Sender has been closed.
//
// Unlike ErrWouldBlock this is terminal: a Receiver that observes
// ErrOrphaned will never again receive a payload and should stop calling
// Recv. ErrOrphaned is deliberately not an alias of ErrWouldBlock — the two
// are not interchangeable control-flow signals, and a caller that treats a
// dead sender as transient backpressure will spin forever.
var ErrOrphaned = errors.New("burstchan: sender closed")

// IsWouldBlock reports whether err indicates Enqueue found no idle receiver.
// Delegates to [iox.IsWouldBlock] for wrapped error support.
func IsWouldBlock(err error) bool {
	return iox.IsWouldBlock(err)
}

// IsOrphaned reports whether err indicates the Sender has been closed.
func IsOrphaned(err error) bool {
	return errors.Is(err, ErrOrphaned)
}
