// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

import (
	"code.hybscloud.com/atomix"
	"code.hybscloud.com/spin"
)

// Receiver is one consumer endpoint of a burst channel, bound for its
// whole life to one consumer goroutine. Receivers are created by
// [Sender.NewReceiver] and cannot be cloned or constructed directly.
//
// Thread safety: exactly one goroutine may call Recv on a given Receiver
// at a time. Calling Recv concurrently from two goroutines on the same
// Receiver is a race on its state word's busy->idle transition and is not
// supported — each consumer goroutine owns one Receiver for its life.
type Receiver[T any] struct {
	st      state
	sl      slot[T]
	wake    *wakeObject
	removed atomix.Bool
}

// Recv blocks until the sender delivers a payload to this receiver or the
// sender is closed.
//
// The algorithm:
//  1. busy->idle. If the sender already closed this receiver, return
//     ErrOrphaned immediately.
//  2. Block on the wake object's non-consuming poll, then attempt
//     armed->busy. If another receiver's credit was stolen (state
//     observed idle), yield and re-poll without having consumed anything.
//  3. On a winning claim, consume exactly one credit and read the slot.
func (r *Receiver[T]) Recv() (T, error) {
	var zero T

	if err := r.st.beginWait(); err != nil {
		return zero, err
	}

	sw := spin.Wait{}
	for {
		if err := r.wake.pollWait(); err != nil {
			panic("burstchan: wake object wait failed: " + err.Error())
		}

		claimed, observed := r.st.tryClaim()
		if claimed {
			if err := r.wake.consume(); err != nil {
				panic("burstchan: wake object consume failed: " + err.Error())
			}
			return r.sl.claim(), nil
		}

		switch observed {
		case stateIdle:
			// Stolen wakeup: the credit we polled for belonged to some
			// other receiver. Nothing was consumed, so nothing needs to
			// be restored — re-poll.
			sw.Once()
		case stateOrphaned:
			return zero, ErrOrphaned
		}
	}
}

// Close tombstones this receiver: the sender's Enqueue scan will skip it
// from this point on, and it will never be armed again.
//
// Close does not unblock a concurrent Recv on this Receiver — this
// package's answer to dropping a receiver while its sender is still
// alive is tombstoning, not prohibition. A Receiver should only be
// closed from its own goroutine, after Recv has returned.
func (r *Receiver[T]) Close() {
	r.removed.StoreRelease(true)
}
