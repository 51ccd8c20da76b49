// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

// Sender is the single producer endpoint of a burst channel.
//
// A Sender owns the channel's wake object and the ordered list of every
// receiver it has created. It is single-owner and not safe to share: all
// of NewReceiver, Enqueue, Flush, and Close must be called from the one
// goroutine that owns the Sender. Receivers, once created, are consumed
// from any number of other goroutines via their own Recv.
type Sender[T any] struct {
	wake      *wakeObject
	receivers []*Receiver[T]
	next      int
	pending   int
	closed    bool
}

// NewSender creates a burst channel's producer endpoint.
func NewSender[T any](opts ...Option) (*Sender[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	wake, err := newWakeObject()
	if err != nil {
		return nil, err
	}

	return &Sender[T]{
		wake:      wake,
		receivers: make([]*Receiver[T], 0, cfg.receiverHint),
	}, nil
}

// NewReceiver allocates a new consumer endpoint bound to this channel.
// Safe to call at any time, including while enqueues and receives are in
// progress on other receivers — the new receiver simply joins the round-
// robin scan from this point on.
func (s *Sender[T]) NewReceiver() *Receiver[T] {
	r := &Receiver[T]{wake: s.wake}
	r.st.initBusy()
	s.receivers = append(s.receivers, r)
	return r
}

// Enqueue deposits payload with the first idle receiver found scanning
// round-robin from the cursor left by the previous successful Enqueue.
//
// Enqueue never blocks and issues no syscalls: the wakeup is only
// actually delivered by a later call to Flush. Returns ErrWouldBlock if
// every receiver is busy, armed, orphaned, or tombstoned by Close — the
// caller keeps payload (it was passed by pointer) and may drop it or
// retry.
func (s *Sender[T]) Enqueue(payload *T) error {
	n := len(s.receivers)
	if n == 0 {
		return ErrWouldBlock
	}

	for i := 0; i < n; i++ {
		idx := (s.next + i) % n
		r := s.receivers[idx]

		if r.removed.LoadAcquire() {
			continue
		}
		if r.st.load() != stateIdle {
			continue
		}

		// Publish before arming: tryArm's release ordering is what makes
		// this write visible to the receiver's paired acquire in
		// tryClaim (see slot.go, state.go). If tryArm loses the race
		// (the receiver was orphaned by a concurrent Close in the rare
		// teardown overlap this allows for), this write is simply
		// discarded — no receiver ever reads an orphaned slot.
		r.sl.publish(*payload)
		if r.st.tryArm() {
			s.next = (idx + 1) % n
			s.pending++
			return nil
		}
	}

	return ErrWouldBlock
}

// Flush writes every pending wake credit accumulated since the last
// Flush to the wake object in a single syscall, and resets the pending
// count to zero. Calling Flush with no pending credits is a no-op.
func (s *Sender[T]) Flush() {
	if s.pending == 0 {
		return
	}
	if err := s.wake.add(s.pending); err != nil {
		panic("burstchan: wake object flush failed: " + err.Error())
	}
	s.pending = 0
}

// Close tears down the channel: every receiver is marked orphaned, and a
// single wake credit per receiver is flushed so that any receiver
// currently blocked in Recv wakes, observes orphaned, and returns
// ErrOrphaned. After Close, every subsequent Recv on any receiver of this
// channel returns ErrOrphaned immediately from beginWait.
//
// Close is not safe to call concurrently with Enqueue or Flush — the
// Sender is single-owner, and teardown is the caller's last operation on
// it.
func (s *Sender[T]) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true

	for _, r := range s.receivers {
		r.st.orphan()
	}

	n := len(s.receivers)
	if n == 0 {
		return nil
	}
	if err := s.wake.add(n); err != nil {
		return err
	}
	return s.wake.close()
}
