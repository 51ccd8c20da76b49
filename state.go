// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

import "code.hybscloud.com/atomix"

// state wraps a receiver's four-valued atomic word and the CAS transitions
// legal on it. Every transition except orphan is a single compare-and-swap
// carrying acquire-release ordering, so a receiver observing armed via
// tryClaim also observes the sender's prior write to its slot. orphan is an
// unconditional release store, paired with the acquire loads in beginWait
// and tryClaim.
type state struct {
	word atomix.Uint32
}

// initBusy initializes s to busy in place, the value every receiver
// starts in before its owning goroutine has entered recv for the first
// time. state embeds an atomix.Uint32 and must be initialized on its
// final address, never copied out of a constructor by value.
func (s *state) initBusy() {
	s.word.StoreRelaxed(stateBusy)
}

// tryArm attempts the idle->armed transition. Called by the sender during
// its round-robin scan. The caller must publish the payload to this
// receiver's slot immediately before calling tryArm: the release ordering
// on a successful CAS is what makes that write visible to the receiver's
// paired acquire in tryClaim.
//
// Returns false if the receiver was not idle (busy, already armed, or
// orphaned by a racing teardown) — the caller should try the next
// receiver in the scan and leave any speculative slot write to be
// overwritten or silently discarded.
func (s *state) tryArm() bool {
	return s.word.CompareAndSwapAcqRel(stateIdle, stateArmed)
}

// beginWait attempts the busy->idle transition made when a receiver is
// about to block in recv. Returns ErrOrphaned if the sender has already
// been closed. Any other observed value is a logic error: apart from
// teardown, no actor other than this receiver's own goroutine may move it
// out of busy, and this
// receiver cannot call beginWait twice without an intervening claim.
func (s *state) beginWait() error {
	if s.word.CompareAndSwapAcqRel(stateBusy, stateIdle) {
		return nil
	}
	switch observed := s.word.LoadAcquire(); observed {
	case stateOrphaned:
		return ErrOrphaned
	default:
		panic("burstchan: beginWait observed illegal receiver state")
	}
}

// tryClaim attempts the armed->busy transition made when a receiver wakes
// and checks whether the credit it consumed (or polled for, under the
// non-consuming wait protocol) was meant for it.
//
// claimed reports whether this receiver was the intended target. When
// claimed is false, observed is one of:
//
//	stateIdle     — the wakeup was stolen: some other receiver was armed,
//	                not this one. The caller should yield and re-poll.
//	stateOrphaned — the sender has been closed.
//
// If the sender arms the receiver between a failed CAS and the load that
// follows it, the claim is retried. Any other observed value is a logic
// error.
func (s *state) tryClaim() (claimed bool, observed uint32) {
	for {
		if s.word.CompareAndSwapAcqRel(stateArmed, stateBusy) {
			return true, stateArmed
		}
		observed = s.word.LoadAcquire()
		switch observed {
		case stateIdle, stateOrphaned:
			return false, observed
		case stateArmed:
			continue
		}
		panic("burstchan: tryClaim observed illegal receiver state")
	}
}

// orphan unconditionally stores orphaned. Called once per receiver during
// sender teardown; terminal, never reversed.
func (s *state) orphan() {
	s.word.StoreRelease(stateOrphaned)
}

// load returns the current state with acquire ordering. Used only for
// the sender's pre-CAS fast-path filter during its scan — a non-idle
// observation there is advisory (the CAS that follows is what decides
// correctness), not a substitute for tryArm.
func (s *state) load() uint32 {
	return s.word.LoadAcquire()
}
