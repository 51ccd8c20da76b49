// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

// The four values of a Receiver's state word, held in an atomix.Uint32
// (see state.go). Allowed transitions and their actor:
//
//	busy     -> idle     receiver, entering Recv
//	idle     -> armed    sender,   successful Enqueue
//	armed    -> busy     receiver, claiming a delivered payload
//	idle     -> orphaned sender,   Close (teardown)
//	busy     -> orphaned sender,   Close (teardown)
//	armed    -> orphaned sender,   Close (rare race)
//
// Observing any other transition is a logic error and panics.
const (
	// stateBusy means the receiver is running user code or has not yet
	// entered the waiting protocol. Its slot must be empty.
	stateBusy uint32 = iota
	// stateIdle means the receiver is blocked (or about to block) in the
	// wake object's wait. Its slot is empty; the sender may claim it.
	stateIdle
	// stateArmed means the sender deposited a payload into the receiver's
	// slot and owes it one wake credit. Its slot is non-empty.
	stateArmed
	// stateOrphaned is terminal: the sender has been closed.
	stateOrphaned
)
