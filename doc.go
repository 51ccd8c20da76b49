// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package burstchan provides a single-producer, multi-consumer dispatch
// channel for bursty, latency-sensitive, now-or-never delivery.
//
// A solitary producer occasionally has a burst of work to hand to a pool
// of blocked workers, wants them all woken in close to the minimum
// possible time, and would rather drop excess work than queue it.
// burstchan trades unbounded queueing for that: Enqueue only succeeds if
// a receiver is idle right now, and a single Flush wakes every receiver
// armed since the last flush with one syscall.
//
// # Basic usage
//
//	sender, err := burstchan.NewSender[Task]()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// Spawn workers, each bound to its own receiver for its whole life.
//	for range numWorkers {
//	    r := sender.NewReceiver()
//	    go func() {
//	        for {
//	            task, err := r.Recv()
//	            if burstchan.IsOrphaned(err) {
//	                return // sender closed
//	            }
//	            task.Run()
//	        }
//	    }()
//	}
//
//	// Producer: enqueue a burst, then flush once.
//	for _, task := range burst {
//	    if err := sender.Enqueue(&task); err != nil {
//	        // No idle receiver — drop it, this channel never queues.
//	        continue
//	    }
//	}
//	sender.Flush()
//
// # Non-goals
//
// burstchan does not queue: a burst larger than the number of currently
// idle receivers loses its excess, reported back to the caller as
// ErrWouldBlock rather than silently buffered. It makes no fairness
// guarantee beyond round-robin scan order under contention, and it is
// single-producer — concurrent Enqueue calls from more than one goroutine
// are not supported. A pool that owns worker threads, runs arbitrary
// closures, and collects latency statistics is a thin convenience layer
// over this package and is deliberately not part of it.
//
// # The stolen-wakeup problem
//
// All receivers block on the same wake object, and the sender adds wake
// credits without naming which receiver they are for. A receiver R can
// wake, find its own state still idle, and realize the credit it polled
// for was meant for some other receiver R'. burstchan resolves this with
// a non-consuming wait: Recv polls the wake object in level-triggered
// mode without decrementing it, attempts its own armed->busy transition,
// and only performs the single decrementing read once that transition
// actually succeeds. A stolen wakeup costs a scheduler yield and a
// re-poll, never a lost or duplicated delivery.
//
// # Wake object
//
// On linux, the wake object is an eventfd(2) in EFD_SEMAPHORE mode,
// reached through golang.org/x/sys/unix: write(n) adds n to the kernel
// counter, poll(2) reports readiness without consuming, and read()
// consumes exactly one. Everywhere else it falls back to a mutex,
// condition variable, and counter, preserving the same conservation
// invariant at the cost of an in-process rather than kernel-arbitrated
// wait.
//
// # Error handling
//
// Enqueue returns [ErrWouldBlock] (an alias of
// [code.hybscloud.com/iox.ErrWouldBlock] for ecosystem consistency) when
// no receiver is idle. Recv returns [ErrOrphaned] once the Sender has
// been closed. Both are control-flow signals the caller is expected to
// handle; anything else Recv or Enqueue could observe — an illegal state
// transition, a wake object syscall failing for a reason other than
// EINTR — is a logic error in this library and aborts the process via
// panic rather than being surfaced as a recoverable error. Slot occupancy
// is not checked: Enqueue writes a payload into a receiver's slot without
// testing whether the slot already holds one, and Recv returns whatever
// the slot holds.
//
// # Dependencies
//
// This package uses code.hybscloud.com/atomix for the receiver state
// word's explicit acquire/release orderings, code.hybscloud.com/spin for
// the stolen-wakeup re-poll backoff (Enqueue's scan does not back off), and
// code.hybscloud.com/iox for [ErrWouldBlock]'s ecosystem-standard
// semantics.
package burstchan
