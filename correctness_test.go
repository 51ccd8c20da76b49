// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan_test

import (
	"sync"
	"testing"
	"time"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/burstchan"
)

// TestBurstOfThree checks a burst dispatched to three idle receivers:
// three enqueues followed by one flush. Each receiver returns exactly
// one payload and the union covers the whole burst.
func TestBurstOfThree(t *testing.T) {
	sender, err := burstchan.NewSender[string]()
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	const n = 3
	receivers := make([]*burstchan.Receiver[string], n)
	for i := range receivers {
		receivers[i] = sender.NewReceiver()
	}

	results := make(chan string, n)
	var wg sync.WaitGroup
	for _, r := range receivers {
		wg.Add(1)
		go func(r *burstchan.Receiver[string]) {
			defer wg.Done()
			v, err := r.Recv()
			if err != nil {
				t.Errorf("Recv: unexpected error %v", err)
				return
			}
			results <- v
		}(r)
	}

	burst := []string{"a", "b", "c"}
	for i := range burst {
		enqueueEventually(t, sender, &burst[i], time.Second)
	}
	sender.Flush()

	wg.Wait()
	close(results)

	seen := map[string]int{}
	for v := range results {
		seen[v]++
	}
	if len(seen) != len(burst) {
		t.Fatalf("got %d distinct values, want %d: %v", len(seen), len(burst), seen)
	}
	for _, v := range burst {
		if seen[v] != 1 {
			t.Errorf("value %q delivered %d times, want exactly 1", v, seen[v])
		}
	}
}

// TestOverflow checks a burst that overflows the idle pool: two idle
// receivers, three enqueues with no intervening claims. The first two
// are accepted, the third is returned to the caller, and a single flush
// delivers exactly the first two.
func TestOverflow(t *testing.T) {
	sender, err := burstchan.NewSender[string]()
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	r1 := sender.NewReceiver()
	r2 := sender.NewReceiver()

	results := make(chan string, 2)
	var wg sync.WaitGroup
	for _, r := range []*burstchan.Receiver[string]{r1, r2} {
		wg.Add(1)
		go func(r *burstchan.Receiver[string]) {
			defer wg.Done()
			v, err := r.Recv()
			if err != nil {
				t.Errorf("Recv: unexpected error %v", err)
				return
			}
			results <- v
		}(r)
	}

	a, b, c := "a", "b", "c"
	retryWithTimeout(t, time.Second, func() bool { return sender.Enqueue(&a) == nil }, "enqueue a")
	retryWithTimeout(t, time.Second, func() bool { return sender.Enqueue(&b) == nil }, "enqueue b")

	if err := sender.Enqueue(&c); !burstchan.IsWouldBlock(err) {
		t.Fatalf("third enqueue: got %v, want ErrWouldBlock", err)
	}

	sender.Flush()
	wg.Wait()
	close(results)

	seen := map[string]bool{}
	for v := range results {
		seen[v] = true
	}
	if !seen["a"] || !seen["b"] {
		t.Fatalf("delivered %v, want exactly {a, b}", seen)
	}
	if seen["c"] {
		t.Fatalf("overflowed payload %q was delivered, want refused", "c")
	}
}

// TestRotation checks round-robin rotation across three receivers: 30
// sends, each followed by a flush and a claim, ending with each
// receiver having been chosen exactly 10 times.
func TestRotation(t *testing.T) {
	sender, err := burstchan.NewSender[int]()
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	const (
		numReceivers = 3
		numSends     = 30
	)
	counts := make([]int, numReceivers)
	claims := make(chan int, numReceivers)

	for i := 0; i < numReceivers; i++ {
		r := sender.NewReceiver()
		idx := i
		go func() {
			for {
				if _, err := r.Recv(); err != nil {
					return
				}
				claims <- idx
			}
		}()
	}

	for i := 0; i < numSends; i++ {
		payload := i
		enqueueEventually(t, sender, &payload, time.Second)
		sender.Flush()

		select {
		case idx := <-claims:
			counts[idx]++
		case <-time.After(time.Second):
			t.Fatalf("send %d: no receiver claimed the payload", i)
		}
	}

	for idx, c := range counts {
		if c != 10 {
			t.Errorf("receiver %d: claimed %d times, want 10", idx, c)
		}
	}
}

// TestConservationAndNoDuplication checks, under sustained concurrent
// load, that every successfully enqueued payload is delivered to
// exactly one receiver exactly once.
func TestConservationAndNoDuplication(t *testing.T) {
	if burstchan.RaceEnabled {
		t.Skip("skip: relies on acquire/release ordering the race detector misreports")
	}

	sender, err := burstchan.NewSender[int]()
	if err != nil {
		t.Fatalf("NewSender: %v", err)
	}

	const (
		numReceivers = 4
		numBursts    = 500
	)
	receivers := make([]*burstchan.Receiver[int], numReceivers)
	for i := range receivers {
		receivers[i] = sender.NewReceiver()
	}

	var delivered atomix.Int64
	seen := make([]atomix.Int32, numBursts*numReceivers)
	var wg sync.WaitGroup

	for _, r := range receivers {
		wg.Add(1)
		go func(r *burstchan.Receiver[int]) {
			defer wg.Done()
			for {
				v, err := r.Recv()
				if err != nil {
					return
				}
				seen[v].Add(1)
				delivered.Add(1)
			}
		}(r)
	}

	accepted := 0
	for b := 0; b < numBursts; b++ {
		for i := 0; i < numReceivers; i++ {
			payload := b*numReceivers + i
			if err := sender.Enqueue(&payload); err == nil {
				accepted++
			}
		}
		sender.Flush()
	}

	retryWithTimeout(t, 5*time.Second, func() bool {
		return delivered.Load() >= int64(accepted)
	}, "all accepted payloads delivered")

	if err := sender.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	wg.Wait()

	var duplicates int
	for i := range seen {
		if seen[i].Load() > 1 {
			duplicates++
		}
	}
	if duplicates > 0 {
		t.Errorf("no-duplication violated: %d payloads delivered more than once", duplicates)
	}
}
