// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

// slot is a single-cell holder for one in-flight payload, owned by exactly
// one receiver and written by exactly one sender.
//
// slot carries no synchronization of its own: publish and claim are only
// ever called around a state-word transition (the sender publishes just
// before its idle->armed CAS, the receiver claims just after its
// armed->busy CAS), and it is the paired release/acquire on that state
// word — not a field on slot — that makes the write visible before the
// read. The receiver reads the cell only while it holds armed; no other
// synchronization is needed or provided.
type slot[T any] struct {
	data T
}

// publish stores payload into the cell. The caller must observe this
// slot's receiver idle and call publish immediately before attempting the
// idle->armed transition, so that the CAS's release ordering covers the
// write.
func (s *slot[T]) publish(payload T) {
	s.data = payload
}

// claim loads the cell's payload and clears it. The caller must have just
// won the armed->busy transition for this slot's receiver.
func (s *slot[T]) claim() T {
	payload := s.data
	var zero T
	s.data = zero
	return payload
}
