// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package burstchan

// Option configures a Sender at construction time.
//
// burstchan has exactly one knob: how many receivers to expect, used only
// to presize the sender's receiver list. Everything else about the core
// — the stolen-wakeup protocol, the round-robin policy, the credit
// accounting — is fixed and not configurable.
type Option func(*config)

type config struct {
	receiverHint int
}

func defaultConfig() config {
	return config{receiverHint: 8}
}

// WithReceiverHint presizes the sender's receiver list for n receivers.
// Purely a capacity hint: [Sender.NewReceiver] may be called any number
// of times regardless of n, growing the list as needed.
func WithReceiverHint(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.receiverHint = n
		}
	}
}
