// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package burstchan

import (
	"encoding/binary"

	"golang.org/x/sys/unix"
)

// eventfdWake backs wakeObject with a Linux eventfd(2) in EFD_SEMAPHORE
// mode: write(buf) adds the little-endian uint64 in buf to the kernel
// counter; a blocking read(buf) waits until the counter is >0, decrements
// it by exactly one, and returns 1 in buf. poll(2) on the fd reports
// POLLIN whenever the counter is >0, without consuming anything — exactly
// the non-consuming wait this package's stolen-wakeup protocol needs. The
// fd stays in its default blocking mode: consume always has a legitimate
// credit to wait for by the time it is called (see receiver.go), so a
// blocking read is simpler than a non-blocking one and cannot hang —
// some flush, current or future, always supplies the matching credit.
type eventfdWake struct {
	fd int
}

func newWakeObjectImpl() (wakeObjectImpl, error) {
	fd, err := unix.Eventfd(0, unix.EFD_SEMAPHORE|unix.EFD_CLOEXEC)
	if err != nil {
		return nil, err
	}
	return &eventfdWake{fd: fd}, nil
}

func (w *eventfdWake) add(n int) error {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(n))
	for {
		_, err := unix.Write(w.fd, buf[:])
		if err == nil {
			return nil
		}
		if err == unix.EINTR {
			continue
		}
		return err
	}
}

// pollWait blocks on poll(2) until the eventfd is readable (counter > 0)
// without consuming the counter. Sender.Close orphans every receiver
// before it closes the fd, so a receiver parked here across teardown can
// observe the fd close out from under it as EBADF instead of POLLIN.
// That only happens after every receiver's state already reads orphaned,
// so treat EBADF the same as a wake: the caller's tryClaim will observe
// orphaned and return ErrOrphaned, instead of this surfacing as a
// syscall error on valid teardown input.
func (w *eventfdWake) pollWait() error {
	fds := []unix.PollFd{{Fd: int32(w.fd), Events: unix.POLLIN}}
	for {
		n, err := unix.Poll(fds, -1)
		if err == unix.EINTR {
			continue
		}
		if err == unix.EBADF {
			return nil
		}
		if err != nil {
			return err
		}
		if n > 0 && fds[0].Revents&unix.POLLIN != 0 {
			return nil
		}
	}
}

// consume performs the single decrementing read. The same teardown race
// as pollWait can close the fd out from under a receiver that won its
// claim just before Close orphaned it; EBADF here means the channel is
// already torn down and no future Flush depends on this decrement.
func (w *eventfdWake) consume() error {
	var buf [8]byte
	for {
		_, err := unix.Read(w.fd, buf[:])
		if err == nil {
			return nil
		}
		if err == unix.EINTR {
			continue
		}
		if err == unix.EBADF {
			return nil
		}
		return err
	}
}

func (w *eventfdWake) close() error {
	return unix.Close(w.fd)
}
