// Package transfer implements the Transfer Serializer (component B): it
// wraps a single USB transfer in the single-outstanding-per-endpoint
// discipline described by the spec — submit, then wait for either the
// completion callback or a bounded one-shot alarm, whichever comes
// first — and hands back the submit-time error separately from the
// completion result.
package transfer

import (
	"errors"
	"sync"
	"time"

	"github.com/ds3ds4/ds34drv/timer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

// DefaultTimeout is the fixed 200ms bound on every transfer wait; it is
// also the upper bound of a single GetData call.
const DefaultTimeout = 200 * time.Millisecond

// MaxBufferSize is the largest raw report either pad model emits or
// expects, bounding a single interrupt transfer.
const MaxBufferSize = 64

// ErrTimeout is the completion error recorded when the alarm fires
// before the host controller's completion callback.
var ErrTimeout = errors.New("transfer: timed out waiting for completion")

// Serializer drives transfers against a usbhost.Controller.
type Serializer struct {
	Ctrl    usbhost.Controller
	Clock   timer.Source
	Timeout time.Duration

	// Scratch is a MaxBufferSize+32 byte buffer owned by the Serializer.
	// SubmitAndWait does not use it, and no caller in this module passes
	// it in: every transfer runs on a buffer its caller allocates, so
	// concurrent transfers on different slots never share memory. A
	// caller that does pass Scratch must ensure no two transfers use it
	// at once.
	Scratch [MaxBufferSize + 32]byte
}

// New builds a Serializer with the default 200ms timeout and the
// standard-library timer source.
func New(ctrl usbhost.Controller) *Serializer {
	return &Serializer{Ctrl: ctrl, Clock: timer.Std, Timeout: DefaultTimeout}
}

// SubmitAndWait submits one transfer on ep and blocks until either the
// completion callback or the timeout alarm fires. It returns the
// number of bytes transferred and the completion error as reported by
// the controller (ErrTimeout if the alarm won the race), plus the
// submit-time error separately — a non-nil submitErr means the slot
// was never touched and completionErr/n are meaningless.
func (s *Serializer) SubmitAndWait(ep usbhost.Endpoint, kind usbhost.TransferKind, req usbhost.ControlRequest, buf []byte) (n int, completionErr error, submitErr error) {
	var wait sync.Mutex
	wait.Lock()

	var once sync.Once
	release := func() { once.Do(wait.Unlock) }

	submitErr = s.Ctrl.Submit(ep, kind, req, buf, func(err error, nn int) {
		completionErr = err
		n = nn
		release()
	})
	if submitErr != nil {
		return 0, nil, submitErr
	}

	timeout := s.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	alarm := s.Clock.After(timeout, func() {
		completionErr = ErrTimeout
		release()
	})

	wait.Lock() // blocks until completion or alarm calls release()
	alarm.Cancel()
	wait.Unlock()

	return n, completionErr, nil
}
