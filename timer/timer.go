// Package timer declares the collaborator surface expected of the
// system timer (one-shot alarms used only for transfer timeouts) and
// provides a default implementation on top of the standard library for
// the simulator and tests. The real system timer is external to this
// module, per spec.
package timer

import "time"

// Alarm is a single armed one-shot timer.
type Alarm interface {
	// Cancel stops the alarm if it has not yet fired. It returns false
	// if the alarm already fired or was already cancelled.
	Cancel() bool
}

// Source arms one-shot alarms that invoke fire after d elapses.
type Source interface {
	After(d time.Duration, fire func()) Alarm
}

// stdSource implements Source on top of time.AfterFunc.
type stdSource struct{}

// Std is the default Source, backed by time.AfterFunc.
var Std Source = stdSource{}

type stdAlarm struct{ t *time.Timer }

func (a stdAlarm) Cancel() bool { return a.t.Stop() }

func (stdSource) After(d time.Duration, fire func()) Alarm {
	return stdAlarm{t: time.AfterFunc(d, fire)}
}
