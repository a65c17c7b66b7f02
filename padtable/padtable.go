// Package padtable implements the Pad Slot Table (component A): a
// fixed-capacity array of two slots, each holding the per-pad mutable
// state described by the data model and the two synchronization
// primitives ("padLock", "cmdLock") that serialize input and output
// transfers independently.
package padtable

import (
	"sync"

	"github.com/ds3ds4/ds34drv/usbhost"
)

// NumSlots is the fixed number of simultaneously bound pads.
const NumSlots = 2

// Model identifies which pad protocol a bound device speaks.
type Model uint8

const (
	ModelUnknown Model = iota
	ModelDS3
	ModelDS4
)

// Status is the additive enumeration bitfield: AUTHORIZED -> CONNECTED
// -> CONFIGURED -> RUNNING, cleared atomically on disconnect.
type Status uint8

const (
	StatusAuthorized Status = 1 << iota
	StatusConnected
	StatusConfigured
	StatusRunning
)

// Slot is one pad's mutable state. New builds released slots (DevID and
// endpoint handles set to the NoDevice/NoEndpoint sentinels, Enabled
// false); the zero value is not released, since its DevID and handles
// are 0.
type Slot struct {
	Enabled bool
	DevID   usbhost.DeviceID
	Type    Model
	Status  Status

	Control      usbhost.Endpoint
	InterruptIn  usbhost.Endpoint
	InterruptOut usbhost.Endpoint

	Data [18]byte

	// OldLED is {primary, g, b, blinkFlag}; DS3 only uses index 0 and 3.
	OldLED [4]byte
	LRum   byte
	RRum   byte

	// UpdateRum is the single-bit latch toggled by GetBdaddr (see padcore).
	UpdateRum bool

	// PadLock serializes input transfers and guards the slot as a whole.
	PadLock sync.Mutex
	// CmdLock serializes output/command transfers independently of PadLock.
	CmdLock sync.Mutex

	// LastResult is the completion result of the most recent input transfer.
	LastResult error
}

// Table is the fixed-size slot array. Construct it with New (the zero
// value has nil slots); SetEnableMask must be called to enable slots
// before Connect will bind any device.
type Table struct {
	mu    sync.Mutex
	Slots [NumSlots]*Slot
}

// New constructs a Table with all slots released and disabled.
func New() *Table {
	t := &Table{}
	for i := range t.Slots {
		t.Slots[i] = newReleasedSlot()
	}
	return t
}

func newReleasedSlot() *Slot {
	return &Slot{
		DevID:        usbhost.NoDevice,
		Control:      usbhost.NoEndpoint,
		InterruptIn:  usbhost.NoEndpoint,
		InterruptOut: usbhost.NoEndpoint,
	}
}

// SetEnableMask sets each slot's Enabled bit from (mask >> slot) & 1,
// per the module command-line / init(enable_mask) contract.
func (t *Table) SetEnableMask(mask byte) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, s := range t.Slots {
		s.Enabled = (mask>>uint(i))&1 != 0
	}
}

// Slot returns the slot at port, or nil if port is out of range.
func (t *Table) Slot(port int) *Slot {
	if port < 0 || port >= NumSlots {
		return nil
	}
	return t.Slots[port]
}

// AllocateFree picks the lowest-index slot that is enabled and free
// (DevID == NoDevice). It returns the slot index and true, or
// (-1, false) if no slot qualifies.
func (t *Table) AllocateFree() (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, s := range t.Slots {
		if s.Enabled && s.DevID == usbhost.NoDevice {
			return i, true
		}
	}
	return -1, false
}

// FindByDevice returns the slot index bound to dev, or (-1, false).
func (t *Table) FindByDevice(dev usbhost.DeviceID) (int, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	for i, s := range t.Slots {
		if s.DevID == dev {
			return i, true
		}
	}
	return -1, false
}

// Release closes any open endpoints via ctrl and resets the slot to its
// disconnected state (devId, endpoints -> sentinel, status -> 0). It is
// safe to call on an already-released slot. Enabled is preserved.
//
// Release takes PadLock and CmdLock itself; callers that already hold
// PadLock (e.g. enum.Connect unwinding an error mid-bind) must call
// releaseLocked instead, via ReleaseLocked.
func Release(ctrl usbhost.Controller, s *Slot) {
	s.PadLock.Lock()
	defer s.PadLock.Unlock()
	releaseLocked(ctrl, s)
}

// ReleaseLocked is Release's lock-free body, for a caller that already
// holds s.PadLock (sync.Mutex is not reentrant, so Release itself would
// deadlock in that case). It still takes CmdLock.
func ReleaseLocked(ctrl usbhost.Controller, s *Slot) {
	releaseLocked(ctrl, s)
}

func releaseLocked(ctrl usbhost.Controller, s *Slot) {
	s.CmdLock.Lock()
	defer s.CmdLock.Unlock()

	if ctrl != nil {
		for _, ep := range []usbhost.Endpoint{s.Control, s.InterruptIn, s.InterruptOut} {
			if ep != usbhost.NoEndpoint {
				_ = ctrl.CloseEndpoint(ep)
			}
		}
	}

	s.DevID = usbhost.NoDevice
	s.Type = ModelUnknown
	s.Status = 0
	s.Control = usbhost.NoEndpoint
	s.InterruptIn = usbhost.NoEndpoint
	s.InterruptOut = usbhost.NoEndpoint
	s.UpdateRum = false
	s.LastResult = nil
}
