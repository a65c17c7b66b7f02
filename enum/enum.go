// Package enum implements the USB Enumeration component (component C):
// the probe/connect/disconnect callbacks invoked by the host USB stack
// in its own thread, which bind a physical pad to a free Pad Slot Table
// entry and drive it through AUTHORIZED -> CONNECTED -> (configuration
// complete, handled by modinit) -> RUNNING.
package enum

import (
	"errors"
	"log/slog"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/modinit"
	"github.com/ds3ds4/ds34drv/padtable"
	"github.com/ds3ds4/ds34drv/transfer"
	"github.com/ds3ds4/ds34drv/usbhost"
)

var (
	ErrNoFreeSlot            = errors.New("enum: no free enabled slot")
	ErrUnknownModel          = errors.New("enum: unrecognized product id")
	ErrEnumerationIncomplete = errors.New("enum: an interrupt endpoint could not be opened")
)

// ds4FixedEndpointWalk bounds the DS4 endpoint walk: DS4-slim (v2)
// reports bNumEndpoints == 0, so a fixed upper bound is used and the
// walk stops as soon as both directions are bound (spec.md §9).
const ds4FixedEndpointWalk = 20

// Enumerator owns the callbacks the host USB stack invokes.
type Enumerator struct {
	Table  *padtable.Table
	Ctrl   usbhost.Controller
	Ser    *transfer.Serializer
	Logger *slog.Logger
}

// Probe reports whether the device descriptor identifies a pad this
// module supports.
func (e *Enumerator) Probe(desc usbhost.DeviceDescriptor) bool {
	if desc.IDVendor != usbhost.SonyVID {
		return false
	}
	_, ok := modelFor(desc.IDProduct)
	return ok
}

func modelFor(pid uint16) (padtable.Model, bool) {
	switch pid {
	case ds3.ProductID:
		return padtable.ModelDS3, true
	case ds4.ProductID, ds4.ProductIDSlim:
		return padtable.ModelDS4, true
	default:
		return padtable.ModelUnknown, false
	}
}

// Connect binds dev to a free enabled slot, opens its endpoints, and
// issues SetConfiguration. Configuration completion (and the
// per-model init it triggers) runs asynchronously via the supplied
// callback; Connect itself returns once the request is submitted.
func (e *Enumerator) Connect(dev usbhost.DeviceID, desc usbhost.DeviceDescriptor) error {
	idx, ok := e.Table.AllocateFree()
	if !ok {
		return ErrNoFreeSlot
	}
	slot := e.Table.Slot(idx)

	if !slot.PadLock.TryLock() {
		slot.PadLock.Lock()
	}
	defer slot.PadLock.Unlock()

	slot.DevID = dev
	slot.Status = padtable.StatusAuthorized
	slot.UpdateRum = true

	ctrlEP, err := e.Ctrl.OpenControl(dev)
	if err != nil {
		padtable.ReleaseLocked(e.Ctrl, slot)
		return err
	}
	slot.Control = ctrlEP

	model, ok := modelFor(desc.IDProduct)
	if !ok {
		padtable.ReleaseLocked(e.Ctrl, slot)
		return ErrUnknownModel
	}
	slot.Type = model

	cfgDesc, _, eps, err := e.Ctrl.ReadConfigDescriptor(dev)
	if err != nil {
		padtable.ReleaseLocked(e.Ctrl, slot)
		return err
	}

	walkLimit := len(eps)
	if model == padtable.ModelDS4 && walkLimit > ds4FixedEndpointWalk {
		walkLimit = ds4FixedEndpointWalk
	}

	for i := 0; i < walkLimit; i++ {
		ep := eps[i]
		if !ep.IsInterrupt() {
			continue
		}
		if ep.IsIn() {
			if slot.InterruptIn == usbhost.NoEndpoint {
				if h, oerr := e.Ctrl.OpenEndpoint(dev, ep); oerr == nil {
					slot.InterruptIn = h
				}
			}
		} else {
			if slot.InterruptOut == usbhost.NoEndpoint {
				if h, oerr := e.Ctrl.OpenEndpoint(dev, ep); oerr == nil {
					slot.InterruptOut = h
				}
			}
		}
		if slot.InterruptIn != usbhost.NoEndpoint && slot.InterruptOut != usbhost.NoEndpoint {
			break
		}
	}

	if slot.InterruptIn == usbhost.NoEndpoint || slot.InterruptOut == usbhost.NoEndpoint {
		padtable.ReleaseLocked(e.Ctrl, slot)
		return ErrEnumerationIncomplete
	}

	slot.Status |= padtable.StatusConnected

	slotIndex := idx
	err = e.Ctrl.SetConfiguration(dev, cfgDesc.BConfigurationValue, func(cfgErr error) {
		if cfgErr != nil {
			e.Logger.Error("set configuration failed", "slot", slotIndex, "error", cfgErr)
			return
		}
		if rerr := modinit.Run(e.Logger, e.Ser, slot, slotIndex); rerr != nil {
			e.Logger.Error("per-model init failed", "slot", slotIndex, "error", rerr)
		}
	})
	if err != nil {
		padtable.ReleaseLocked(e.Ctrl, slot)
		return err
	}

	return nil
}

// Disconnect releases the slot bound to dev, if any. Safe to call on a
// device that is not (or no longer) bound.
func (e *Enumerator) Disconnect(dev usbhost.DeviceID) {
	idx, ok := e.Table.FindByDevice(dev)
	if !ok {
		return
	}
	padtable.Release(e.Ctrl, e.Table.Slot(idx))
}
