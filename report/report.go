// Package report implements the Report Parser (component E): it
// decodes either pad model's raw input report into the 18-byte unified
// input vector, and separately derives the LED state that PS-button
// battery indication would have overwritten as a side effect in the
// original design (spec.md §9's suggested pure-decode/derive split).
package report

import (
	"errors"

	"github.com/ds3ds4/ds34drv/ds3"
	"github.com/ds3ds4/ds34drv/ds4"
	"github.com/ds3ds4/ds34drv/padtable"
)

var errUnknownModel = errors.New("report: unknown pad model")

// Size is the length of the unified input vector.
const Size = 18

// Unified is the 18-byte vector every pad model normalizes into.
type Unified [Size]byte

// Decode parses a raw input report for the given model into the
// unified vector. It returns the underlying ds3.ErrEmptyReport /
// ds4.ErrEmptyReport unchanged so callers can discard empty polls.
func Decode(model padtable.Model, raw []byte) (Unified, error) {
	u, _, _, _, err := DecodeFull(model, raw)
	return u, err
}

// DecodeFull parses a raw input report like Decode, additionally
// returning the fields DeriveLED needs: whether PS is held, the raw
// battery/charge byte, and (DS4 only) the USB-plugged flag.
func DecodeFull(model padtable.Model, raw []byte) (u Unified, psHeld bool, power byte, usbPlugged bool, err error) {
	switch model {
	case padtable.ModelDS3:
		r, derr := ds3.Decode(raw)
		if derr != nil {
			return Unified{}, false, 0, false, derr
		}
		return fromDS3(r), r.PSButton, r.Power, false, nil
	case padtable.ModelDS4:
		r, derr := ds4.Decode(raw)
		if derr != nil {
			return Unified{}, false, 0, false, derr
		}
		return fromDS4(r), r.PS, r.Power, r.UsbPlugged, nil
	default:
		return Unified{}, false, 0, false, errUnknownModel
	}
}

func fromDS3(r ds3.RawReport) Unified {
	var u Unified
	u[0] = ^r.ButtonStateL
	u[1] = ^r.ButtonStateH
	u[2] = r.RightStickX
	u[3] = r.RightStickY
	u[4] = r.LeftStickX
	u[5] = r.LeftStickY
	u[6] = r.PressureRight
	u[7] = r.PressureLeft
	u[8] = r.PressureUp
	u[9] = r.PressureDown
	u[10] = r.PressureTriangle
	u[11] = r.PressureCircle
	u[12] = r.PressureCross
	u[13] = r.PressureSquare
	u[14] = r.PressureL1
	u[15] = r.PressureR1
	u[16] = r.PressureL2
	u[17] = r.PressureR2
	return u
}

func boolByte(b bool) byte {
	if b {
		return 255
	}
	return 0
}

func fromDS4(r ds4.RawReport) Unified {
	share := r.Share || (r.TPad && touchHalf(r.Finger1Active, r.Finger1X, false)) ||
		(r.TPad && touchHalf(r.Finger2Active, r.Finger2X, false))
	options := r.Options || (r.TPad && touchHalf(r.Finger1Active, r.Finger1X, true)) ||
		(r.TPad && touchHalf(r.Finger2Active, r.Finger2X, true))

	var b0, b1 byte
	if share {
		b0 |= 0x01
	}
	if r.L3 {
		b0 |= 0x02
	}
	if r.R3 {
		b0 |= 0x04
	}
	if options {
		b0 |= 0x08
	}
	if r.Up {
		b0 |= 0x10
	}
	if r.Right {
		b0 |= 0x20
	}
	if r.Down {
		b0 |= 0x40
	}
	if r.Left {
		b0 |= 0x80
	}

	if r.L2Button {
		b1 |= 0x01
	}
	if r.R2Button {
		b1 |= 0x02
	}
	if r.L1 {
		b1 |= 0x04
	}
	if r.R1 {
		b1 |= 0x08
	}
	if r.Triangle {
		b1 |= 0x10
	}
	if r.Circle {
		b1 |= 0x20
	}
	if r.Cross {
		b1 |= 0x40
	}
	if r.Square {
		b1 |= 0x80
	}

	var u Unified
	u[0] = ^b0
	u[1] = ^b1
	u[2] = byte(int16(r.RX) + 128)
	u[3] = byte(int16(r.RY) + 128)
	u[4] = byte(int16(r.LX) + 128)
	u[5] = byte(int16(r.LY) + 128)
	u[6] = boolByte(r.Right)
	u[7] = boolByte(r.Left)
	u[8] = boolByte(r.Up)
	u[9] = boolByte(r.Down)
	u[10] = boolByte(r.Triangle)
	u[11] = boolByte(r.Circle)
	u[12] = boolByte(r.Cross)
	u[13] = boolByte(r.Square)
	u[14] = boolByte(r.L1)
	u[15] = boolByte(r.R1)
	u[16] = r.L2
	u[17] = r.R2
	return u
}

// touchHalf reports whether an active finger at x lies in the right
// half (wantRight=true) or left half (wantRight=false) of the 1920-wide
// touchpad surface.
func touchHalf(active bool, x uint16, wantRight bool) bool {
	if !active {
		return false
	}
	if wantRight {
		return x >= ds4.TouchpadMidpoint
	}
	return x < ds4.TouchpadMidpoint
}

// DeriveLED computes the slot's OldLED as a function of the decoded
// report, the model's normal palette, and whether PS is held — the
// battery/charge indication side effect spec.md §4.E describes, split
// out as a pure function per spec.md §9.
func DeriveLED(model padtable.Model, slotIndex int, psHeld bool, power byte, usbPlugged bool) [4]byte {
	var led [4]byte
	switch model {
	case padtable.ModelDS3:
		if psHeld {
			if power == ds3.PowerCodeCharging {
				led[0] = ds3.PlayerLED[slotIndex%len(ds3.PlayerLED)]
			} else if int(power) < len(ds3.PowerLevelLED) {
				led[0] = ds3.PowerLevelLED[power]
			}
		} else {
			led[0] = ds3.PlayerLED[slotIndex%len(ds3.PlayerLED)]
		}
		if power == ds3.PowerCodeCharging {
			led[3] = 1
		}
	case padtable.ModelDS4:
		pal := ds4.PlayerLEDBright[slotIndex%len(ds4.PlayerLEDBright)]
		if psHeld {
			led[0], led[1], led[2] = power, 0, 0
		} else {
			led[0], led[1], led[2] = pal[0], pal[1], pal[2]
		}
		if power != ds4.BatteryFullyCharged && usbPlugged {
			led[3] = 1
		}
	}
	return led
}
