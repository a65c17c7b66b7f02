// Package ds4 holds the DualShock 4 (and slim/v2) wire layout: USB
// identification, report IDs/sizes, button/D-pad/touchpad encodings,
// and the palettes the per-model init and output builder draw from.
package ds4

// Product IDs. DS4-slim (v2) reports bNumEndpoints == 0 during
// enumeration, which the USB Enumeration component must tolerate.
const (
	ProductID     uint16 = 0x05C4
	ProductIDSlim uint16 = 0x09CC
)

// Report IDs and sizes on the wire.
const (
	InputReportID  = 0x01
	InputReportSize = 64

	OutputReportID   = 0x02
	OutputReportSize = 32

	FeatureReportIDBdaddr = 0x09
	BdaddrFeatureLen      = 8

	FeatureReportIDLinkKey = 0x13
	LinkKeyReportLen       = 24
)

// LinkKey is the fixed 16-byte secret DS4 requires to authorize a
// pairing to a specific Bluetooth host.
var LinkKey = [16]byte{
	0x56, 0xE8, 0x81, 0x38, 0x08, 0x06, 0xF7, 0xB5,
	0x29, 0x20, 0x73, 0x85, 0x0E, 0xE6, 0x12, 0x7E,
}

// D-pad 4-bit direction enum: 0..7 are the eight compass points
// clockwise from Up, 8 is neutral (no direction pressed).
const (
	DPadUp = iota
	DPadUpRight
	DPadRight
	DPadDownRight
	DPadDown
	DPadDownLeft
	DPadLeft
	DPadUpLeft
	DPadNeutral
)

// Touchpad geometry: a 1920x942 surface; X < 960 is the left half.
const (
	TouchpadMaxX     uint16 = 1920
	TouchpadMaxY     uint16 = 942
	TouchpadMidpoint uint16 = 960
)

// Battery byte layout: low nibble is the level, bit4 is the charging flag.
const (
	BatteryLevelMask    byte = 0x0F
	BatteryChargingFlag byte = 0x10
	BatteryFullyCharged byte = 0x0B
)

// PlayerLEDBright is the slot-indexed DS4 RGB palette (bright variants)
// used by per-model init and restored whenever PS is released.
var PlayerLEDBright = [2][3]byte{
	{0x00, 0x00, 0xFF}, // slot 0: blue
	{0xFF, 0x00, 0x00}, // slot 1: red
}

// Output byte offsets within the 32-byte OUTPUT report.
const (
	OutOffsetReportID    = 0
	OutOffsetFlags       = 1
	OutOffsetRumbleRight = 4
	OutOffsetRumbleLeft  = 5
	OutOffsetLedRed      = 6
	OutOffsetLedGreen    = 7
	OutOffsetLedBlue     = 8
	OutOffsetFlashOn     = 9
	OutOffsetFlashOff    = 10
)

// FeatureEnableMask enables rumble, LED color, and blink timing in the
// same output report.
const FeatureEnableMask byte = 0xFF

// FlashDuration is written to both flash-on and flash-off slots when
// the blink flag is set.
const FlashDuration byte = 0x80
