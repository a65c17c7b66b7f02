// Package ds3 holds the DualShock 3 wire layout: USB identification,
// report IDs/sizes, the magic "enable reports" feature payload, and the
// palettes the per-model init and output builder draw from.
package ds3

// ProductID is the DS3 USB product ID (vendor is usbhost.SonyVID).
const ProductID uint16 = 0x0268

// Report IDs and sizes on the wire.
const (
	FeatureReportIDEnable  = 0xF4
	FeatureReportIDBdaddr  = 0xF5
	OutputReportID         = 0x01
	OutputReportSize       = 48
	RawInputOffset         = 2 // raw input data begins at this offset
	BdaddrFeatureLen       = 8
)

// EnableReportsPayload is the magic DS3 feature write that must be sent
// before the pad will emit input reports.
var EnableReportsPayload = [4]byte{0x42, 0x0C, 0x00, 0x00}

// PowerCodeCharging is the DS3 power-level enum value meaning "charging
// over USB" rather than a battery percentage tier.
const PowerCodeCharging byte = 0xEE

// PowerLevelLED is the 6-entry table mapping report.Power to a player
// LED primary byte when the PS button is held (battery indication).
var PowerLevelLED = [6]byte{0x01, 0x02, 0x04, 0x08, 0x0C, 0x0E}

// PlayerLED is the slot-indexed player LED pattern byte used by
// per-model init and restored to OldLED whenever PS is released.
var PlayerLED = [2]byte{0x01, 0x02}

// OutputTemplate is the 48-byte DS3 output report template; its fixed
// bytes are opaque per-LED timing/brightness descriptors that must be
// transmitted verbatim alongside the rumble/LED fields this module sets.
var OutputTemplate = [OutputReportSize]byte{
	0x01, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	0xff, 0x27, 0x10, 0x00, 0x32,
	0xff, 0x27, 0x10, 0x00, 0x32,
	0xff, 0x27, 0x10, 0x00, 0x32,
	0xff, 0x27, 0x10, 0x00, 0x32,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00, 0x00, 0x00,
	0x00, 0x00, 0x00,
}

// Output byte offsets within OutputTemplate.
const (
	OutOffsetRumbleRightDuration = 1
	OutOffsetRumbleRightPower    = 2
	OutOffsetRumbleLeftDuration  = 3
	OutOffsetRumbleLeftPower     = 4
	OutOffsetLED                 = 9
	OutOffsetBlink0              = 13
	OutOffsetBlink1              = 18
	OutOffsetBlink2              = 23
	OutOffsetBlink3              = 28
)

// LEDMask keeps only the player-LED bits of led[0] (bit 7 reserved).
const LEDMask byte = 0x7F

// BlinkEnable is written into the four blink-timing slots when the
// slot's blink flag is set.
const BlinkEnable byte = 0x32
