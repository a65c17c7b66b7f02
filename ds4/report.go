package ds4

import (
	"encoding/binary"
	"errors"
)

// ErrEmptyReport is returned (and the report dropped) when the first
// byte of the raw buffer is zero, indicating an empty poll.
var ErrEmptyReport = errors.New("ds4: empty report")

// RawReport is the DS4 input report, hand-decoded from offset 0. The
// 4-bit D-pad enum is resolved into the four directional booleans at
// decode time via dpadTable, so downstream mapping never sees the raw
// hat-switch code.
type RawReport struct {
	LX, LY int8
	RX, RY int8

	Up, Down, Left, Right bool

	Square, Cross, Circle, Triangle bool
	L1, R1                         bool
	L2Button, R2Button              bool
	Share, Options                  bool
	L3, R3                          bool
	PS, TouchpadClick               bool

	L2, R2 byte // analog trigger pressure

	Power       byte // raw battery/charge byte (level in low nibble, charging flag bit4)
	UsbPlugged  bool

	TPad bool

	Finger1Active bool
	Finger1X      uint16
	Finger2Active bool
	Finger2X      uint16
}

var dpadTable = [9]struct{ up, down, left, right bool }{
	DPadUp:        {up: true},
	DPadUpRight:   {up: true, right: true},
	DPadRight:     {right: true},
	DPadDownRight: {down: true, right: true},
	DPadDown:      {down: true},
	DPadDownLeft:  {down: true, left: true},
	DPadLeft:      {left: true},
	DPadUpLeft:    {up: true, left: true},
	DPadNeutral:   {},
}

// Decode hand-decodes a raw DS4 input report. Reports whose first byte
// is zero are discarded (ErrEmptyReport).
func Decode(raw []byte) (RawReport, error) {
	var r RawReport
	if len(raw) == 0 || raw[0] == 0 {
		return r, ErrEmptyReport
	}
	if len(raw) < 20 {
		return r, errors.New("ds4: short report")
	}

	r.LX = int8(int16(raw[0]) - 128)
	r.LY = int8(int16(raw[1]) - 128)
	r.RX = int8(int16(raw[2]) - 128)
	r.RY = int8(int16(raw[3]) - 128)

	dpad := raw[4] & 0x0F
	if int(dpad) >= len(dpadTable) {
		dpad = DPadNeutral
	}
	dir := dpadTable[dpad]
	r.Up, r.Down, r.Left, r.Right = dir.up, dir.down, dir.left, dir.right

	r.Square = raw[4]&0x10 != 0
	r.Cross = raw[4]&0x20 != 0
	r.Circle = raw[4]&0x40 != 0
	r.Triangle = raw[4]&0x80 != 0

	r.L1 = raw[5]&0x01 != 0
	r.R1 = raw[5]&0x02 != 0
	r.L2Button = raw[5]&0x04 != 0
	r.R2Button = raw[5]&0x08 != 0
	r.Share = raw[5]&0x10 != 0
	r.Options = raw[5]&0x20 != 0
	r.L3 = raw[5]&0x40 != 0
	r.R3 = raw[5]&0x80 != 0

	r.PS = raw[6]&0x01 != 0
	r.TouchpadClick = raw[6]&0x02 != 0

	r.L2 = raw[7]
	r.R2 = raw[8]

	r.Power = raw[9]
	r.UsbPlugged = raw[10]&0x01 != 0

	r.TPad = raw[11]&0x01 != 0

	r.Finger1Active = raw[12]&0x80 == 0
	r.Finger1X = binary.LittleEndian.Uint16(raw[13:15])
	r.Finger2Active = raw[16]&0x80 == 0
	r.Finger2X = binary.LittleEndian.Uint16(raw[17:19])

	return r, nil
}
