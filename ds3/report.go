package ds3

import "errors"

// ErrEmptyReport is returned (and the report dropped) when the first
// byte of the raw buffer is zero, indicating an empty poll on some
// firmware revisions.
var ErrEmptyReport = errors.New("ds3: empty report")

// RawReport is the DS3 input report, hand-decoded from offset 2 of the
// raw buffer per the device's fixed layout.
type RawReport struct {
	ButtonStateL byte
	ButtonStateH byte

	RightStickX byte
	RightStickY byte
	LeftStickX  byte
	LeftStickY  byte

	PressureRight byte
	PressureLeft  byte
	PressureUp    byte
	PressureDown  byte

	PressureTriangle byte
	PressureCircle   byte
	PressureCross    byte
	PressureSquare   byte

	PressureL1 byte
	PressureR1 byte
	PressureL2 byte
	PressureR2 byte

	PSButton bool
	Power    byte
}

// Decode hand-decodes a raw DS3 input report. Reports whose first byte
// is zero are discarded (ErrEmptyReport) per the device's empty-poll
// quirk on some revisions.
func Decode(raw []byte) (RawReport, error) {
	var r RawReport
	if len(raw) == 0 || raw[0] == 0 {
		return r, ErrEmptyReport
	}
	if len(raw) < RawInputOffset+20 {
		return r, errors.New("ds3: short report")
	}
	b := raw[RawInputOffset:]
	r.ButtonStateL = b[0]
	r.ButtonStateH = b[1]
	r.RightStickX = b[2]
	r.RightStickY = b[3]
	r.LeftStickX = b[4]
	r.LeftStickY = b[5]
	r.PressureRight = b[6]
	r.PressureLeft = b[7]
	r.PressureUp = b[8]
	r.PressureDown = b[9]
	r.PressureTriangle = b[10]
	r.PressureCircle = b[11]
	r.PressureCross = b[12]
	r.PressureSquare = b[13]
	r.PressureL1 = b[14]
	r.PressureR1 = b[15]
	r.PressureL2 = b[16]
	r.PressureR2 = b[17]
	r.PSButton = b[18]&0x01 != 0
	r.Power = b[19]
	return r, nil
}
