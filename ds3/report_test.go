package ds3_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ds3ds4/ds34drv/ds3"
)

func rawReport(fields map[int]byte) []byte {
	buf := make([]byte, ds3.RawInputOffset+20)
	buf[0] = 0x01
	for off, v := range fields {
		buf[ds3.RawInputOffset+off] = v
	}
	return buf
}

func TestDecodeEmptyReport(t *testing.T) {
	buf := make([]byte, ds3.RawInputOffset+20)
	_, err := ds3.Decode(buf)
	assert.ErrorIs(t, err, ds3.ErrEmptyReport)
}

func TestDecodeShortReport(t *testing.T) {
	_, err := ds3.Decode([]byte{0x01, 0x00, 0x00})
	assert.Error(t, err)
}

func TestDecodeFields(t *testing.T) {
	buf := rawReport(map[int]byte{
		0:  0xFE, // ButtonStateL
		1:  0xFF, // ButtonStateH
		12: 0x42, // PressureCross
	})
	r, err := ds3.Decode(buf)
	require.NoError(t, err)
	assert.Equal(t, byte(0xFE), r.ButtonStateL)
	assert.Equal(t, byte(0xFF), r.ButtonStateH)
	assert.Equal(t, byte(0x42), r.PressureCross)
}
