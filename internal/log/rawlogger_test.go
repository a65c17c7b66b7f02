package log_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ds3ds4/ds34drv/internal/log"
)

func TestRawLoggerLogFormatsDirectionAndHex(t *testing.T) {
	var buf bytes.Buffer
	rl := log.NewRaw(&buf)

	rl.Log(true, []byte{0x01, 0xAB})
	out := buf.String()
	assert.Contains(t, out, "PAD->HOST")
	assert.Contains(t, out, "01 ab")

	buf.Reset()
	rl.Log(false, []byte{0xFF})
	out = buf.String()
	assert.Contains(t, out, "HOST->PAD")
}

func TestRawLoggerLogIgnoresEmptyData(t *testing.T) {
	var buf bytes.Buffer
	rl := log.NewRaw(&buf)
	rl.Log(true, nil)
	assert.Empty(t, buf.String())
}

func TestRawLoggerNilWriterIsNoop(t *testing.T) {
	rl := log.NewRaw(nil)
	assert.NotPanics(t, func() { rl.Log(true, []byte{0x01}) })
}
