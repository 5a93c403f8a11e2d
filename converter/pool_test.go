package converter

import (
	"strings"
	"testing"
)

func TestBufferPool_ResetOnGet(t *testing.T) {
	buf := getBuffer()
	buf.WriteString("leftover")
	putBuffer(buf)

	buf2 := getBuffer()
	if buf2.Len() != 0 {
		t.Errorf("expected empty buffer, got len=%d", buf2.Len())
	}
	putBuffer(buf2)
}

func TestBufferPool_DropsOversized(t *testing.T) {
	buf := getBuffer()
	buf.WriteString(strings.Repeat("x", maxPooledBufferCap+1))
	// Must not panic; oversized buffers are simply not pooled.
	putBuffer(buf)
	putBuffer(nil)
}
