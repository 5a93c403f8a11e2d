package converter

import (
	"bytes"
	"sync"
)

// Don't pool buffers that grew past this; let GC take them.
const maxPooledBufferCap = 1 << 20

var bufferPool = sync.Pool{
	New: func() any {
		return new(bytes.Buffer)
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf == nil || buf.Cap() > maxPooledBufferCap {
		return
	}
	bufferPool.Put(buf)
}
