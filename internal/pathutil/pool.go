package pathutil

import "sync"

// Most documents nest well under 8 levels. Builders that grew past
// maxPooledCap are dropped rather than pooled so one pathological
// document does not pin memory for the rest of the process.
const (
	defaultSegmentCap = 8
	maxPooledCap      = 64
)

var builderPool = sync.Pool{
	New: func() any {
		return &PathBuilder{segs: make([]string, 0, defaultSegmentCap)}
	},
}

// Get returns an empty PathBuilder from the pool.
func Get() *PathBuilder {
	b := builderPool.Get().(*PathBuilder)
	b.Reset()
	return b
}

// Put returns a builder to the pool once the caller is done with it.
func Put(b *PathBuilder) {
	if b == nil || cap(b.segs) > maxPooledCap {
		return
	}
	builderPool.Put(b)
}
