package differ

import "sync"

// Typical comparisons find few differences; similar documents find none.
const differenceSliceCap = 16

var differenceSlicePool = sync.Pool{
	New: func() any {
		s := make([]Difference, 0, differenceSliceCap)
		return &s
	},
}

func getDifferenceSlice() *[]Difference {
	s := differenceSlicePool.Get().(*[]Difference)
	*s = (*s)[:0]
	return s
}

func putDifferenceSlice(s *[]Difference) {
	if s == nil || cap(*s) > 128 {
		return
	}
	differenceSlicePool.Put(s)
}
