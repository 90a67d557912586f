//go:build go1.23

package fiber

import "iter"

// Seq adapts Iterator to range-over-func, for toolchains new enough to
// support it. The core package keeps its go 1.21 floor, so this lives in
// its own file gated
// on the language feature rather than raising the module floor.
func (it *Iterator[O]) Seq() iter.Seq[O] {
	return func(yield func(O) bool) {
		for {
			v, ok := it.Next()
			if !ok {
				return
			}
			if !yield(v) {
				return
			}
		}
	}
}
