package fiber

// IterFunc is a generator body that takes no input, for use with
// NewIterator: each Suspend call produces the next element of a lazy
// sequence.
type IterFunc[O any] func(y *Yielder[struct{}, O])

// NewIterator is New specialized to I = struct{}, giving the generator a
// Next method instead of threading a meaningless input through Resume.
func NewIterator[O any](stack Stack, f IterFunc[O]) (*Iterator[O], error) {
	g, err := New(stack, func(y *Yielder[struct{}, O], _ struct{}) {
		f(y)
	})
	if err != nil {
		return nil, err
	}
	return &Iterator[O]{g: g}, nil
}

// Iterator is a Generator[struct{}, O] restricted to the next-value
// protocol: Next() is Resume with an empty input.
type Iterator[O any] struct {
	g *Generator[struct{}, O]
}

// Next advances the sequence, returning its next value and true, or the
// zero value and false once the sequence is exhausted.
func (it *Iterator[O]) Next() (O, bool) {
	return it.g.Resume(struct{}{})
}

// Close forces the underlying generator to unwind (or leaks its stack, on
// platforms without cross-stack unwind support) and reclaims the stack.
func (it *Iterator[O]) Close() Stack {
	return it.g.Close()
}
