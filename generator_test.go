package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corostack/fiber"
)

const testStackSize = 64 * 1024

func newTestStack(t *testing.T) fiber.HeapStack {
	t.Helper()
	return fiber.NewHeapStack(testStackSize)
}

func TestIncrementGenerator(t *testing.T) {
	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[int, int], x0 int) {
		x := x0
		for x != 0 {
			x = y.Suspend(x + 1)
		}
	})
	require.NoError(t, err)

	v, ok := gen.Resume(2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	v, ok = gen.Resume(3)
	require.True(t, ok)
	require.Equal(t, 4, v)

	v, ok = gen.Resume(0)
	require.False(t, ok)
	require.Zero(t, v)

	require.Equal(t, fiber.Unavailable, gen.State())
	_ = gen.Unwrap()
}

func TestNaturalNumberIterator(t *testing.T) {
	stack := newTestStack(t)
	it, err := fiber.NewIterator(stack, func(y *fiber.Yielder[struct{}, int]) {
		for i := 1; ; i++ {
			y.Suspend(i)
		}
	})
	require.NoError(t, err)

	for i := 1; i <= 3; i++ {
		v, ok := it.Next()
		require.True(t, ok)
		require.Equal(t, i, v)
	}
}

func TestPanicAfterStart(t *testing.T) {
	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[struct{}, struct{}], _ struct{}) {
		panic("boom")
	})
	require.NoError(t, err)

	require.PanicsWithValue(t, "boom", func() {
		gen.Resume(struct{}{})
	})
}

func TestPanicAfterOneSuspend(t *testing.T) {
	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[struct{}, struct{}], _ struct{}) {
		y.Suspend(struct{}{})
		panic("boom")
	})
	require.NoError(t, err)

	v, ok := gen.Resume(struct{}{})
	require.True(t, ok)
	require.Equal(t, struct{}{}, v)

	require.PanicsWithValue(t, "boom", func() {
		gen.Resume(struct{}{})
	})
}

func TestResumeAfterTerminationReturnsFalse(t *testing.T) {
	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[struct{}, struct{}], _ struct{}) {})
	require.NoError(t, err)

	_, ok := gen.Resume(struct{}{})
	require.False(t, ok)

	_, ok = gen.Resume(struct{}{})
	require.False(t, ok)
}

func TestUnwrapPanicsWhileLive(t *testing.T) {
	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[struct{}, struct{}], _ struct{}) {
		y.Suspend(struct{}{})
	})
	require.NoError(t, err)

	_, _ = gen.Resume(struct{}{})
	require.Panics(t, func() {
		gen.Unwrap()
	})
}

func TestMoveGeneratorAfterFirstResume(t *testing.T) {
	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[int, int], x0 int) {
		x := x0
		for x != 0 {
			x = y.Suspend(x + 1)
		}
	})
	require.NoError(t, err)

	v, ok := gen.Resume(1)
	require.True(t, ok)
	require.Equal(t, 2, v)

	moved := passThrough(gen)

	v, ok = moved.Resume(2)
	require.True(t, ok)
	require.Equal(t, 3, v)

	_, ok = moved.Resume(0)
	require.False(t, ok)
}

func passThrough(g *fiber.Generator[int, int]) *fiber.Generator[int, int] { return g }

func TestStackTooSmallRejected(t *testing.T) {
	_, err := fiber.New(fiber.NewHeapStack(8), func(y *fiber.Yielder[struct{}, struct{}], _ struct{}) {})
	require.ErrorIs(t, err, fiber.ErrStackTooSmall)
}

func TestCloseRunsDestructorExactlyOnce(t *testing.T) {
	stack := newTestStack(t)
	var cleanups int
	gen, err := fiber.New(stack, func(y *fiber.Yielder[struct{}, struct{}], _ struct{}) {
		defer func() { cleanups++ }()
		for {
			y.Suspend(struct{}{})
		}
	})
	require.NoError(t, err)

	_, ok := gen.Resume(struct{}{})
	require.True(t, ok)

	gen.Close()
	require.Equal(t, 1, cleanups)
}

func TestLargeValueRoundTrip(t *testing.T) {
	type large [10]uint64

	stack := newTestStack(t)
	gen, err := fiber.New(stack, func(y *fiber.Yielder[large, large], first large) {
		v := first
		for {
			v = y.Suspend(v)
		}
	})
	require.NoError(t, err)

	in := large{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	v, ok := gen.Resume(in)
	require.True(t, ok)
	require.Equal(t, in, v)

	in2 := large{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	v, ok = gen.Resume(in2)
	require.True(t, ok)
	require.Equal(t, in2, v)
}
