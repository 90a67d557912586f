package fiber_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corostack/fiber"
)

func TestSliceStackBaseLimit(t *testing.T) {
	buf := make([]byte, 4096)
	s := fiber.NewSliceStack(buf)
	require.Zero(t, s.Limit()%fiber.Alignment)
	require.Zero(t, s.Base()%fiber.Alignment)
	require.Greater(t, s.Base(), s.Limit())
	require.LessOrEqual(t, s.Base()-s.Limit(), uintptr(len(buf)))
}

func TestSliceStackTooSmallPanics(t *testing.T) {
	require.Panics(t, func() {
		fiber.NewSliceStack(make([]byte, 1))
	})
}

func TestHeapStackBaseLimit(t *testing.T) {
	s := fiber.NewHeapStack(8192)
	require.Zero(t, s.Limit()%fiber.Alignment)
	require.Equal(t, uintptr(8192), s.Base()-s.Limit())
}

func TestOSStackIsGuarded(t *testing.T) {
	s, err := fiber.NewOSStack(0)
	require.NoError(t, err)
	defer s.Close()

	var _ fiber.Guarded = s
	require.Greater(t, s.Base(), s.Limit())
}
