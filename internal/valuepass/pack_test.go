package valuepass_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/corostack/fiber/internal/valuepass"
)

func TestPackUnpackSmallValue(t *testing.T) {
	v := 42
	w := valuepass.Pack(&v)
	require.Equal(t, 42, valuepass.Unpack[int](w))
}

func TestPackUnpackLargeValue(t *testing.T) {
	type big struct {
		a, b, c, d uint64
	}
	v := big{1, 2, 3, 4}
	w := valuepass.Pack(&v)
	require.Equal(t, v, valuepass.Unpack[big](w))
}

func TestFitsInWord(t *testing.T) {
	require.True(t, valuepass.FitsInWord(8, 8))
	require.False(t, valuepass.FitsInWord(16, 8))
}
