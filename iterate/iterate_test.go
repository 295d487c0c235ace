package iterate_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/korifey/grapht/iterate"
	"github.com/korifey/grapht/status"
)

func TestFromSlice_Order(t *testing.T) {
	it := iterate.FromSlice([]int64{3, 1, 2})
	got, err := iterate.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []int64{3, 1, 2}, got)
}

func TestEmpty_NextFailsWithNoSuchElement(t *testing.T) {
	it := iterate.Empty[int64]()
	require.False(t, it.HasNext())
	_, err := it.Next()
	require.ErrorIs(t, err, iterate.ErrExhausted)
	require.ErrorIs(t, err, status.ErrNoSuchElement)
}

func TestExhausted_NextKeepsFailing(t *testing.T) {
	it := iterate.FromSlice([]string{"a"})
	_, err := it.Next()
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		_, err = it.Next()
		require.ErrorIs(t, err, iterate.ErrExhausted)
	}
}

func TestFromFunc_LazyAndMemoized(t *testing.T) {
	calls := 0
	it := iterate.FromFunc(func() (int, bool, error) {
		calls++
		if calls > 2 {
			return 0, false, nil
		}
		return calls, true, nil
	})
	// Repeated HasNext must not burn elements.
	require.True(t, it.HasNext())
	require.True(t, it.HasNext())
	require.Equal(t, 1, calls)

	got, err := iterate.Collect(it)
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, got)
	require.False(t, it.HasNext())
}

func TestFromFunc_ErrorSurfacesOnNext(t *testing.T) {
	boom := errors.New("walk failed")
	it := iterate.FromFunc(func() (int, bool, error) {
		return 0, false, boom
	})
	require.True(t, it.HasNext(), "pending error must still be deliverable")
	_, err := it.Next()
	require.ErrorIs(t, err, boom)
	require.False(t, it.HasNext())
}
