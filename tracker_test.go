package lencode

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestClassTrackerRange(t *testing.T) {
	t.Run("0..6", func(tt *testing.T) {
		tracker := ClassTracker{}
		got := []string{}
		for b := uint64(0); b < 7; b += 1 {
			c, err := tracker.Codeword(b)
			if err != nil {
				tt.Fatalf("Codeword(%d): %+v", b, err)
			}
			got = append(got, c.String())
		}
		expect := []string{"0", "1", "00", "01", "10", "11", "000"}
		if cmp.Equal(got, expect) != true {
			tt.Errorf("%v != %v", got, expect)
		}
		if tracker.Length() != 3 || tracker.Offset() != 6 {
			tt.Errorf("tracker at (%d, %d), want (3, 6)", tracker.Length(), tracker.Offset())
		}
	})
	t.Run("never retreats", func(tt *testing.T) {
		tracker := ClassTracker{}
		prevLength, prevOffset := 0, uint64(0)
		for b := uint64(0); b < 300; b += 1 {
			if _, err := tracker.Codeword(b); err != nil {
				tt.Fatalf("Codeword(%d): %+v", b, err)
			}
			if tracker.Length() < prevLength || tracker.Offset() < prevOffset {
				tt.Fatalf("tracker retreated at %d", b)
			}
			prevLength, prevOffset = tracker.Length(), tracker.Offset()
		}
	})
}

func TestClassTrackerAdvance(t *testing.T) {
	tracker := ClassTracker{}
	require.True(t, tracker.Advance(2))
	require.False(t, tracker.Advance(5))
	require.True(t, tracker.Advance(6))
	require.False(t, tracker.Advance(3))
	require.Equal(t, 3, tracker.Length())
	require.Equal(t, uint64(6), tracker.Offset())
}

func TestClassTrackerOrder(t *testing.T) {
	t.Run("same class out of order", func(tt *testing.T) {
		tracker := ClassTracker{}
		for _, b := range []uint64{5, 3, 4, 2} {
			c, err := tracker.Codeword(b)
			require.NoError(tt, err)
			require.Equal(tt, 2, c.Length)
			require.Equal(tt, b-2, c.Value)
		}
	})
	t.Run("0 and 1 after a long class", func(tt *testing.T) {
		tracker := ClassTracker{}
		_, err := tracker.Codeword(20)
		require.NoError(tt, err)
		c, err := tracker.Codeword(1)
		require.NoError(tt, err)
		require.Equal(tt, "1", c.String())
	})
	t.Run("class retreat", func(tt *testing.T) {
		tracker := ClassTracker{}
		_, err := tracker.Codeword(6)
		require.NoError(tt, err)
		_, err = tracker.Codeword(2)
		require.ErrorIs(tt, err, ErrClassRetreat)
		require.ErrorIs(tt, err, ErrValue)
	})
}
