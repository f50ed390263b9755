package domain

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSeatLabel(t *testing.T) {
	assert.Equal(t, "1A", SeatLabel(0))
	assert.Equal(t, "1F", SeatLabel(5))
	assert.Equal(t, "2A", SeatLabel(6))
	assert.Equal(t, "30F", SeatLabel(179))
}

func TestAllocateSeat_PicksLowestFree(t *testing.T) {
	seat, err := AllocateSeat(180, nil)
	assert.NoError(t, err)
	assert.Equal(t, "1A", seat)

	seat, err = AllocateSeat(180, []string{"1A", "1B", "1C"})
	assert.NoError(t, err)
	assert.Equal(t, "1D", seat)

	// A hole left by a cancellation is reused before later rows.
	seat, err = AllocateSeat(180, []string{"1A", "1C", "1D", "1E", "1F", "2A"})
	assert.NoError(t, err)
	assert.Equal(t, "1B", seat)
}

func TestAllocateSeat_Deterministic(t *testing.T) {
	taken := []string{"1A", "1B"}
	first, err := AllocateSeat(30, taken)
	assert.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, err := AllocateSeat(30, taken)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestAllocateSeat_SoldOut(t *testing.T) {
	taken := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		taken = append(taken, SeatLabel(i))
	}
	_, err := AllocateSeat(6, taken)
	assert.ErrorIs(t, err, ErrFlightSoldOut)
}

func TestNewReference_Format(t *testing.T) {
	ref := NewReference()
	assert.Len(t, ref, 8)
	assert.True(t, strings.HasPrefix(ref, "BK"))
	for _, ch := range ref[2:] {
		assert.Contains(t, referenceAlphabet, string(ch))
	}
}

func TestNewReference_NoCollisionsAcrossMany(t *testing.T) {
	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		ref := NewReference()
		_, dup := seen[ref]
		assert.False(t, dup, "duplicate reference %s", ref)
		seen[ref] = struct{}{}
	}
}
