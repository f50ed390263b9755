package domain

import (
	"crypto/rand"
	"fmt"
)

// Cabin layout: rows of six seats lettered A-F, row numbers starting at 1.
const seatsPerRow = 6

var seatLetters = [seatsPerRow]byte{'A', 'B', 'C', 'D', 'E', 'F'}

// SeatLabel returns the label of the i-th seat (zero-based) in row-major
// order: 0 -> "1A", 5 -> "1F", 6 -> "2A".
func SeatLabel(i int) string {
	return fmt.Sprintf("%d%c", i/seatsPerRow+1, seatLetters[i%seatsPerRow])
}

// AllocateSeat picks the lowest free seat in row-major order among the seats
// not held by an active booking. Allocation is deterministic so two callers
// racing for the last seat collide on the same label and the unique index
// rejects one of them instead of both silently succeeding.
func AllocateSeat(totalSeats int, taken []string) (string, error) {
	used := make(map[string]struct{}, len(taken))
	for _, s := range taken {
		used[s] = struct{}{}
	}
	for i := 0; i < totalSeats; i++ {
		label := SeatLabel(i)
		if _, ok := used[label]; !ok {
			return label, nil
		}
	}
	return "", ErrFlightSoldOut
}

// Booking references are "BK" plus six characters from an alphabet without
// 0/O/1/I so the code survives being read over the phone.
const referenceAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"

const referenceLength = 6

// NewReference returns a candidate booking reference. Uniqueness is enforced
// by the database; callers retry with a fresh candidate on collision.
func NewReference() string {
	buf := make([]byte, referenceLength)
	if _, err := rand.Read(buf); err != nil {
		panic(fmt.Sprintf("read random bytes: %v", err))
	}
	for i, b := range buf {
		buf[i] = referenceAlphabet[int(b)%len(referenceAlphabet)]
	}
	return "BK" + string(buf)
}
