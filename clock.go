package guid

import (
	"encoding/binary"
	"fmt"
	"io"
	"sync"
	"time"
)

// gregorianOffset is the number of 100-nanosecond intervals between the
// UUID epoch (1582-10-15 00:00:00 UTC) and the Unix epoch.
const gregorianOffset = 122192928000000000

// Clock supplies the current instant to a Generator.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface.
type ClockFunc func() time.Time

// Now calls f.
func (f ClockFunc) Now() time.Time { return f() }

// SystemClock reads the wall clock.
var SystemClock Clock = ClockFunc(time.Now)

// MaxTicks is the largest timestamp a version 1 UUID can carry.
const MaxTicks = 1<<60 - 1

var (
	// MinTime and MaxTime bound the instants Ticks can represent.
	MinTime = time.Date(1582, 10, 15, 0, 0, 0, 0, time.UTC)
	MaxTime = TimeFromTicks(MaxTicks)
)

// Ticks converts t to 100-nanosecond intervals since the UUID epoch. The
// result is only meaningful for t within [MinTime, MaxTime]; see InRange.
func Ticks(t time.Time) uint64 {
	return uint64(t.Unix()*1e7 + int64(t.Nanosecond()/100) + gregorianOffset)
}

// InRange reports whether t can be encoded in a version 1 UUID.
func InRange(t time.Time) bool {
	return !t.Before(MinTime) && !t.After(MaxTime)
}

// TimeFromTicks is the inverse of Ticks.
func TimeFromTicks(ticks uint64) time.Time {
	d := int64(ticks) - gregorianOffset
	return time.Unix(d/1e7, (d%1e7)*100).UTC()
}

// ClockState is the mutable part of time-based generation: the last
// timestamp handed out and the clock sequence that separates values
// sharing a timestamp. Generators that must not collide share one
// ClockState by pointer.
//
// The zero value is ready to use; its sequence is seeded from the
// generator's random source on first use.
type ClockState struct {
	mu            sync.Mutex
	seeded        bool
	lastTimestamp uint64
	sequence      uint16
}

// NewClockState returns a state whose sequence starts at seq. It is mostly
// useful in tests that need a known sequence.
func NewClockState(seq uint16) *ClockState {
	return &ClockState{seeded: true, sequence: seq}
}

// Snapshot returns the last timestamp and sequence under the lock.
func (s *ClockState) Snapshot() (lastTimestamp uint64, sequence uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastTimestamp, s.sequence
}

// advance records ts and returns the sequence to embed with it. The
// sequence moves forward whenever ts does not move past the previous
// timestamp.
func (s *ClockState) advance(ts uint64, seed io.Reader) (uint16, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.seeded {
		var b [2]byte
		if _, err := io.ReadFull(seed, b[:]); err != nil {
			return 0, fmt.Errorf("%w: seeding clock sequence: %v", ErrEntropy, err)
		}
		s.sequence = binary.BigEndian.Uint16(b[:])
		s.seeded = true
	}

	if ts <= s.lastTimestamp {
		s.sequence++
	}
	s.lastTimestamp = ts
	return s.sequence, nil
}
