package guid

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"io"
	"time"
)

// Generator produces time-based (version 1) UUIDs. It is safe for
// concurrent use; the only shared state is its ClockState.
type Generator struct {
	state      *ClockState
	clock      Clock
	randReader io.Reader
}

// NewGenerator creates a generator with its own ClockState, the system
// clock and crypto/rand.
func NewGenerator() *Generator {
	return NewGeneratorWithState(nil, nil, nil)
}

// NewGeneratorWithReader creates a generator that draws node bytes and the
// initial sequence from r. This is primarily useful for testing with
// deterministic random sources.
func NewGeneratorWithReader(r io.Reader) *Generator {
	return NewGeneratorWithState(nil, nil, r)
}

// NewGeneratorWithState creates a generator over an existing state, clock
// and random source. Nil arguments select a fresh state, SystemClock and
// crypto/rand respectively.
func NewGeneratorWithState(state *ClockState, clock Clock, r io.Reader) *Generator {
	if state == nil {
		state = &ClockState{}
	}
	if clock == nil {
		clock = SystemClock
	}
	if r == nil {
		r = rand.Reader
	}
	return &Generator{state: state, clock: clock, randReader: r}
}

// State returns the generator's clock state so it can be shared.
func (g *Generator) State() *ClockState {
	return g.state
}

// New generates a version 1 UUID for the generator clock's current time.
func (g *Generator) New() (UUID, error) {
	return g.NewAt(g.clock.Now())
}

// NewAt generates a version 1 UUID for t. Calls that land on the same or
// an earlier 100ns tick than the previous call advance the clock sequence.
// Instants outside [MinTime, MaxTime] are rejected with ErrInvalidArgument
// and leave the clock state untouched.
//
// The node is six random bytes with the multicast bit set, so it can never
// be mistaken for a real IEEE 802 address.
func (g *Generator) NewAt(t time.Time) (UUID, error) {
	if !InRange(t) {
		return Nil, fmt.Errorf("%w: time %s outside the version 1 range", ErrInvalidArgument, t.Format(time.RFC3339Nano))
	}
	ts := Ticks(t)

	seq, err := g.state.advance(ts, g.randReader)
	if err != nil {
		return Nil, err
	}

	var node [6]byte
	if _, err := io.ReadFull(g.randReader, node[:]); err != nil {
		return Nil, fmt.Errorf("%w: reading node: %v", ErrEntropy, err)
	}
	node[0] |= 0x01

	return packTimeBased(ts, seq, node[:]), nil
}

// NewFromParts assembles a version 1 UUID from a 60-bit timestamp, a
// 2-byte clock sequence and a 6-byte node. No state is consulted.
func NewFromParts(ticks uint64, clockSeq, node []byte) (UUID, error) {
	if ticks > MaxTicks {
		return Nil, fmt.Errorf("%w: timestamp %d exceeds 60 bits", ErrInvalidArgument, ticks)
	}
	if len(clockSeq) != 2 {
		return Nil, fmt.Errorf("%w: clock sequence must be 2 bytes, got %d", ErrInvalidArgument, len(clockSeq))
	}
	if len(node) != 6 {
		return Nil, fmt.Errorf("%w: node must be 6 bytes, got %d", ErrInvalidArgument, len(node))
	}
	return packTimeBased(ticks, binary.BigEndian.Uint16(clockSeq), node), nil
}

func packTimeBased(ts uint64, seq uint16, node []byte) UUID {
	var u UUID
	binary.BigEndian.PutUint32(u[0:4], uint32(ts))
	binary.BigEndian.PutUint16(u[4:6], uint16(ts>>32))
	binary.BigEndian.PutUint16(u[6:8], uint16(ts>>48)&0x0fff|0x1000)
	u[8] = byte((seq&0x3f00)>>8) | 0x80
	u[9] = byte(seq)
	copy(u[10:], node)
	return u
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = guid.Must(generator.New())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}

var defaultGenerator = NewGenerator()

// NewSequential generates a version 1 UUID from the package-level
// generator.
func NewSequential() (UUID, error) {
	return defaultGenerator.New()
}

// Timestamp returns the 60-bit count of 100ns intervals since 1582-10-15
// embedded in a version 1 UUID, or 0 for other versions.
func (u UUID) Timestamp() uint64 {
	if u.Version() != VersionTimeBased {
		return 0
	}
	return uint64(binary.BigEndian.Uint16(u[6:8])&0x0fff)<<48 |
		uint64(binary.BigEndian.Uint16(u[4:6]))<<32 |
		uint64(binary.BigEndian.Uint32(u[0:4]))
}

// Time returns the instant embedded in a version 1 UUID, or the zero time
// for other versions.
func (u UUID) Time() time.Time {
	if u.Version() != VersionTimeBased {
		return time.Time{}
	}
	return TimeFromTicks(u.Timestamp())
}

// ClockSequence returns the 14-bit clock sequence of a version 1 UUID.
func (u UUID) ClockSequence() int {
	return int(binary.BigEndian.Uint16(u[8:10]) & 0x3fff)
}

// NodeID returns the 6-byte node field.
func (u UUID) NodeID() []byte {
	node := make([]byte, 6)
	copy(node, u[10:])
	return node
}
