package rng

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/niluxv/fast-erasure-shake-rng/entropy"
	"github.com/niluxv/fast-erasure-shake-rng/internal/sponge"
)

// Scenario A: seeded generator produces two distinct successive outputs.
func TestDistinctSuccessiveOutputs(t *testing.T) {
	r := NewUnseeded()
	r.Seed([]byte("HELLO WORLD"))

	out1 := GetRandomBytes(r, 32)
	out2 := GetRandomBytes(r, 32)

	require.NotEqual(t, out1, out2)
	require.NotEqual(t, make([]byte, 32), out1)
	require.NotEqual(t, make([]byte, 32), out2)
}

// Scenario B/5: two independently constructed, identically-seeded
// generators on the same host produce byte-identical output for an
// identical request sequence: the generator is deterministic given
// identical inputs.
func TestDeterministicGivenSameSeed(t *testing.T) {
	r1 := NewUnseeded()
	r2 := NewUnseeded()
	r1.Seed([]byte("some seed material"))
	r2.Seed([]byte("some seed material"))

	require.Equal(t, GetRandomBytes(r1, 100), GetRandomBytes(r2, 100))
}

// Scenario C: constructing from a 64-byte seed and filling a short,
// non-rate-aligned buffer yields nonzero output and leaves the
// zeroized-capacity region wiped.
func TestFillShortBufferWipesZeroizedCapacity(t *testing.T) {
	r := NewUnseeded()
	var seed [64]byte
	for i := range seed {
		seed[i] = 0x25
	}
	r.Seed(seed[:])

	out := make([]byte, 15)
	r.FillRandomBytes(out)

	require.NotEqual(t, make([]byte, 15), out)

	view := r.inner.RateAndZeroizedCapacityBytesView()
	zeroized := view[sponge.RateBytes:]
	for _, b := range zeroized {
		require.Zero(t, b)
	}
}

// Scenario D: seeding with an empty byte string still changes the state
// relative to the pure diversifier post-state, because one extra padded
// absorb (and thus permutation) always runs.
func TestSeedEmptyChangesState(t *testing.T) {
	withoutExtra := NewUnseeded()
	withExtra := NewUnseeded()
	withExtra.Seed(nil)

	require.NotEqual(t, withoutExtra.inner, withExtra.inner)
}

// Scenario E: seeding with exactly one rate-sized block of data performs
// one full-block absorb followed by one empty padded-tail absorb: two
// permutation calls, and a state distinct from seeding with a
// shorter message.
func TestSeedExactlyOneBlock(t *testing.T) {
	r1 := NewUnseeded()
	r1.Seed(make([]byte, sponge.RateBytes)) // one full rate-sized block of zero bytes

	r2 := NewUnseeded()
	r2.Seed(make([]byte, sponge.RateBytes-1))

	require.NotEqual(t, r1.inner, r2.inner)
}

// Scenario F: filling 208 bytes (exactly RateBytes+RateAndZeroizedCapacityBytes)
// runs exactly one initial-output and one intermediate-output,
// then one wipe, leaving output fully populated.
func TestFillAcrossTwoChunks(t *testing.T) {
	r := NewUnseeded()
	r.Seed([]byte("seed for scenario F"))

	out := make([]byte, 208)
	r.FillRandomBytes(out)

	allZero := true
	for _, b := range out {
		if b != 0 {
			allZero = false
			break
		}
	}
	require.False(t, allZero)
}

func TestSeedWith64PropagatesProducerError(t *testing.T) {
	r := NewUnseeded()
	before := r.inner

	wantErr := errors.New("producer failed")
	err := r.SeedWith64(func(buf []byte) error {
		return wantErr
	})

	require.ErrorIs(t, err, wantErr)
	require.Equal(t, before, r.inner, "state must be untouched when the producer fails")
}

func TestSeedWith64ScrubsOnSuccessAndFailure(t *testing.T) {
	r := NewUnseeded()

	var captured []byte
	err := r.SeedWith64(func(buf []byte) error {
		captured = buf
		for i := range buf {
			buf[i] = 0xAA
		}
		return nil
	})
	require.NoError(t, err)
	for _, b := range captured {
		require.Zero(t, b, "seeding scratch buffer must be scrubbed after use")
	}

	captured = nil
	wantErr := errors.New("producer failed")
	err = r.SeedWith64(func(buf []byte) error {
		captured = buf
		for i := range buf {
			buf[i] = 0xAA
		}
		return wantErr
	})
	require.ErrorIs(t, err, wantErr)
	for _, b := range captured {
		require.Zero(t, b, "seeding scratch buffer must be scrubbed after a failed fill")
	}
}

type stubSource struct {
	fillErr error
}

func (s stubSource) Fill(buf []byte) error {
	if s.fillErr != nil {
		return s.fillErr
	}
	for i := range buf {
		buf[i] = byte(i)
	}
	return nil
}

func TestNewFromSourcePropagatesError(t *testing.T) {
	wantErr := errors.New("entropy unavailable")
	_, err := NewFromSource(stubSource{fillErr: wantErr})
	require.ErrorIs(t, err, wantErr)
}

func TestNewFromSourceSeedsSuccessfully(t *testing.T) {
	r, err := NewFromSource(stubSource{})
	require.NoError(t, err)
	require.NotNil(t, r)

	out := GetRandomBytes(r, 32)
	require.NotEqual(t, make([]byte, 32), out)
}

func TestDestroyScrubsState(t *testing.T) {
	r := NewUnseeded()
	r.Seed([]byte("data to destroy"))
	r.Destroy()

	zero := sponge.New()
	require.Equal(t, zero, r.inner)
}

var _ entropy.Source = stubSource{}
