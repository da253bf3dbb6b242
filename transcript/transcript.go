// Package transcript implements a Fiat-Shamir transcript: a deterministic,
// hash-based channel that turns an interactive protocol into a
// non-interactive one by deriving verifier challenges from the history of
// everything absorbed so far.
package transcript

import (
	"crypto/sha256"
	"encoding/binary"
	"hash"
	"math/rand/v2"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Transcript wraps a running hash state that the prover and verifier feed
// identically, in the same order, so that they derive the same challenges.
//
// A Transcript is single-owner: it is not safe to share a *Transcript
// across goroutines, and callers running independent proving sessions
// concurrently must each construct their own.
type Transcript struct {
	hasher hash.Hash
}

// New returns an empty transcript.
func New() *Transcript {
	return &Transcript{hasher: sha256.New()}
}

// Absorb feeds data into the transcript's hash state.
func (t *Transcript) Absorb(data []byte) {
	t.hasher.Write(data)
}

// AbsorbMany absorbs each byte slice in order; equivalent to calling Absorb
// repeatedly.
func (t *Transcript) AbsorbMany(chunks ...[]byte) {
	for _, c := range chunks {
		t.Absorb(c)
	}
}

// Squeeze finalizes the current state into a digest, re-absorbs that digest
// so that the next squeeze diverges, and uses the digest to seed a
// deterministic RNG from which a field element is sampled.
//
// The re-absorption is load-bearing: without it, two consecutive squeezes
// with no intervening absorb would return the same value.
func (t *Transcript) Squeeze() fr.Element {
	digest := t.hasher.Sum(nil)
	t.hasher.Write(digest)

	var seed [32]byte
	copy(seed[:], digest)
	rng := rand.NewChaCha8(seed)

	var buf [32]byte
	for i := 0; i < 4; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], rng.Uint64())
	}

	var f fr.Element
	f.SetBytes(buf[:])
	return f
}

// SqueezeN performs k independent squeezes and returns the resulting
// challenges in order.
func (t *Transcript) SqueezeN(k int) []fr.Element {
	out := make([]fr.Element, k)
	for i := range out {
		out[i] = t.Squeeze()
	}
	return out
}
