package kzg

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/giuliop/mlgkr/polynomial/multilinear"
	"github.com/stretchr/testify/require"
)

func feInt(v int64) fr.Element {
	var f fr.Element
	f.SetInt64(v)
	return f
}

func feSlice(vs ...int64) []fr.Element {
	out := make([]fr.Element, len(vs))
	for i, v := range vs {
		out[i] = feInt(v)
	}
	return out
}

func TestCommitProveVerifyRoundTrip(t *testing.T) {
	w := multilinear.New(feSlice(0, 0, 0, 3, 0, 0, 2, 5))
	taus := feSlice(5, 3, 2)
	openings := feSlice(2, 4, 0)

	ts := NewTrustedSetup(taus)

	commitment, err := Commit(ts, w)
	require.NoError(t, err)

	proof, err := Prove(ts, w, openings)
	require.NoError(t, err)
	require.Len(t, proof.QTaus, 3)

	ok := Verify(commitment, openings, proof, ts.EncryptedTaus)
	require.True(t, ok)
}

func TestVerifyRejectsWrongOpening(t *testing.T) {
	w := multilinear.New(feSlice(0, 0, 0, 3, 0, 0, 2, 5))
	taus := feSlice(5, 3, 2)
	openings := feSlice(2, 4, 0)
	wrongOpenings := feSlice(2, 4, 1)

	ts := NewTrustedSetup(taus)
	commitment, err := Commit(ts, w)
	require.NoError(t, err)

	proof, err := Prove(ts, w, openings)
	require.NoError(t, err)

	ok := Verify(commitment, wrongOpenings, proof, ts.EncryptedTaus)
	require.False(t, ok)
}

func TestVerifyRejectsTamperedQuotient(t *testing.T) {
	w := multilinear.New(feSlice(0, 0, 0, 3, 0, 0, 2, 5))
	taus := feSlice(5, 3, 2)
	openings := feSlice(2, 4, 0)

	ts := NewTrustedSetup(taus)
	commitment, err := Commit(ts, w)
	require.NoError(t, err)

	proof, err := Prove(ts, w, openings)
	require.NoError(t, err)

	proof.QTaus[0].Neg(&proof.QTaus[0])

	ok := Verify(commitment, openings, proof, ts.EncryptedTaus)
	require.False(t, ok)
}

func TestVerifyRejectsWrongCommitment(t *testing.T) {
	w := multilinear.New(feSlice(0, 0, 0, 3, 0, 0, 2, 5))
	other := multilinear.New(feSlice(1, 0, 0, 3, 0, 0, 2, 5))
	taus := feSlice(5, 3, 2)
	openings := feSlice(2, 4, 0)

	ts := NewTrustedSetup(taus)
	wrongCommitment, err := Commit(ts, other)
	require.NoError(t, err)

	proof, err := Prove(ts, w, openings)
	require.NoError(t, err)

	ok := Verify(wrongCommitment, openings, proof, ts.EncryptedTaus)
	require.False(t, ok)
}

func TestProveRejectsWrongOpeningsLength(t *testing.T) {
	w := multilinear.New(feSlice(0, 0, 0, 3, 0, 0, 2, 5))
	taus := feSlice(5, 3, 2)
	ts := NewTrustedSetup(taus)

	_, err := Prove(ts, w, feSlice(1, 2))
	require.ErrorIs(t, err, ErrOpeningsLengthMismatch)
}

func TestCommitRejectsLengthMismatch(t *testing.T) {
	w := multilinear.New(feSlice(0, 0, 3, 5))
	taus := feSlice(5, 3, 2)
	ts := NewTrustedSetup(taus)

	_, err := Commit(ts, w)
	require.ErrorIs(t, err, ErrLengthMismatch)
}

func TestGenerateLagrangeBasisSumsToOne(t *testing.T) {
	taus := feSlice(5, 3, 2)
	basis := GenerateLagrangeBasis(taus)
	require.Len(t, basis, 8)

	var sum fr.Element
	for _, b := range basis {
		sum.Add(&sum, &b)
	}
	one := feInt(1)
	require.True(t, sum.Equal(&one))
}
