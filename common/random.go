// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package common

import (
	"crypto/rand"
	"math/big"

	"github.com/pkg/errors"
)

// Source yields unsigned integers drawn from some distribution. The
// randomized searches in this module (primality witnesses, generator
// candidates) take their draws from a Source so that tests can substitute
// a deterministic sequence for crypto/rand.
type Source interface {
	Next() uint64
}

// MustGetRandomUint64InRange returns a uniformly random integer in
// [min, max] inclusive. It panics when the range is empty or when entropy
// cannot be gathered from `rand.Reader`.
func MustGetRandomUint64InRange(min, max uint64) uint64 {
	if max < min {
		panic(errors.Errorf("MustGetRandomUint64InRange: empty range [%d, %d]", min, max))
	}
	span := new(big.Int).SetUint64(max - min + 1)

	// Generate cryptographically strong pseudo-random int in [0, span)
	n, err := rand.Int(rand.Reader, span)
	if err != nil {
		panic(errors.Wrap(err, "rand.Int failure in MustGetRandomUint64InRange!"))
	}
	return min + n.Uint64()
}

// NewRangeSource returns a Source drawing uniformly from [min, max] using
// crypto/rand. It is safe for use from multiple goroutines.
func NewRangeSource(min, max uint64) Source {
	return &rangeSource{min: min, max: max}
}

type rangeSource struct {
	min, max uint64
}

func (s *rangeSource) Next() uint64 {
	return MustGetRandomUint64InRange(s.min, s.max)
}
