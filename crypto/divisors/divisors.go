// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package divisors enumerates positive divisors and prime factors of
// unsigned integers.
package divisors

import (
	"github.com/otiai10/primes"
)

// Divisors returns every positive divisor of k in ascending order, always
// starting at 1 and ending at k. k must be >= 1.
//
// The enumeration is a linear scan of [1, k]. This bounds the practical
// size of the group orders the module can characterize; it is not suitable
// for cryptographic-sized inputs.
func Divisors(k uint64) []uint64 {
	divs := make([]uint64, 0)
	for i := uint64(1); i <= k; i++ {
		if k%i == 0 {
			divs = append(divs, i)
		}
	}
	return divs
}

// PrimeFactors returns the distinct prime factors of k in ascending order.
// Returns nil for k <= 1. k must fit in an int64.
func PrimeFactors(k uint64) []uint64 {
	if k <= 1 {
		return nil
	}
	list := primes.Factorize(int64(k)).List()
	factors := make([]uint64, 0, len(list))
	var last uint64
	for _, f := range list {
		if uint64(f) == last {
			continue
		}
		last = uint64(f)
		factors = append(factors, last)
	}
	return factors
}
