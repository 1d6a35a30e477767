// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primality implements the Miller-Rabin probabilistic primality
// test.
package primality

import (
	"github.com/primelab/mulgroup/common"
	"github.com/primelab/mulgroup/crypto/modular"
)

// IsPrime reports whether n is probably prime after the given number of
// Miller-Rabin rounds, with witnesses drawn from crypto/rand. A composite
// n is wrongly accepted with probability at most 4^-rounds; a prime n is
// always accepted.
func IsPrime(n uint64, rounds int) bool {
	if n <= 1 || n == 4 {
		return false
	}
	if n <= 3 {
		return true
	}
	return IsPrimeFromSource(n, rounds, common.NewRangeSource(2, n-2))
}

// IsPrimeFromSource is IsPrime with the witness source supplied by the
// caller. src must yield values in [2, n-2], which is non-empty for the
// n >= 5 that reach it.
func IsPrimeFromSource(n uint64, rounds int, src common.Source) bool {
	if n <= 1 || n == 4 {
		return false
	}
	if n <= 3 {
		return true
	}

	// n-1 = 2^r * s with s odd
	r := uint64(0)
	s := n - 1
	for s%2 == 0 {
		r++
		s /= 2
	}

	for i := 0; i < rounds; i++ {
		a := src.Next()
		x := modular.Exp(a, s, n)
		if x == 1 || x == n-1 {
			continue
		}
		composite := true
		// square up to r-1 more times; the loop is guarded so that r == 0
		// (even n) runs zero iterations instead of underflowing r-1
		for j := uint64(1); j < r; j++ {
			x = modular.MulMod(x, x, n)
			if x == n-1 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}
