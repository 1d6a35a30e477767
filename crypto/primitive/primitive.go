// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package primitive discovers primitive roots (generators) of the
// multiplicative group of integers mod a prime p.
package primitive

import (
	"github.com/primelab/mulgroup/common"
	"github.com/primelab/mulgroup/crypto/divisors"
	"github.com/primelab/mulgroup/crypto/modular"
)

// SampleCandidate draws a generator candidate uniformly from [2, p-2].
// 0, 1 and p-1 are excluded up front: none of them can generate a group
// of order p-1 >= 4. p must be >= 5 for the range to be non-empty.
func SampleCandidate(p uint64) uint64 {
	return common.MustGetRandomUint64InRange(2, p-2)
}

// IsGenerator reports whether g generates the full multiplicative group
// mod the prime p, i.e. has multiplicative order exactly p-1. Every
// proper non-trivial divisor f of p-1 is checked: g^((p-1)/f) == 1 for
// any such f means the order of g is a proper divisor of p-1. Checking
// all divisors rather than only the prime factors is a superset of the
// minimal sufficient test; it never wrongly accepts a non-generator.
func IsGenerator(p, g uint64) bool {
	divs := divisors.Divisors(p - 1)
	if len(divs) < 3 {
		// p-1 is 1 or prime; no proper non-trivial divisors to test
		return true
	}
	// drop 1 and p-1 to keep the proper, non-trivial divisors
	for _, f := range divs[1 : len(divs)-1] {
		if modular.Exp(g, (p-1)/f, p) == 1 {
			return false
		}
	}
	return true
}

// IsGeneratorByFactors is the minimal sufficient generator test: only the
// distinct prime factors q of p-1 are checked, since an order below p-1
// always divides (p-1)/q for some prime q. factors must be the output of
// divisors.PrimeFactors(p-1).
func IsGeneratorByFactors(p, g uint64, factors []uint64) bool {
	for _, q := range factors {
		if modular.Exp(g, (p-1)/q, p) == 1 {
			return false
		}
	}
	return true
}

// FindGenerator searches for a generator of the full group mod the prime
// p by rejection sampling with crypto/rand candidates. The search is
// unbounded but terminates quickly in expectation: phi(p-1)/(p-1) of all
// residues are generators. Callers needing bounded latency should use
// FindGeneratorConcurrent with a context deadline.
func FindGenerator(p uint64) uint64 {
	if p == 3 {
		// [2, p-2] is empty and 2 is the only generator mod 3
		return 2
	}
	return FindGeneratorFromSource(p, common.NewRangeSource(2, p-2))
}

// FindGeneratorFromSource is FindGenerator with candidates supplied by
// the caller. src must yield values in [2, p-2].
func FindGeneratorFromSource(p uint64, src common.Source) uint64 {
	g := src.Next()
	for !IsGenerator(p, g) {
		g = src.Next()
	}
	return g
}
