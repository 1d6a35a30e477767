// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package modular provides overflow-safe modular arithmetic on uint64
// values, correct for any modulus up to 2^64-1.
package modular

import (
	"math/bits"
)

// MulMod returns (a * b) mod m. The product is taken through a 128-bit
// intermediate, so residues close to the modulus never wrap. m must be
// non-zero.
func MulMod(a, b, m uint64) uint64 {
	// with both operands reduced, the high product word is < m and
	// bits.Div64 cannot panic on quotient overflow
	hi, lo := bits.Mul64(a%m, b%m)
	_, rem := bits.Div64(hi, lo, m)
	return rem
}

// Exp returns base^exponent mod modulus by binary square-and-multiply
// exponentiation: the exponent is consumed bit by bit, the running base is
// squared each step, and the result is multiplied in whenever the current
// low bit is set. modulus must be >= 1. The result is always in
// [0, modulus), and Exp(a, 0, m) == 1 % m for any a.
func Exp(base, exponent, modulus uint64) uint64 {
	if modulus == 0 {
		panic("modular: zero modulus")
	}
	result := 1 % modulus
	base %= modulus
	for exponent > 0 {
		if exponent&1 == 1 {
			result = MulMod(result, base, modulus)
		}
		base = MulMod(base, base, modulus)
		exponent >>= 1
	}
	return result
}
