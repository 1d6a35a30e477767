// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package subgroup

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"

	"github.com/primelab/mulgroup/crypto/divisors"
	"github.com/primelab/mulgroup/crypto/modular"
)

// Verify checks that elements is a well-formed multiplicative subgroup of
// order n mod p as produced by Build: exactly n distinct residues in
// [1, p), identity first, every element an n-th root of unity, group
// order exactly n (not a proper divisor of n), and closure under
// multiplication mod p. Every violated property is reported, not just
// the first.
func Verify(p, n uint64, elements []uint64) error {
	var result *multierror.Error

	if uint64(len(elements)) != n {
		result = multierror.Append(result, errors.Errorf("expected %d elements, got %d", n, len(elements)))
		return result.ErrorOrNil()
	}
	if n == 0 {
		return ErrInvalidOrder
	}

	if elements[0] != 1 {
		result = multierror.Append(result, errors.Errorf("identity is not the first element (got %d)", elements[0]))
	}

	seen := make(map[uint64]struct{}, n)
	for _, e := range elements {
		if e == 0 || e >= p {
			result = multierror.Append(result, errors.Errorf("element %d outside [1, %d)", e, p))
			continue
		}
		if _, ok := seen[e]; ok {
			result = multierror.Append(result, errors.Errorf("duplicate element %d", e))
			continue
		}
		seen[e] = struct{}{}
		if modular.Exp(e, n, p) != 1 {
			result = multierror.Append(result, errors.Errorf("element %d is not an order-%d root of unity", e, n))
		}
	}

	// the group order must be exactly n: for every proper divisor m of n
	// at least one element must not satisfy e^m == 1
	if n > 1 {
		divs := divisors.Divisors(n)
		for _, m := range divs[:len(divs)-1] {
			allRoots := true
			for _, e := range elements {
				if modular.Exp(e, m, p) != 1 {
					allRoots = false
					break
				}
			}
			if allRoots {
				result = multierror.Append(result, errors.Errorf("every element already satisfies e^%d == 1; group order divides %d, not %d", m, m, n))
			}
		}
	}

	for _, a := range elements {
		for _, b := range elements {
			prod := modular.MulMod(a, b, p)
			if _, ok := seen[prod]; !ok {
				result = multierror.Append(result, errors.Errorf("not closed: %d * %d == %d mod %d is outside the set", a, b, prod, p))
			}
		}
	}

	return result.ErrorOrNil()
}
