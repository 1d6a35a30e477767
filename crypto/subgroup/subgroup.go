// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Package subgroup assembles multiplicative subgroups of prescribed order
// inside the group of nonzero residues mod a prime.
package subgroup

import (
	"context"
	"sort"

	"github.com/pkg/errors"

	"github.com/primelab/mulgroup/common"
	"github.com/primelab/mulgroup/crypto/modular"
	"github.com/primelab/mulgroup/crypto/primality"
	"github.com/primelab/mulgroup/crypto/primitive"
)

// Miller-Rabin rounds used to vet p; the false-positive rate is <= 4^-5
const primalityRounds = 5

var (
	// ErrNotPrime is returned when p fails the primality check.
	ErrNotPrime = errors.New("p is not prime")
	// ErrNotFactor is returned when n does not divide p-1. By Lagrange's
	// theorem no subgroup of order n exists in that case.
	ErrNotFactor = errors.New("n is not a factor of p-1")
	// ErrInvalidOrder is returned for the contract violation n == 0.
	ErrInvalidOrder = errors.New("subgroup order must be positive")
)

// Build computes the multiplicative subgroup of order n of the nonzero
// residues mod the prime p. The returned elements are in ascending order,
// so the identity 1 is always the first entry and the result is
// reproducible across calls regardless of which generator the random
// search lands on. The subgroup exists iff n divides p-1.
func Build(p, n uint64) ([]uint64, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}
	if n == 1 {
		return []uint64{1}, nil
	}
	g := primitive.FindGenerator(p)
	return assemble(p, n, g)
}

// BuildWithContext is Build with a cancellable generator search: the
// search runs on multiple goroutines and is abandoned with an error when
// ctx is done. Validation failures are reported before any search begins.
func BuildWithContext(ctx context.Context, p, n uint64, optionalConcurrency ...int) ([]uint64, error) {
	if err := validate(p, n); err != nil {
		return nil, err
	}
	if n == 1 {
		return []uint64{1}, nil
	}
	g, err := primitive.FindGeneratorConcurrent(ctx, p, optionalConcurrency...)
	if err != nil {
		return nil, err
	}
	return assemble(p, n, g)
}

func validate(p, n uint64) error {
	if n == 0 {
		return ErrInvalidOrder
	}
	if !primality.IsPrime(p, primalityRounds) {
		return ErrNotPrime
	}
	if (p-1)%n != 0 {
		return ErrNotFactor
	}
	return nil
}

// assemble raises g to i*(p-1)/n for i = 0..n-1. The mathematics
// guarantees n distinct values when g has order p-1, so deduplication is
// a safety net only: a shortfall means the generator search accepted a
// bad element and is surfaced as an internal error rather than silently
// returning a smaller set.
func assemble(p, n, g uint64) ([]uint64, error) {
	step := (p - 1) / n
	seen := make(map[uint64]struct{}, n)
	elements := make([]uint64, 0, n)
	for i := uint64(0); i < n; i++ {
		e := modular.Exp(g, i*step, p)
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		elements = append(elements, e)
	}
	if uint64(len(elements)) != n {
		return nil, errors.Errorf("subgroup of order %d collapsed to %d elements (generator %d mod %d)",
			n, len(elements), g, p)
	}
	sort.Slice(elements, func(i, j int) bool { return elements[i] < elements[j] })
	common.Logger.Debugf("built subgroup of order %d mod %d from generator %d", n, p, g)
	return elements, nil
}
