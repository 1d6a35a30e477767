// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package subgroup_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/primelab/mulgroup/crypto/modular"
	. "github.com/primelab/mulgroup/crypto/subgroup"
)

func TestBuildCubeRootsOfUnity(t *testing.T) {
	elements, err := Build(7, 3)
	assert.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 4}, elements)
}

func TestBuildKnownSubgroups(t *testing.T) {
	// quadratic residues mod 11
	elements, err := Build(11, 5)
	assert.NoError(t, err)
	assert.Equal(t, []uint64{1, 3, 4, 5, 9}, elements)

	// the unique order-4 subgroup mod 13
	elements, err = Build(13, 4)
	assert.NoError(t, err)
	assert.Equal(t, []uint64{1, 5, 8, 12}, elements)

	// square roots of unity
	elements, err = Build(13, 2)
	assert.NoError(t, err)
	assert.Equal(t, []uint64{1, 12}, elements)

	// the full group
	elements, err = Build(7, 6)
	assert.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 3, 4, 5, 6}, elements)
}

func TestBuildTrivialSubgroup(t *testing.T) {
	for _, p := range []uint64{2, 3, 7, 101} {
		elements, err := Build(p, 1)
		assert.NoError(t, err)
		assert.Equal(t, []uint64{1}, elements)
	}
}

func TestBuildNotFactor(t *testing.T) {
	_, err := Build(7, 4)
	assert.ErrorIs(t, err, ErrNotFactor)

	_, err = Build(11, 3)
	assert.ErrorIs(t, err, ErrNotFactor)
}

func TestBuildNotPrime(t *testing.T) {
	_, err := Build(9, 3)
	assert.ErrorIs(t, err, ErrNotPrime)

	_, err = Build(15, 2)
	assert.ErrorIs(t, err, ErrNotPrime)

	_, err = Build(1, 1)
	assert.ErrorIs(t, err, ErrNotPrime)
}

func TestBuildZeroOrder(t *testing.T) {
	_, err := Build(7, 0)
	assert.ErrorIs(t, err, ErrInvalidOrder)
}

// The same (p, n) must produce the same sequence on every call, no matter
// which generator the random search finds.
func TestBuildDeterministicOrder(t *testing.T) {
	first, err := Build(101, 20)
	assert.NoError(t, err)
	for i := 0; i < 20; i++ {
		again, err := Build(101, 20)
		assert.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestBuildElementsAreRootsOfUnity(t *testing.T) {
	cases := [][2]uint64{{7, 3}, {11, 5}, {13, 4}, {101, 25}, {103, 17}}
	for _, c := range cases {
		p, n := c[0], c[1]
		elements, err := Build(p, n)
		assert.NoError(t, err)
		assert.Len(t, elements, int(n))
		assert.Equal(t, uint64(1), elements[0])
		for _, e := range elements {
			assert.Equal(t, uint64(1), modular.Exp(e, n, p),
				"%d^%d != 1 mod %d", e, n, p)
		}
	}
}

func TestBuildClosure(t *testing.T) {
	elements, err := Build(103, 17)
	assert.NoError(t, err)
	set := make(map[uint64]struct{}, len(elements))
	for _, e := range elements {
		set[e] = struct{}{}
	}
	for _, a := range elements {
		for _, b := range elements {
			_, ok := set[modular.MulMod(a, b, 103)]
			assert.True(t, ok, "%d * %d mod 103 left the subgroup", a, b)
		}
	}
}

func TestBuildWithContext(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	elements, err := BuildWithContext(ctx, 7, 3)
	assert.NoError(t, err)
	assert.Equal(t, []uint64{1, 2, 4}, elements)

	elements, err = BuildWithContext(ctx, 101, 20, 2)
	assert.NoError(t, err)
	assert.Len(t, elements, 20)
}

func TestBuildWithContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildWithContext(ctx, 101, 20)
	assert.Error(t, err)
}

// Validation failures must be reported even when the context is dead:
// they are detected before any search starts.
func TestBuildWithContextValidatesFirst(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := BuildWithContext(ctx, 9, 3)
	assert.ErrorIs(t, err, ErrNotPrime)
}
