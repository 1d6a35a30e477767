// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package subgroup_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	. "github.com/primelab/mulgroup/crypto/subgroup"
)

func TestVerifyAcceptsBuildOutput(t *testing.T) {
	cases := [][2]uint64{{7, 3}, {7, 1}, {11, 5}, {13, 4}, {101, 20}, {103, 17}}
	for _, c := range cases {
		p, n := c[0], c[1]
		elements, err := Build(p, n)
		assert.NoError(t, err)
		assert.NoError(t, Verify(p, n, elements))
	}
}

func TestVerifyWrongSize(t *testing.T) {
	assert.Error(t, Verify(7, 3, []uint64{1, 2}))
	assert.Error(t, Verify(7, 3, nil))
}

func TestVerifyIdentityNotFirst(t *testing.T) {
	assert.Error(t, Verify(7, 3, []uint64{2, 1, 4}))
}

func TestVerifyForeignElement(t *testing.T) {
	// 3 is not a cube root of unity mod 7
	err := Verify(7, 3, []uint64{1, 2, 3})
	assert.Error(t, err)
}

func TestVerifyDuplicates(t *testing.T) {
	assert.Error(t, Verify(7, 3, []uint64{1, 2, 2}))
}

func TestVerifyOutOfRange(t *testing.T) {
	assert.Error(t, Verify(7, 3, []uint64{1, 2, 11}))
	assert.Error(t, Verify(7, 3, []uint64{1, 0, 4}))
}

// {1, 12} has order 2, a proper divisor of 4: every element satisfies
// e^2 == 1 so the set cannot pass as an order-4 subgroup.
func TestVerifyOrderIsExact(t *testing.T) {
	err := Verify(13, 4, []uint64{1, 1, 12, 12})
	assert.Error(t, err)
}
