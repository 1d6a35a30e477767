// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

// Command mulgroup prints the multiplicative subgroup of order n of the
// nonzero residues mod a prime p, one element per line, ascending.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/primelab/mulgroup/crypto/subgroup"
)

func main() {
	p := flag.Uint64("p", 0, "prime modulus")
	n := flag.Uint64("n", 0, "subgroup order; must divide p-1")
	timeout := flag.Duration("timeout", 30*time.Second, "bound on the generator search")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	elements, err := subgroup.BuildWithContext(ctx, *p, *n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mulgroup: %v\n", err)
		os.Exit(1)
	}
	for _, e := range elements {
		fmt.Println(e)
	}
}
