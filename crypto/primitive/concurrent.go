// Copyright © 2024 PrimeLab
//
// This file is part of PrimeLab. The full PrimeLab copyright notice, including
// terms governing use, modification, and redistribution, is contained in the
// file LICENSE at the root of the source code distribution tree.

package primitive

import (
	"context"
	"runtime"

	"github.com/pkg/errors"

	"github.com/primelab/mulgroup/common"
	"github.com/primelab/mulgroup/crypto/divisors"
)

// FindGeneratorConcurrent races several goroutines sampling and testing
// candidates; the first generator found wins. The search stops when ctx
// is done, in which case an error is returned.
// If not specified, a concurrency value equal to the number of available
// CPU cores will be used. The workers use the prime-factor order test, so
// p-1 is factorized once up front.
func FindGeneratorConcurrent(ctx context.Context, p uint64, optionalConcurrency ...int) (uint64, error) {
	var concurrency int
	if 0 < len(optionalConcurrency) {
		if 1 < len(optionalConcurrency) {
			panic(errors.New("FindGeneratorConcurrent: expected 0 or 1 item in `optionalConcurrency`"))
		}
		concurrency = optionalConcurrency[0]
	} else {
		concurrency = runtime.NumCPU()
	}
	if concurrency < 1 {
		concurrency = 1
	}

	if p == 3 {
		return 2, nil
	}
	if p < 5 {
		return 0, errors.Errorf("FindGeneratorConcurrent: no generator candidates exist for p = %d", p)
	}

	factors := divisors.PrimeFactors(p - 1)

	searchCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	genCh := make(chan uint64, concurrency)
	for i := 0; i < concurrency; i++ {
		go func() {
			src := common.NewRangeSource(2, p-2)
			for searchCtx.Err() == nil {
				g := src.Next()
				if IsGeneratorByFactors(p, g, factors) {
					select {
					case genCh <- g:
					default:
					}
					return
				}
			}
		}()
	}

	select {
	case <-ctx.Done():
		return 0, errors.Wrap(ctx.Err(), "generator search did not complete")
	case g := <-genCh:
		common.Logger.Debugf("found generator %d of the multiplicative group mod %d", g, p)
		return g, nil
	}
}
