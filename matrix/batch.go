// SPDX-License-Identifier: MIT

package matrix

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// InverseAll inverts every matrix of ms concurrently and returns the
// inverses in input order. ms itself is not modified.
//
// Each input is copied into a result slot owned by exactly one goroutine,
// so no two eliminations ever share a matrix. At most WithConcurrency(n)
// eliminations run at once (DefaultConcurrency otherwise).
//
// The first failure cancels the remaining work; the returned error names the
// failing index and still matches the underlying sentinel via errors.Is.
// A cancelled ctx yields ctx.Err().
func InverseAll(ctx context.Context, ms []Mat4, opts ...Option) ([]Mat4, error) {
	o := gatherOptions(opts...)
	out := make([]Mat4, len(ms))
	copy(out, ms)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i := range out {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if err := Inverse(&out[i], opts...); err != nil {
				return matrixErrorf(opInverseAll, fmt.Errorf("index %d: %w", i, err))
			}

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
