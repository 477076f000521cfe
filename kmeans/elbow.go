package kmeans

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Undertaker049/KORA/matrix"
)

// ElbowCurve holds the inertia observed for each swept cluster count, in
// sweep order. The curve carries no judgment about where the elbow sits.
type ElbowCurve struct {
	K       []int
	Inertia []float64
}

// Elbow runs an independent fit for every cluster count in kValues and
// records the resulting inertia. Each k gets its own engine with the same
// iteration and restart budget and a seed derived from the sweep position,
// so a fixed RandomSeed makes the whole sweep reproducible. A failing k
// aborts the sweep with ErrSweepFailed naming it.
func (km *KMeans) Elbow(ctx context.Context, data [][]float64, kValues []int) (*ElbowCurve, error) {
	if len(kValues) == 0 {
		return nil, ErrEmptySweep
	}

	if _, _, err := matrix.Validate(data); err != nil {
		return nil, err
	}

	baseSeed := km.baseSeed()
	inertias := make([]float64, len(kValues))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(km.opts.Workers)

	for i, k := range kValues {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			// Stride by NRestarts so no two fits share a restart seed.
			seed := baseSeed + int64(i*km.opts.NRestarts)

			child, err := New(func(o *Options) {
				*o = km.opts
				o.NClusters = k
				o.RandomSeed = &seed
				o.Workers = 1
			})
			if err != nil {
				return &ErrSweepFailed{K: k, cause: err}
			}

			if err := child.Fit(ctx, data); err != nil {
				return &ErrSweepFailed{K: k, cause: err}
			}

			inertias[i] = child.Inertia()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	ks := make([]int, len(kValues))
	copy(ks, kValues)

	return &ElbowCurve{K: ks, Inertia: inertias}, nil
}
