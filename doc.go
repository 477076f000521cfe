// Package kora provides k-means clustering and cluster-quality evaluation
// for dense numeric data.
//
// An Engine fits a k-means model using k-means++ seeding and multiple
// independent restarts, keeps the restart with the lowest inertia, and from
// that model serves assignments, quality reports, cluster-count sweeps, and
// outlier detection.
//
// # Quick Start
//
//	ctx := context.Background()
//	engine, _ := kora.New(kora.WithClusters(3), kora.WithSeed(42))
//	labels, _ := engine.FitPredict(ctx, data)
//
//	report, _ := engine.Evaluate(ctx, data, nil)
//	fmt.Println(report.Inertia())
//	if s, ok := report.Silhouette(); ok {
//	    fmt.Println(s)
//	}
//
// Metrics that are undefined for the current cluster count (silhouette with
// a single cluster, for example) are simply absent from the report.
//
// # Choosing the Cluster Count
//
//	curve, _ := engine.OptimalKElbow(ctx, data, nil) // sweeps k = 1..10
//	for i, k := range curve.K {
//	    fmt.Println(k, curve.Inertia[i])
//	}
//
// # Outlier Detection
//
//	suspects, _ := engine.Outliers(ctx, data, nil, func(o *analyze.Options) {
//	    o.Method = analyze.MethodSilhouette
//	    o.Threshold = -0.3
//	})
//
// # Determinism
//
// With a pinned seed, repeated fits on the same data reproduce bit-identical
// centroids, assignments, and inertia regardless of the worker count: each
// restart derives its own seed from the base seed and its restart index, and
// results are reduced in restart order.
package kora
