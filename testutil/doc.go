// Package testutil provides testing utilities for KORA.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random datasets, with and without
// planted cluster structure.
//
// # Random Matrix Generation
//
//	rng := testutil.NewRNG(seed)
//	data := rng.UniformMatrix(100, 4)   // uniform [0, 1) rows
//	noise := rng.GaussianMatrix(100, 4) // standard normal rows
//
// # Planted Clusters
//
//	data, labels := rng.Blobs(300, 4, 3, 0.5)
package testutil
