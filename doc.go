// Package waven is an in-memory toolkit for constraint-based procedural
// generation with the Wave Function Collapse algorithm, generalized to
// any number of spatial dimensions.
//
// 🚀 What is waven?
//
//	A deterministic, dependency-light library that brings together:
//		• space — integer vectors and axis-aligned boxes with per-axis
//		  periodicity, flat indexing and point enumeration
//		• grid  — dense and sparse value storage keyed by space coordinates
//		• tiling — adjacency-rule learning from example tilings, tile
//		  frequencies and Shannon-entropy bookkeeping
//		• wave  — the observe/propagate engine: lowest-entropy selection,
//		  weighted collapse, constraint propagation to quiescence
//
// ✨ Why choose waven?
//
//   - Dimension-generic – the same engine drives 1-D strips, 2-D maps
//     and higher-dimensional volumes
//   - Reproducible – the injected RNG is the only source of randomness;
//     same seed, same output
//   - Inspectable – failed runs return the partial wave so callers can
//     see exactly which cell ran out of possibilities
//   - Pure Go – no cgo, no hidden deps
//
// Under the hood, everything is organized under four subpackages:
//
//	space/  — Vector & Space primitives (bounds, wrap, flat index, iteration)
//	grid/   — Dense & Sparse collections over a Space
//	tiling/ — Rule & Analysis (learned or explicit adjacency models)
//	wave/   — Node, Wave & Runner (the collapse loop itself)
//
// Quick ASCII example:
//
//	input:  A B A B A B        output (len 8):  B A B A B A B A
//
//	the engine learns the alternation rules from the input strip and
//	reproduces them over any requested region.
//
// Dive into the per-package docs for contracts, complexity notes and
// error enumerations, and into each package's example_test.go for
// runnable scenarios.
//
//	go get github.com/katalvlaran/waven
package waven
