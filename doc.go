// Package polycube enumerates distinct polyominoes and polycubes —
// connected unions of unit cells on an integer grid — counting one
// representative per equivalence class under rotation and reflection.
//
// 🚀 What is polycube?
//
//	A small, CPU-bound enumeration engine that brings together:
//		• Cell primitives: integer coordinates, adjacency, total ordering
//		• Shapes: immutable, normalized, connected cell sets with exact frontiers
//		• Symmetry: the dihedral group D4 (2D) and the full cube group (3D)
//		• Canonicalization: exhaustive-transform + minimum-selection
//		• Generation driver: grow → canonicalize → deduplicate, size by size
//		• Random growth: self-avoiding snakes and frontier-attached blobs
//
// ✨ Why choose polycube?
//
//   - Exact – free polyominoes/polycubes, golden values tested against OEIS
//   - Deterministic – canonical representatives under a fixed total order
//   - Parallel-ready – map-then-merge generation across worker goroutines
//   - Extensible – generation hooks for progress reporting and rendering
//
// Everything is organized under four subpackages plus a command:
//
//	cell/      — coordinate model, adjacency, dimensionality (Dim2/Dim3)
//	shape/     — normalized shapes, frontiers, canonical keys, rendering
//	symmetry/  — transformation groups and the canonicalizer
//	enumerate/ — growth engine, deduplicating driver, random generators
//	cmd/       — the polycube CLI (count, list, snake)
//
// Quick ASCII example (the five free tetrominoes):
//
//	OOOO   OO   O..   .O.   .OO
//	       OO   OOO   OOO   OO.
//
//	enumerate.Count(4) == 5.
//
//	go get github.com/katalvlaran/polycube
package polycube
