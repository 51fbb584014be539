// Package pairkit is a research toolkit for comparing task-to-resource
// assignment policies — from the core bipartite minimum-cost assignment
// engine to a time-window pairing layer built on top of it.
//
// 🚀 What is pairkit?
//
//	A small, deterministic library that brings together:
//		• Matrix reduction: row/column minimum subtraction with padding-aware
//		  handling of forbidden cells
//		• Bipartite matching: Kuhn augmenting-path maximum matching over the
//		  zero graph of a reduced cost matrix
//		• Minimum vertex covers: König's constructive form, used to pick the
//		  next cost adjustment
//		• The classical zero-cover augmentation loop (Hungarian method)
//		• A paired-task cost model: time-window lease costs, pair formation
//		  and round-robin resource binding
//
// ✨ Why choose pairkit?
//
//   - Pure functions – every solve owns its own state, concurrent solves
//     never interfere
//   - Strict sentinels – malformed input fails fast, errors.Is-friendly
//   - Deterministic – ascending index order everywhere, reproducible fixtures
//   - Pure Go core – the CLI harness is the only place with heavier deps
//
// Everything is organized under three subpackages:
//
//	hungarian/   — the assignment engine (reduce, match, cover, solve)
//	pairing/     — time-window lease costs, pair formation, resource binding
//	cmd/pairsim/ — YAML-scenario CLI harness
//
// Quick start:
//
//	assignment, err := hungarian.Solve(costMatrix, nil)
//
//	go get github.com/katalvlaran/pairkit
package pairkit
