// Package gomset implement an in-memory ordered multiset and
// necessary tools and libraries.
//
// mset:
//
// A height balanced version of binary-tree, called AVL, for sorting
// and retrieving orderable values with repetition. Index resides
// entirely in memory, repeated values are folded into per-key
// occurrence counters.
//
// bag:
//
// A reference multiset based on golang map. Primarily meant for
// validating the mset algorithm.
//
// lib:
//
// Convinience functions that can be used by other packages. Package
// shall not import packages other than golang's standard packages.
package gomset
