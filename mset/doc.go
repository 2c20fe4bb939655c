// Package mset implement a self-balancing version of binary-tree,
// called AVL, managed as an ordered multiset.
//
//   - Index orderable values, repetition allowed.
//   - Repeated values are folded into a per-key occurrence counter,
//     number of nodes is bound by distinct keys, not occurrences.
//   - Membership, minimum and maximum in logarithmic time, total
//     occurrence count in constant time.
//
// Instances are not internally synchronized, concurrent access
// shall be serialized by the caller.
package mset
