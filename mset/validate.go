package mset

import "fmt"
import "math"

import "github.com/bnclabs/gomset/lib"

// height of the tree cannot exceed a certain limit. For example if
// the tree holds 1-million distinct keys, a fully balanced tree
// shall have a height of 20 levels. maxheight provide some
// breathing space on top of ideal height.
func maxheight(entries int64) float64 {
	if entries < 5 {
		return (3 * (math.Log2(float64(entries)) + 1)) // 3x breathing space.
	}
	return 2 * math.Log2(float64(entries)) // 2x breathing space
}

func (t *Multiset[T]) validate(root *avlnode[T]) {
	h := lib.NewhistorgramInt64(1, 256, 1)

	distinct, total := t.validatetree(root, nil, nil, 1 /*depth*/, h)

	// `h` is the depth histogram, its max should not exceed a
	// reasonable bound over log2 of distinct keys.
	if h.Samples() > 8 {
		if float64(h.Max()) > maxheight(distinct) {
			fmsg := "validate(): max height %v exceeds log2(%v)"
			panic(fmt.Errorf(fmsg, float64(h.Max()), distinct))
		}
	}

	t.validatestats(distinct, total)
}

// walk the tree checking every invariant the structure promises:
// strict sort order within (lo,hi), occurrence counts >= 1, cached
// height and subtree-size bookkeeping, and the AVL balance rule.
func (t *Multiset[T]) validatetree(
	nd *avlnode[T], lo, hi *T, depth int64,
	h *lib.HistogramInt64) (distinct int64, total uint64) {

	if nd == nil {
		return 0, 0
	}
	h.Add(depth)

	if nd.count == 0 {
		fmsg := "validate(): node %v retained with zero count"
		panic(fmt.Errorf(fmsg, nd.key))
	}
	if lo != nil && nd.key <= *lo {
		fmsg := "validate(): sort order, node %v is <= %v"
		panic(fmt.Errorf(fmsg, nd.key, *lo))
	}
	if hi != nil && nd.key >= *hi {
		fmsg := "validate(): sort order, node %v is >= %v"
		panic(fmt.Errorf(fmsg, nd.key, *hi))
	}

	ld, lt := t.validatetree(nd.left, lo, &nd.key, depth+1, h)
	rd, rt := t.validatetree(nd.right, &nd.key, hi, depth+1, h)

	lh, rh := height(nd.left), height(nd.right)
	if expected := max(lh, rh) + 1; nd.height != expected {
		fmsg := "validate(): node %v height %v expected %v"
		panic(fmt.Errorf(fmsg, nd.key, nd.height, expected))
	}
	if lib.AbsInt64(int64(lh)-int64(rh)) > 1 {
		fmsg := "validate(): node %v unbalanced {%v,%v}"
		panic(fmt.Errorf(fmsg, nd.key, lh, rh))
	}
	if expected := nd.count + lt + rt; nd.size != expected {
		fmsg := "validate(): node %v subtree size %v expected %v"
		panic(fmt.Errorf(fmsg, nd.key, nd.size, expected))
	}
	return ld + rd + 1, lt + rt + nd.count
}

func (t *Multiset[T]) validatestats(distinct int64, total uint64) {
	// n_count should match (n_inserts - n_deletes)
	n_count := t.n_count
	n_inserts, n_deletes := t.n_inserts, t.n_deletes
	if n_count != (n_inserts - n_deletes) {
		fmsg := "validatestats(): n_count:%v != (n_inserts:%v - n_deletes:%v)"
		panic(fmt.Errorf(fmsg, n_count, n_inserts, n_deletes))
	}
	// n_count should match the occurrences under the root
	if int64(total) != n_count {
		fmsg := "validatestats(): occurrences:%v != n_count:%v"
		panic(fmt.Errorf(fmsg, total, n_count))
	}
	// distinct keys should match (n_nodes - n_frees)
	n_nodes, n_frees := t.n_nodes, t.n_frees
	if distinct != (n_nodes - n_frees) {
		fmsg := "validatestats(): keys:%v != (n_nodes:%v - n_frees:%v)"
		panic(fmt.Errorf(fmsg, distinct, n_nodes, n_frees))
	}
}
