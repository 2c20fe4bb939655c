package mset

import "cmp"
import "fmt"
import "io"
import "reflect"
import "strings"
import "time"

import "github.com/bnclabs/gomset/lib"
import s "github.com/bnclabs/gosettings"
import humanize "github.com/dustin/go-humanize"

// Multiset manage a single instance of in-memory ordered multiset
// using AVL tree. Repeated values share one node via an occurrence
// counter, so the tree shape depends only on distinct keys.
type Multiset[T cmp.Ordered] struct {
	msetstats

	name     string
	root     *avlnode[T]
	borntime time.Time
	dead     bool
	nodesize int64

	// settings
	memcapacity int64
	memwarned   bool
	setts       s.Settings
	logprefix   string

	h_insertdepth *lib.HistogramInt64
}

// NewMultiset a new instance of in-memory ordered multiset.
func NewMultiset[T cmp.Ordered](name string, setts s.Settings) *Multiset[T] {
	t := &Multiset[T]{name: name, borntime: time.Now()}
	t.logprefix = fmt.Sprintf("MSET [%s]", name)

	setts = make(s.Settings).Mixin(Defaultsettings(), setts)
	t.readsettings(setts)
	t.setts = setts

	t.nodesize = int64(reflect.TypeOf(avlnode[T]{}).Size())

	// statistics
	t.h_insertdepth = lib.NewhistorgramInt64(1, 256, 4)

	infof("%v started ...\n", t.logprefix)
	return t
}

// ID return the name supplied while creating this instance.
func (t *Multiset[T]) ID() string {
	return t.name
}

// Count return the total number of occurrences across all distinct
// keys, constant time from the root's subtree size.
func (t *Multiset[T]) Count() int64 {
	return int64(subtreesize(t.root))
}

// Distinct return the number of distinct keys in the multiset.
func (t *Multiset[T]) Distinct() int64 {
	return t.n_nodes - t.n_frees
}

// Destroy this instance, releasing the node hierarchy. Calling
// Destroy on a dead tree will panic.
func (t *Multiset[T]) Destroy() {
	if t.dead {
		panic("Destroy(): already dead tree")
	}
	t.root, t.setts, t.dead = nil, nil, true
	infof("%v destroyed\n", t.logprefix)
}

//---- write operations.

// Insert add one occurrence of value. Never fails, inserting a key
// already present only bumps its occurrence counter and leaves the
// tree shape untouched.
func (t *Multiset[T]) Insert(value T) {
	t.root = t.insert(t.root, 1 /*depth*/, value)
	t.n_inserts++
	t.n_count++

	if mem := t.nodememory(); mem > t.memcapacity && t.memwarned == false {
		t.memwarned = true
		fmsg := "%v node memory %v exceeds memcapacity %v\n"
		warnf(fmsg, t.logprefix,
			humanize.Bytes(uint64(mem)), humanize.Bytes(uint64(t.memcapacity)))
	}
}

func (t *Multiset[T]) insert(nd *avlnode[T], depth int64, key T) *avlnode[T] {
	if nd == nil {
		t.h_insertdepth.Add(depth)
		return t.newnode(key)
	}

	if key < nd.key {
		nd.left = t.insert(nd.left, depth+1, key)
	} else if key > nd.key {
		nd.right = t.insert(nd.right, depth+1, key)
	} else {
		nd.count++
		t.h_insertdepth.Add(depth)
	}
	nd.reheight()
	return t.rebalance(nd)
}

// Erase remove one occurrence of value, no-op when value is absent.
// Return whether an occurrence was removed. The node is unlinked
// from the tree only when its last occurrence goes.
func (t *Multiset[T]) Erase(value T) bool {
	root, ok := t.delete(t.root, value)
	t.root = root
	if ok {
		t.n_deletes++
		t.n_count--
	} else {
		t.n_misses++
	}
	return ok
}

func (t *Multiset[T]) delete(nd *avlnode[T], key T) (*avlnode[T], bool) {
	if nd == nil { // key not present, nothing to delete
		return nil, false
	}

	var ok bool
	if key < nd.key {
		nd.left, ok = t.delete(nd.left, key)
	} else if key > nd.key {
		nd.right, ok = t.delete(nd.right, key)
	} else if nd.count > 1 {
		nd.count--
		nd.reheight()
		return nd, true
	} else {
		// last occurrence, unlink the node itself.
		t.n_frees++
		if nd.left == nil {
			return nd.right, true
		} else if nd.right == nil {
			return nd.left, true
		}
		// two children, substitute the inorder successor and
		// splice the successor out of the right subtree.
		var succ *avlnode[T]
		nd.right, succ = t.deletemin(nd.right)
		nd.key, nd.count = succ.key, succ.count
		ok = true
	}
	if ok == false {
		return nd, false
	}
	nd.reheight()
	return t.rebalance(nd), true
}

// structurally remove the left-most node of this subtree,
// irrespective of its occurrence count.
func (t *Multiset[T]) deletemin(nd *avlnode[T]) (newnd, minnd *avlnode[T]) {
	if nd.left == nil {
		return nd.right, nd
	}
	nd.left, minnd = t.deletemin(nd.left)
	nd.reheight()
	return t.rebalance(nd), minnd
}

//---- read operations.

// Has return whether at least one occurrence of value is present.
func (t *Multiset[T]) Has(value T) bool {
	return t.Occurrences(value) > 0
}

// Occurrences return the number of occurrences of value, zero when
// value is absent.
func (t *Multiset[T]) Occurrences(value T) uint64 {
	t.n_lookups++
	nd := t.root
	for nd != nil {
		if value < nd.key {
			nd = nd.left
		} else if value > nd.key {
			nd = nd.right
		} else {
			return nd.count
		}
	}
	return 0
}

// Min return the smallest key present, ok is false when the
// multiset is empty.
func (t *Multiset[T]) Min() (minval T, ok bool) {
	t.n_lookups++
	nd := t.root
	if nd == nil {
		return minval, false
	}
	for nd.left != nil {
		nd = nd.left
	}
	return nd.key, true
}

// Max return the largest key present, ok is false when the
// multiset is empty.
func (t *Multiset[T]) Max() (maxval T, ok bool) {
	t.n_lookups++
	nd := t.root
	if nd == nil {
		return maxval, false
	}
	for nd.right != nil {
		nd = nd.right
	}
	return nd.key, true
}

//---- maintanence APIs.

// Clone deep copy this instance. Avoid clone while mutations are
// in progress.
func (t *Multiset[T]) Clone(name string) *Multiset[T] {
	newt := NewMultiset[T](name, t.setts)
	newt.msetstats = t.msetstats
	newt.root = newt.clonetree(t.root)
	return newt
}

// Validate walk the full tree and confirm sort order, balance,
// height, subtree sizes and stats coherence. Panics on violation.
func (t *Multiset[T]) Validate() {
	t.validate(t.root)
}

// Stats return the per-instance operation counters.
func (t *Multiset[T]) Stats() map[string]interface{} {
	return t.stats()
}

// Fullstats return Stats() along with a fresh walk of the node
// height distribution, costlier than Stats().
func (t *Multiset[T]) Fullstats() map[string]interface{} {
	return t.fullstats()
}

// Log current statistics for this instance.
func (t *Multiset[T]) Log() {
	t.log()
}

// Dotdump convert whole tree into dot script that can be
// visualized using graphviz.
func (t *Multiset[T]) Dotdump(buffer io.Writer) {
	lines := []string{
		"digraph mset {",
		"  node[shape=record];\n",
		"}",
	}
	buffer.Write([]byte(strings.Join(lines[:len(lines)-1], "\n")))
	t.root.dotdump(buffer)
	buffer.Write([]byte(lines[len(lines)-1]))
}

//---- local functions.

func (t *Multiset[T]) newnode(key T) *avlnode[T] {
	nd := &avlnode[T]{key: key, count: 1, height: 1, size: 1}
	t.n_nodes++
	return nd
}

func (t *Multiset[T]) clonetree(nd *avlnode[T]) *avlnode[T] {
	if nd == nil {
		return nil
	}
	newnd := &avlnode[T]{
		key: nd.key, count: nd.count, height: nd.height, size: nd.size,
	}
	t.n_clones++
	newnd.left = t.clonetree(nd.left)
	newnd.right = t.clonetree(nd.right)
	return newnd
}

// estimated heap memory held by live nodes.
func (t *Multiset[T]) nodememory() int64 {
	return t.Distinct() * t.nodesize
}

//---- rotation routines.

// restore the balance invariant at nd after a child subtree
// changed height. Ties in the child's balance factor prefer the
// single rotation form.
func (t *Multiset[T]) rebalance(nd *avlnode[T]) *avlnode[T] {
	if bf := nd.balancefactor(); bf > 1 {
		if nd.left.balancefactor() < 0 {
			nd.left = t.rotateleft(nd.left)
		}
		nd = t.rotateright(nd)
	} else if bf < -1 {
		if nd.right.balancefactor() > 0 {
			nd.right = t.rotateright(nd.right)
		}
		nd = t.rotateleft(nd)
	}
	return nd
}

func (t *Multiset[T]) rotateleft(nd *avlnode[T]) *avlnode[T] {
	y := nd.right
	if y == nil {
		panic("rotateleft(): rotating without right child, call the programmer")
	}
	nd.right = y.left
	y.left = nd
	nd.reheight()
	y.reheight()
	t.n_leftrots++
	return y
}

func (t *Multiset[T]) rotateright(nd *avlnode[T]) *avlnode[T] {
	x := nd.left
	if x == nil {
		panic("rotateright(): rotating without left child, call the programmer")
	}
	nd.left = x.right
	x.right = nd
	nd.reheight()
	x.reheight()
	t.n_rightrots++
	return x
}
