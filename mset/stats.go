package mset

import "encoding/json"
import "fmt"

import "github.com/bnclabs/gomset/lib"
import humanize "github.com/dustin/go-humanize"

// per instance counters, all of them monotonically increasing
// except n_count which tracks live occurrences.
type msetstats struct {
	n_count     int64 // occurrences, n_inserts - n_deletes
	n_inserts   int64
	n_deletes   int64 // effective erase calls
	n_misses    int64 // erase calls that found nothing
	n_lookups   int64
	n_nodes     int64 // nodes created
	n_frees     int64 // nodes destroyed
	n_clones    int64
	n_leftrots  int64
	n_rightrots int64
}

func (t *Multiset[T]) stats() map[string]interface{} {
	stats := map[string]interface{}{
		"n_count":     t.n_count,
		"n_inserts":   t.n_inserts,
		"n_deletes":   t.n_deletes,
		"n_misses":    t.n_misses,
		"n_lookups":   t.n_lookups,
		"n_nodes":     t.n_nodes,
		"n_frees":     t.n_frees,
		"n_clones":    t.n_clones,
		"n_leftrots":  t.n_leftrots,
		"n_rightrots": t.n_rightrots,
	}
	stats["node.size"] = t.nodesize
	stats["node.memory"] = t.nodememory()
	stats["h_insertdepth"] = t.h_insertdepth.Fullstats()
	return stats
}

func (t *Multiset[T]) fullstats() map[string]interface{} {
	stats := t.stats()

	h_height := lib.NewhistorgramInt64(1, 256, 1)
	t.heightstats(t.root, 1 /*depth*/, h_height)
	stats["h_height"] = h_height.Fullstats()

	if x := h_height.Samples(); x != t.Distinct() {
		fmsg := "expected h_height.samples:%v to be same as Distinct():%v"
		panic(fmt.Errorf(fmsg, x, t.Distinct()))
	}
	return stats
}

func (t *Multiset[T]) heightstats(
	nd *avlnode[T], depth int64, h *lib.HistogramInt64) {

	if nd == nil {
		return
	}
	h.Add(depth)
	t.heightstats(nd.left, depth+1, h)
	t.heightstats(nd.right, depth+1, h)
}

func (t *Multiset[T]) log() {
	stats := t.fullstats()

	mem := humanize.Bytes(uint64(t.nodememory()))
	fmsg := "%v %v nodes for %v entries, ~%v in memory\n"
	infof(fmsg, t.logprefix, t.Distinct(), t.Count(), mem)

	text, err := json.Marshal(stats)
	if err != nil {
		panic(fmt.Errorf("log(): %v", err))
	}
	infof("%v stats %v\n", t.logprefix, string(text))
}
