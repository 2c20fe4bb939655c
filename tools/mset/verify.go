package main

import "flag"
import "fmt"
import "math/rand"
import "time"

import "github.com/bnclabs/gomset/bag"
import "github.com/bnclabs/gomset/lib"
import "github.com/bnclabs/gomset/mset"

var verifyopts struct {
	repeat   int
	keyspace int
	seed     int
	vtick    int
	args     []string
}

func parseVerifyopts(args []string) {
	f := flag.NewFlagSet("verify", flag.ExitOnError)

	seed := int(time.Now().UnixNano())
	f.IntVar(&verifyopts.repeat, "repeat", 1000000,
		"number of operations to generate")
	f.IntVar(&verifyopts.keyspace, "keyspace", 10000,
		"generate keys within [0,keyspace)")
	f.IntVar(&verifyopts.seed, "seed", seed,
		"seed value for generating inputs")
	f.IntVar(&verifyopts.vtick, "vtick", 1000,
		"validate the tree once every vtick operations")
	f.Parse(args)

	verifyopts.args = f.Args()
}

// replay a random operation stream on the tree and on a map based
// reference multiset, panic on the first disagreement.
func doVerify(args []string) {
	parseVerifyopts(args)

	fmt.Printf("Seed: %v\n", verifyopts.seed)
	rnd := rand.New(rand.NewSource(int64(verifyopts.seed)))

	t := mset.NewMultiset[int64]("verify", mset.Defaultsettings())
	defer t.Destroy()
	ref := bag.NewBag[int64]("reference")
	defer ref.Destroy()

	stats := map[string]int{}
	for i := 1; i <= verifyopts.repeat; i++ {
		key := int64(rnd.Intn(verifyopts.keyspace))
		switch rnd.Intn(3) {
		case 0, 1: // bias towards inserts to keep the tree populated
			t.Insert(key)
			ref.Insert(key)
			stats["insert"]++
		case 2:
			x, y := t.Erase(key), ref.Erase(key)
			if x != y {
				panic(fmt.Errorf("erase(%v): %v, expected %v", key, x, y))
			}
			if x {
				stats["erase"]++
			} else {
				stats["erase.miss"]++
			}
		}

		if x, y := t.Count(), ref.Count(); x != y {
			panic(fmt.Errorf("count: %v, expected %v", x, y))
		}
		if drift := lib.AbsInt64(t.Distinct() - ref.Distinct()); drift > 0 {
			panic(fmt.Errorf("distinct keys drifted by %v", drift))
		}
		x, xok := t.Min()
		y, yok := ref.Min()
		if xok != yok || x != y {
			panic(fmt.Errorf("min {%v,%v}, expected {%v,%v}", x, xok, y, yok))
		}
		x, xok = t.Max()
		y, yok = ref.Max()
		if xok != yok || x != y {
			panic(fmt.Errorf("max {%v,%v}, expected {%v,%v}", x, xok, y, yok))
		}

		if i%verifyopts.vtick == 0 {
			t.Validate()
		}
	}
	t.Validate()

	fmt.Printf("Verified %v operations %v\n", verifyopts.repeat, stats)
	fmt.Println(lib.Prettystats(t.Stats(), true /*pretty*/))
	t.Log()
}
