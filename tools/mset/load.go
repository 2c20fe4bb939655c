package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "time"

import "github.com/bnclabs/gomset/mset"
import humanize "github.com/dustin/go-humanize"

var loadopts struct {
	n        int
	keyspace int
	seed     int
	dotfile  string
	args     []string
}

func parseLoadopts(args []string) {
	f := flag.NewFlagSet("load", flag.ExitOnError)

	seed := int(time.Now().UnixNano())
	f.IntVar(&loadopts.n, "n", 1000000,
		"number of items to generate and insert")
	f.IntVar(&loadopts.keyspace, "keyspace", 1000000,
		"generate keys within [0,keyspace)")
	f.IntVar(&loadopts.seed, "seed", seed,
		"seed value for generating inputs")
	f.StringVar(&loadopts.dotfile, "dotfile", "",
		"dump dot file output of the tree")
	f.Parse(args)

	loadopts.args = f.Args()
}

func doLoad(args []string) {
	parseLoadopts(args)

	fmt.Printf("Seed: %v\n", loadopts.seed)
	rnd := rand.New(rand.NewSource(int64(loadopts.seed)))

	t := mset.NewMultiset[int64]("load", mset.Defaultsettings())
	defer t.Destroy()

	start := time.Now()
	for i := 0; i < loadopts.n; i++ {
		t.Insert(int64(rnd.Intn(loadopts.keyspace)))
	}
	elapsed := time.Since(start)

	fmsg := "Loaded %v entries (%v distinct) in %v\n"
	fmt.Printf(
		fmsg, humanize.Comma(t.Count()), humanize.Comma(t.Distinct()), elapsed)

	t.Validate()
	t.Log()

	if loadopts.dotfile != "" {
		fd, err := os.Create(loadopts.dotfile)
		if err != nil {
			fmt.Printf("error creating %v: %v\n", loadopts.dotfile, err)
			return
		}
		defer fd.Close()
		t.Dotdump(fd)
	}
}
