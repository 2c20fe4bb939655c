package mset

import "math/rand"
import "testing"

import "github.com/bnclabs/gomset/bag"

// drive a random insert/erase/lookup stream through the tree and a
// map based reference multiset, both shall agree after every step.
func TestMsetRandom(t *testing.T) {
	mset := NewMultiset[int]("random", Defaultsettings())
	defer mset.Destroy()
	ref := bag.NewBag[int]("reference")
	defer ref.Destroy()

	rnd := rand.New(rand.NewSource(1001))
	keyspace, repeat := 128, 20000
	for i := 0; i < repeat; i++ {
		key := rnd.Intn(keyspace)
		switch rnd.Intn(3) {
		case 0, 1: // bias towards inserts to keep the tree populated
			mset.Insert(key)
			ref.Insert(key)
		case 2:
			if x, y := mset.Erase(key), ref.Erase(key); x != y {
				t.Fatalf("op %v erase(%v) %v, expected %v", i, key, x, y)
			}
		}

		if x, y := mset.Count(), ref.Count(); x != y {
			t.Fatalf("op %v count %v, expected %v", i, x, y)
		}
		if x, y := mset.Distinct(), ref.Distinct(); x != y {
			t.Fatalf("op %v distinct %v, expected %v", i, x, y)
		}
		if x, y := mset.Has(key), ref.Has(key); x != y {
			t.Fatalf("op %v has(%v) %v, expected %v", i, key, x, y)
		}
		if x, y := mset.Occurrences(key), ref.Occurrences(key); x != y {
			t.Fatalf("op %v occurrences(%v) %v, expected %v", i, key, x, y)
		}
		x, xok := mset.Min()
		y, yok := ref.Min()
		if xok != yok || x != y {
			t.Fatalf("op %v min {%v,%v}, expected {%v,%v}", i, x, xok, y, yok)
		}
		x, xok = mset.Max()
		y, yok = ref.Max()
		if xok != yok || x != y {
			t.Fatalf("op %v max {%v,%v}, expected {%v,%v}", i, x, xok, y, yok)
		}

		mset.Validate()
	}

	// drain the tree through the reference.
	for key := 0; key < keyspace; key++ {
		for ref.Erase(key) {
			if mset.Erase(key) == false {
				t.Fatalf("drain erase(%v) failed", key)
			}
		}
	}
	mset.Validate()
	if x := mset.Count(); x != 0 {
		t.Errorf("unexpected %v", x)
	}
}

func TestMsetRandomStrings(t *testing.T) {
	mset := NewMultiset[string]("randomstr", Defaultsettings())
	defer mset.Destroy()
	ref := bag.NewBag[string]("reference")
	defer ref.Destroy()

	rnd := rand.New(rand.NewSource(2002))
	alphabet := []string{
		"alpha", "bravo", "charlie", "delta", "echo", "foxtrot",
		"golf", "hotel", "india", "juliet", "kilo", "lima",
	}
	for i := 0; i < 5000; i++ {
		key := alphabet[rnd.Intn(len(alphabet))]
		if rnd.Intn(2) == 0 {
			mset.Insert(key)
			ref.Insert(key)
		} else if x, y := mset.Erase(key), ref.Erase(key); x != y {
			t.Fatalf("op %v erase(%q) %v, expected %v", i, key, x, y)
		}
		if x, y := mset.Count(), ref.Count(); x != y {
			t.Fatalf("op %v count %v, expected %v", i, x, y)
		}
		if i%64 == 0 {
			mset.Validate()
		}
	}
	mset.Validate()
}
