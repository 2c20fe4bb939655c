package mset

import "fmt"

import s "github.com/bnclabs/gosettings"
import "github.com/cloudfoundry/gosigar"

// Defaultsettings for mset instance.
//
// "memcapacity" (int64, default: free memory)
//	Expected memory capacity, in bytes, for this instance.
//	Insert logs a warning, once, when the estimated node
//	memory crosses this capacity.
func Defaultsettings() s.Settings {
	_, _, free := getsysmem()
	setts := s.Settings{
		"memcapacity": int64(free),
	}
	return setts
}

func (t *Multiset[T]) readsettings(setts s.Settings) {
	t.memcapacity = setts.Int64("memcapacity")
	if t.memcapacity <= 0 {
		panicerr("memcapacity cannot be ZERO")
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}

func panicerr(fmsg string, args ...interface{}) {
	panic(fmt.Errorf(fmsg, args...))
}
