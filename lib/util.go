package lib

import "fmt"
import "sort"
import "strings"

// AbsInt64 absolute value of int64 number. Except for
// -9223372036854775808, where it returns the same number.
func AbsInt64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// Prettystats format a stats map as json text, if pretty use one
// line per key.
func Prettystats(stats map[string]interface{}, pretty bool) string {
	keys := make([]string, 0, len(stats))
	for k := range stats {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	ss := make([]string, 0, len(keys))
	for _, k := range keys {
		ss = append(ss, fmt.Sprintf("%q: %v", k, stats[k]))
	}
	if pretty {
		return "{\n" + strings.Join(ss, ",\n") + "\n}"
	}
	return "{" + strings.Join(ss, ", ") + "}"
}
