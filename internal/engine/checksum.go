package engine

import (
	"hash/fnv"
	"sort"
	"strconv"
	"strings"
)

// dependencyChecksum hashes the sorted, comma-joined dependency list. Two
// functionally equivalent dependency specs (e.g. differing only in an
// installer's own lockfile resolution) may hash differently; this is
// accepted as a conservative cache key, per spec.
func dependencyChecksum(deps []string) string {
	if len(deps) == 0 {
		return ""
	}
	sorted := append([]string(nil), deps...)
	sort.Strings(sorted)

	h := fnv.New64a()
	_, _ = h.Write([]byte(strings.Join(sorted, ",")))
	return strconv.FormatUint(h.Sum64(), 16)
}
