package arbiter

import "github.com/dshills/keyrelay/internal/key"

// redispatchGuard is the multiset of fingerprints whose synthesized events
// have been handed to the injector but not yet re-observed by the hook.
type redispatchGuard map[key.Fingerprint]int

// insert adds one occurrence of the fingerprint.
func (g redispatchGuard) insert(fp key.Fingerprint) {
	g[fp]++
}

// remove deletes one occurrence of the fingerprint, reporting whether one
// was present.
func (g redispatchGuard) remove(fp key.Fingerprint) bool {
	n, ok := g[fp]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(g, fp)
	} else {
		g[fp] = n - 1
	}
	return true
}

// size returns the total occurrence count across all fingerprints.
func (g redispatchGuard) size() int {
	total := 0
	for _, n := range g {
		total += n
	}
	return total
}
