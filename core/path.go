package core

// TracePath rebuilds the source→target vertex sequence from a predecessor map in
// which prev[source] and every unreachable vertex map to "". It reports false when
// target was never reached. The walk is bounded by len(prev), so a corrupted map
// (for example one containing a cycle) cannot loop forever.
func TracePath(prev map[string]string, source, target string) ([]string, bool) {
	if source == target {
		return []string{source}, true
	}
	if prev[target] == "" {
		return nil, false
	}
	rev := []string{target}
	for cur := target; cur != source; {
		cur = prev[cur]
		if cur == "" || len(rev) > len(prev) {
			return nil, false
		}
		rev = append(rev, cur)
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, true
}
