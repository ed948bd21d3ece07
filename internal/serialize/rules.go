package serialize

import (
	"sort"
	"strings"
)

// ruleSet is the set of exclusion paths active at one node of a traversal,
// relative to that node.
type ruleSet map[string]struct{}

// with returns a copy of r extended with paths.
func (r ruleSet) with(paths []string) ruleSet {
	out := make(ruleSet, len(r)+len(paths))
	for p := range r {
		out[p] = struct{}{}
	}
	for _, p := range paths {
		p = strings.TrimPrefix(strings.TrimSpace(p), "-")
		if p != "" {
			out[p] = struct{}{}
		}
	}
	return out
}

// has reports whether key itself is excluded at this node.
func (r ruleSet) has(key string) bool {
	_, ok := r[key]
	return ok
}

// descend returns the rules inherited by the node reached through key, with
// the key prefix stripped.
func (r ruleSet) descend(key string) ruleSet {
	prefix := key + "."
	out := make(ruleSet)
	for p := range r {
		if rest, ok := strings.CutPrefix(p, prefix); ok {
			out[rest] = struct{}{}
		}
	}
	return out
}

// key is a canonical string for the set.
func (r ruleSet) key() string {
	paths := make([]string, 0, len(r))
	for p := range r {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return strings.Join(paths, ",")
}
