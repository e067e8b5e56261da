// Package schema compiles modeled literals into repository-submittable type
// definitions and assigns unique query-selector names per schema group.
//
// The three compilers (NodeType, Property, ChildNode) are pure transforms:
// literal identity + optional declarative record + optional programmatic
// capabilities in, a fresh jcr definition record out. No I/O, no shared
// mutable state; safe under arbitrary concurrent invocation.
package schema

import (
	"github.com/mbenson/jcrbox/literal"
)

// mergeNames concatenates declared and contributed names, deduplicating
// while preserving order, declared names first.
func mergeNames(declared, contributed []string) []string {
	var merged []string
	seen := make(map[string]struct{}, len(declared)+len(contributed))
	for _, group := range [][]string{declared, contributed} {
		for _, name := range group {
			if _, ok := seen[name]; ok {
				continue
			}
			seen[name] = struct{}{}
			merged = append(merged, name)
		}
	}
	return merged
}

func fullnames(nodes []*literal.Node) []string {
	if len(nodes) == 0 {
		return nil
	}
	names := make([]string, len(nodes))
	for i, n := range nodes {
		names[i] = n.Fullname()
	}
	return names
}
