// Copyright 2026 The AWS Login Authors
// SPDX-License-Identifier: Apache-2.0

package template

// Resolve walks the inheritance chain of the named template and
// returns its fully-merged settings. The chain is applied root
// ancestor first with each descendant overlaid on top, so a key
// defined at multiple levels takes the most-derived value.
//
// Cycle detection is performed during the walk, not after it: the
// first revisit of an already-seen name fails with a [CycleError]
// naming the offending chain, which bounds work on malformed input.
// A reference to a name absent from the collection — the requested
// name or any extends target — fails with [UnknownTemplateError].
//
// Resolve is a pure function over the collection: it never mutates
// its input and repeated calls yield identical results.
func Resolve(collection Collection, name string) (Settings, error) {
	// Walk leaf to root, collecting the chain.
	var chain []string
	visited := make(map[string]bool)
	current := name

	for {
		if visited[current] {
			return nil, &CycleError{Chain: append(chain, current)}
		}
		visited[current] = true
		chain = append(chain, current)

		tmpl, exists := collection[current]
		if !exists {
			return nil, &UnknownTemplateError{Name: current}
		}
		if tmpl.Extends == "" {
			break
		}
		current = tmpl.Extends
	}

	// Merge root first. chain[len-1] is the root ancestor, chain[0]
	// the requested template; overlaying toward the leaf makes the
	// most-derived value win.
	resolved := collection[chain[len(chain)-1]].Settings.Clone()
	for i := len(chain) - 2; i >= 0; i-- {
		for key, value := range collection[chain[i]].Settings {
			resolved[key] = value
		}
	}
	return resolved, nil
}
