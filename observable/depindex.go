package observable

import mapset "github.com/deckarep/golang-set/v2"

// buildDependencyIndex inverts the declared watch lists into a map from a
// property name to the computed properties that must be re-notified when it
// changes. Built once at construction, read-only afterwards; the object does
// not support adding or removing computed properties later.
func buildDependencyIndex(schema Schema) map[string][]string {
	index := map[string][]string{}
	for name, v := range schema {
		c, ok := v.(*Computed)
		if !ok {
			continue
		}
		seen := mapset.NewThreadUnsafeSet[string]()
		for _, watched := range c.Watches {
			if !seen.Add(watched) {
				continue
			}
			index[watched] = append(index[watched], name)
		}
	}
	return index
}
