package share

import (
	"math/big"
	"sort"

	"github.com/coinbase/go-secretshare/pkg/secretshare/formula"
)

// Part is one participant's share: Values[j] holds the share for the
// (j+1)-th occurrence of Name in the formula.
type Part struct {
	Name   string
	Values []*big.Int
}

// Group sorts an Assignment by name, then by occurrence index, and groups it
// by name, producing one Part per distinct name with a defined value. It asserts (returning
// ErrShapeMismatch rather than silently continuing) that each name's values
// arrive in contiguous 1..n occurrence order with no gaps — a gap would
// indicate a bug in the splitter's walk, not a caller error.
func Group(assigned Assignment) ([]Part, error) {
	type entry struct {
		key formula.Key
		val *big.Int
	}
	entries := make([]entry, 0, len(assigned))
	for k, v := range assigned {
		if !v.Defined {
			continue
		}
		entries = append(entries, entry{key: k, val: v.N})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].key.Name != entries[j].key.Name {
			return entries[i].key.Name < entries[j].key.Name
		}
		return entries[i].key.Occurrence < entries[j].key.Occurrence
	})

	index := make(map[string]int)
	var parts []Part
	for _, e := range entries {
		pi, ok := index[e.key.Name]
		if !ok {
			pi = len(parts)
			index[e.key.Name] = pi
			parts = append(parts, Part{Name: e.key.Name})
		}
		if e.key.Occurrence-1 != len(parts[pi].Values) {
			return nil, ErrShapeMismatch
		}
		parts[pi].Values = append(parts[pi].Values, e.val)
	}
	return parts, nil
}

// Ungroup is the inverse of Group: it expands a list of Parts into an
// Assignment keyed by (name, 1-based occurrence).
func Ungroup(parts []Part) Assignment {
	assigned := make(Assignment)
	for _, p := range parts {
		for i, v := range p.Values {
			assigned[formula.Key{Name: p.Name, Occurrence: i + 1}] = Defined(v)
		}
	}
	return assigned
}
