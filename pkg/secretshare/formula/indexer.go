package formula

// Index rewrites formula so every Var node carries a Key whose Occurrence is
// its 1-based left-to-right position among Var nodes sharing that Name.
// Indexing is deterministic across runs for a given tree. It also returns
// the distinct participant names in first-occurrence order.
//
// Indexing is what lets the same participant appear at more than one leaf
// (e.g. "a & (a | b)"): each occurrence gets an independent key, and the
// ungrouping step in the share package reassembles them by declaration
// order. The AST itself never becomes a DAG.
func Index(f *Node) (indexed *Node, names []string) {
	counts := make(map[string]int)
	seen := make(map[string]bool)

	indexed = Walk(f, func(n *Node) *Node {
		if n.Kind() != KindVar {
			return n
		}
		name := n.key.Name
		counts[name]++
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
		cp := *n
		cp.key = Key{Name: name, Occurrence: counts[name]}
		return &cp
	})
	return indexed, names
}

// Names returns the distinct participant names referenced by f, in
// first-occurrence left-to-right order. f itself is left unchanged; the
// indexed copy that Index builds is discarded.
func Names(f *Node) []string {
	_, names := Index(f)
	return names
}

// OccurrenceCounts returns, for an already-indexed formula (or one run
// through Index), the number of times each name occurs — i.e. the length
// each name's Part.Values slice must have.
func OccurrenceCounts(indexed *Node) map[string]int {
	counts := make(map[string]int)
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.Kind() == KindVar {
			counts[n.key.Name]++
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(indexed)
	return counts
}
