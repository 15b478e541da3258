package formula

import (
	"errors"
	"fmt"
)

// ErrInvalidFormula indicates an attempt to construct a node with an illegal
// shape: a gate with no children, or a threshold whose k falls outside
// [1, len(children)].
var ErrInvalidFormula = errors.New("formula: invalid node shape")

// Kind identifies which of the four node variants a Node is.
type Kind int

const (
	// KindVar is a leaf naming a single participant.
	KindVar Kind = iota
	// KindAnd is satisfied iff every child is satisfied.
	KindAnd
	// KindOr is satisfied iff any child is satisfied.
	KindOr
	// KindThreshold is satisfied iff at least K children are satisfied.
	KindThreshold
)

func (k Kind) String() string {
	switch k {
	case KindVar:
		return "VAR"
	case KindAnd:
		return "AND"
	case KindOr:
		return "OR"
	case KindThreshold:
		return "THRESHOLD"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Key identifies a leaf: a participant name together with its 1-based
// occurrence index within a formula. Occurrence is 0 until the formula has
// gone through Index.
type Key struct {
	Name       string
	Occurrence int
}

func (k Key) String() string {
	if k.Occurrence == 0 {
		return k.Name
	}
	return fmt.Sprintf("%s#%d", k.Name, k.Occurrence)
}

// Node is an immutable access-formula tree node. The zero value is not
// meaningful; construct nodes with Var, And, Or, and Threshold.
type Node struct {
	kind     Kind
	key      Key
	k        int
	children []*Node
}

// Var creates a leaf node naming a single participant. The name is opaque
// to the formula package; it becomes the first element of a Key once the
// formula is indexed.
func Var(name string) *Node {
	return &Node{kind: KindVar, key: Key{Name: name}}
}

// And builds an AND gate. A single child collapses to that child; nested AND
// children are flattened into the new node (associativity is not otherwise
// observable). Returns ErrInvalidFormula if children is empty.
func And(children ...*Node) (*Node, error) {
	return buildGate(KindAnd, children)
}

// Or builds an OR gate with the same flattening and collapse rules as And.
func Or(children ...*Node) (*Node, error) {
	return buildGate(KindOr, children)
}

func buildGate(kind Kind, children []*Node) (*Node, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("%w: %s requires at least one child", ErrInvalidFormula, kind)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	flat := make([]*Node, 0, len(children))
	for _, c := range children {
		if c.kind == kind {
			flat = append(flat, c.children...)
		} else {
			flat = append(flat, c)
		}
	}
	return &Node{kind: kind, children: flat}, nil
}

// Threshold builds a k-of-n gate. k must satisfy 1 <= k <= len(children).
// Unlike And/Or, Threshold is never flattened: nested thresholds keep their
// own identity even when k and the child count happen to match a neighbor.
func Threshold(k int, children ...*Node) (*Node, error) {
	if k < 1 {
		return nil, fmt.Errorf("%w: threshold k must be >= 1, got %d", ErrInvalidFormula, k)
	}
	if k > len(children) {
		return nil, fmt.Errorf("%w: threshold k (%d) exceeds child count (%d)", ErrInvalidFormula, k, len(children))
	}
	cp := make([]*Node, len(children))
	copy(cp, children)
	return &Node{kind: KindThreshold, k: k, children: cp}, nil
}

// Kind reports the node's variant.
func (n *Node) Kind() Kind { return n.kind }

// Key returns the leaf's key. It is only meaningful for KindVar nodes;
// other kinds return the zero Key.
func (n *Node) Key() Key {
	if n.kind != KindVar {
		return Key{}
	}
	return n.key
}

// Threshold returns the gate's k. It is only meaningful for KindThreshold
// nodes; other kinds return 0.
func (n *Node) Threshold() int {
	if n.kind != KindThreshold {
		return 0
	}
	return n.k
}

// Children returns the node's children. Var nodes have none.
func (n *Node) Children() []*Node {
	return n.children
}

// Equal reports whether n and other are structurally identical: same kind,
// same key (for Var), same k (for Threshold), and recursively equal children
// in the same order.
func (n *Node) Equal(other *Node) bool {
	if n == other {
		return true
	}
	if n == nil || other == nil {
		return false
	}
	if n.kind != other.kind {
		return false
	}
	switch n.kind {
	case KindVar:
		return n.key == other.key
	case KindThreshold:
		if n.k != other.k {
			return false
		}
	}
	if len(n.children) != len(other.children) {
		return false
	}
	for i := range n.children {
		if !n.children[i].Equal(other.children[i]) {
			return false
		}
	}
	return true
}

func (n *Node) String() string {
	switch n.kind {
	case KindVar:
		return fmt.Sprintf("%q", n.key.String())
	case KindThreshold:
		return fmt.Sprintf("T%d(%s)", n.k, joinChildren(n.children))
	case KindAnd:
		return fmt.Sprintf("(%s)", joinChildrenSep(n.children, " & "))
	case KindOr:
		return fmt.Sprintf("(%s)", joinChildrenSep(n.children, " | "))
	default:
		return "<invalid>"
	}
}

func joinChildren(children []*Node) string {
	return joinChildrenSep(children, ", ")
}

func joinChildrenSep(children []*Node, sep string) string {
	s := ""
	for i, c := range children {
		if i > 0 {
			s += sep
		}
		s += c.String()
	}
	return s
}

// Walk applies f to n in top-down order: f runs on n first, then the
// rewriter recurses into the *result's* children (so f can redirect
// traversal by returning a different subtree). It returns a new tree; n is
// never mutated. f must preserve each node's non-Var invariants (child
// count, threshold bounds) — Walk does not re-validate them.
func Walk(n *Node, f func(*Node) *Node) *Node {
	rewritten := f(n)
	if rewritten.kind == KindVar || len(rewritten.children) == 0 {
		return rewritten
	}
	newChildren := make([]*Node, len(rewritten.children))
	for i, c := range rewritten.children {
		newChildren[i] = Walk(c, f)
	}
	cp := *rewritten
	cp.children = newChildren
	return &cp
}
