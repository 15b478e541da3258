// Package formula provides the access-formula AST, parser, and variable
// indexer used to describe monotone access structures.
//
// # Building formulas
//
// A formula is a tree of four node kinds, built with smart constructors that
// enforce the invariants of spec: a leaf carries a participant name; And and
// Or each require at least one child (a single child collapses to that
// child, and nested same-kind children flatten); Threshold requires
// 1 <= k <= len(children) and is never flattened.
//
//	f := formula.And(
//	    formula.Var("alice"),
//	    formula.Or(formula.Var("bob"), formula.Threshold(2, formula.Var("carol"), formula.Var("dave"), formula.Var("erin"))),
//	)
//
// # Parsing
//
// Parse accepts the human-readable grammar (see Parse's doc comment) and
// returns the same tree shape that the constructors above produce.
//
// # Indexing
//
// Index rewrites every Var node so that its Key carries a 1-based
// left-to-right occurrence count, giving repeated participant names distinct
// leaf identities without requiring the tree to become a DAG.
package formula
