// Package internalcheck holds static-analysis tests that enforce
// project-specific hygiene invariants across the module via AST inspection
// rather than a linter configuration file. These tests are not exhaustive
// correctness checks; they catch the specific mistakes this project has
// decided are worth failing a build over.
//
// It is not intended for external use and the checks may change without
// notice as the module's invariants evolve.
package internalcheck
