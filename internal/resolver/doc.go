// Package resolver folds the four-level experiment configuration tree
// into one fully-concrete record per subject.
//
// Resolution is a pure, synchronous pass over the in-memory tree: scalar
// fields resolve by innermost-wins precedence (subject group over
// cluster over program over documented default), subject counts and the
// baseline partition are computed per group, and every embedded search
// space is validated eagerly through the searchspace package. A single
// invalid group fails the whole call; a partially tuned experiment is
// unsafe to run, so there are no partial results.
package resolver
