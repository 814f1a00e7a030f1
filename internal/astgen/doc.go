// Package astgen translates a cmakeparse.Record into a typed node tree that
// the Bazel rule generator consumes. The mapping is mechanical and
// order-preserving: every optional field of the record is independently
// absent-or-present in the tree (a parse with no project statement yields a
// tree with no project node, not an error). The only failure mode is being
// handed something that is not a record at all.
package astgen
