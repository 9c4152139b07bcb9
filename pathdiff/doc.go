// Package pathdiff compares hierarchical documents by flattening them into
// path keyed entries.
//
// Object members extend a path with ".key" and array elements with "[i]".
// Each scalar leaf, and each empty object or array, becomes one [Entry].
// [Diff] then compares the union of the paths of both sides.
//
//	{"a": {"b": 1, "c": [true, {}]}}
//
// flattens to
//
//	a.b     number  1
//	a.c[0]  boolean true
//	a.c[1]  object  {}
package pathdiff
