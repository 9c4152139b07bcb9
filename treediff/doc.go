// Package treediff compares XML-like documents as trees.
//
// A comparison runs four stages in order:
//
//  1. [Parse] turns each document into a [Node] tree.
//  2. [Node.Canonical] sorts attributes and collapses whitespace.
//  3. [MatchChildren] pairs the children of two matched nodes, first by
//     identity key and then by attribute similarity.
//  4. [Diff] walks matched pairs and reports attribute, text and element
//     level changes as a flat list of [change.Change].
//
// [Compare] runs all four.
//
// Nodes are identified by the first attribute present from an ordered list
// of identifier attributes (see [DefaultIdentifierAttrs]); the list can be
// replaced per comparison with [IdentifierAttrs].
package treediff
