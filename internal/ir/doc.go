// Package ir is the typed intermediate representation of a compiled set of
// GraphQL operations and fragments, as consumed by code generators.
//
// # Decoding
//
// The IR is a view over a dynamic.Node tree produced by a frontend compiler.
// NewCompilationResult only checks that the root is an object. Every other
// field is decoded on first access and cached in a cell that is computed at
// most once, so a generator pays only for the parts of the tree it visits.
// Accessors return an error instead of a default value when the tree is
// malformed:
//
//   - *DecodeError for a missing required key, a value of the wrong shape, or
//     a by-name reference that does not resolve.
//   - *EnumError for a value outside a closed set, such as an operation type
//     other than query, mutation or subscription, or an unknown selection kind.
//
// A failed decode is cached like a successful one.
//
// # Shared tables
//
// Fragments and named types live in tables owned by the CompilationResult.
// A FragmentSpread stores only the fragment name and resolves it through the
// table on demand, so fragments are decoded once and shared. Mutually
// recursive spreads never force recursive decoding.
//
// # Operation identifiers
//
// OperationIdentifier is the SHA-256 of the operation source followed by the
// sources of all transitively referenced fragments in name order, joined by
// newlines. Reordering unrelated fragments in the input does not change it.
package ir
