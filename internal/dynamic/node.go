// Package dynamic is the adapter boundary between a frontend compiler's output
// and the typed IR. A Node is a read-only view over an untyped tree addressable
// by object key and array index.
package dynamic

import "fmt"

// Kind is the shape of a dynamic value.
type Kind uint8

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindArray
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindString:
		return "string"
	case KindNumber:
		return "number"
	case KindBool:
		return "boolean"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Node is a single value in the dynamic tree.
//
// Accessors never panic on a shape mismatch: Get reports false for non-objects,
// Len is 0 for non-arrays, and the scalar accessors report false when the node
// holds a different kind.
type Node interface {
	Kind() Kind
	// Get returns the child stored under key. A key that is present with an
	// explicit null yields a KindNull node and true.
	Get(key string) (Node, bool)
	Len() int
	Index(i int) Node
	String() (string, bool)
	Number() (float64, bool)
	Bool() (bool, bool)
}
