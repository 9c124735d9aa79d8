package dynamic

import (
	"fmt"

	"github.com/wundergraph/astjson"
)

type jsonNode struct {
	v *astjson.Value
}

// ParseJSON parses data and returns its root node.
func ParseJSON(data []byte) (Node, error) {
	v, err := astjson.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("parse dynamic tree: %w", err)
	}
	return jsonNode{v: v}, nil
}

func (n jsonNode) Kind() Kind {
	if n.v == nil {
		return KindNull
	}
	switch n.v.Type() {
	case astjson.TypeString:
		return KindString
	case astjson.TypeNumber:
		return KindNumber
	case astjson.TypeTrue, astjson.TypeFalse:
		return KindBool
	case astjson.TypeArray:
		return KindArray
	case astjson.TypeObject:
		return KindObject
	default:
		return KindNull
	}
}

func (n jsonNode) Get(key string) (Node, bool) {
	if n.Kind() != KindObject {
		return nil, false
	}
	child := n.v.Get(key)
	if child == nil {
		return nil, false
	}
	return jsonNode{v: child}, true
}

func (n jsonNode) Len() int {
	if n.Kind() != KindArray {
		return 0
	}
	return len(n.v.GetArray())
}

func (n jsonNode) Index(i int) Node {
	if n.Kind() != KindArray {
		return jsonNode{}
	}
	items := n.v.GetArray()
	if i < 0 || i >= len(items) {
		return jsonNode{}
	}
	return jsonNode{v: items[i]}
}

func (n jsonNode) String() (string, bool) {
	if n.Kind() != KindString {
		return "", false
	}
	return string(n.v.GetStringBytes()), true
}

func (n jsonNode) Number() (float64, bool) {
	if n.Kind() != KindNumber {
		return 0, false
	}
	f, err := n.v.Float64()
	if err != nil {
		return 0, false
	}
	return f, true
}

func (n jsonNode) Bool() (bool, bool) {
	if n.Kind() != KindBool {
		return false, false
	}
	return n.v.Type() == astjson.TypeTrue, true
}
