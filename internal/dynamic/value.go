package dynamic

// FromValue wraps a Go value tree made of map[string]any, []any, string,
// bool, nil and numeric types, as produced by encoding/json or by the
// frontend adapter.
func FromValue(v any) Node {
	return valueNode{v: v}
}

type valueNode struct {
	v any
}

func (n valueNode) Kind() Kind {
	switch n.v.(type) {
	case nil:
		return KindNull
	case string:
		return KindString
	case float64, float32, int, int32, int64:
		return KindNumber
	case bool:
		return KindBool
	case []any, []map[string]any:
		return KindArray
	case map[string]any:
		return KindObject
	default:
		return KindNull
	}
}

func (n valueNode) Get(key string) (Node, bool) {
	m, ok := n.v.(map[string]any)
	if !ok {
		return nil, false
	}
	child, ok := m[key]
	if !ok {
		return nil, false
	}
	return valueNode{v: child}, true
}

func (n valueNode) Len() int {
	switch a := n.v.(type) {
	case []any:
		return len(a)
	case []map[string]any:
		return len(a)
	}
	return 0
}

func (n valueNode) Index(i int) Node {
	if i < 0 || i >= n.Len() {
		return valueNode{}
	}
	switch a := n.v.(type) {
	case []any:
		return valueNode{v: a[i]}
	case []map[string]any:
		return valueNode{v: a[i]}
	}
	return valueNode{}
}

func (n valueNode) String() (string, bool) {
	s, ok := n.v.(string)
	return s, ok
}

func (n valueNode) Number() (float64, bool) {
	switch x := n.v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	}
	return 0, false
}

func (n valueNode) Bool() (bool, bool) {
	b, ok := n.v.(bool)
	return b, ok
}
