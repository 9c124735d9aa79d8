package ir

import (
	"strconv"

	"github.com/hanpama/gqlir/internal/dynamic"
)

// object is a backing dynamic node known to be an object, together with its
// path from the root for error reporting.
type object struct {
	node dynamic.Node
	path string
}

func asObject(n dynamic.Node, path string) (object, error) {
	if n == nil || n.Kind() != dynamic.KindObject {
		return object{}, decodeErrorf(path, "expected object, found %s", kindOf(n))
	}
	return object{node: n, path: path}, nil
}

func kindOf(n dynamic.Node) dynamic.Kind {
	if n == nil {
		return dynamic.KindNull
	}
	return n.Kind()
}

func joinKey(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}

func joinIndex(path string, i int) string {
	return path + "[" + strconv.Itoa(i) + "]"
}

func (o object) at(key string) string { return joinKey(o.path, key) }

// optional returns the child under key. An absent key and an explicit null are
// both reported as not present.
func (o object) optional(key string) (dynamic.Node, bool) {
	n, ok := o.node.Get(key)
	if !ok || n.Kind() == dynamic.KindNull {
		return nil, false
	}
	return n, true
}

func (o object) require(key string) (dynamic.Node, error) {
	n, ok := o.node.Get(key)
	if !ok {
		return nil, decodeErrorf(o.at(key), "missing required key %q", key)
	}
	if n.Kind() == dynamic.KindNull {
		return nil, decodeErrorf(o.at(key), "required key %q is null", key)
	}
	return n, nil
}

func (o object) requireString(key string) (string, error) {
	n, err := o.require(key)
	if err != nil {
		return "", err
	}
	s, ok := n.String()
	if !ok {
		return "", decodeErrorf(o.at(key), "expected string, found %s", n.Kind())
	}
	return s, nil
}

func (o object) optionalString(key string) (*string, error) {
	n, ok := o.optional(key)
	if !ok {
		return nil, nil
	}
	s, ok := n.String()
	if !ok {
		return nil, decodeErrorf(o.at(key), "expected string, found %s", n.Kind())
	}
	return &s, nil
}

func (o object) requireObject(key string) (object, error) {
	n, err := o.require(key)
	if err != nil {
		return object{}, err
	}
	return asObject(n, o.at(key))
}

func (o object) optionalObject(key string) (object, bool, error) {
	n, ok := o.optional(key)
	if !ok {
		return object{}, false, nil
	}
	obj, err := asObject(n, o.at(key))
	return obj, err == nil, err
}

// decodeList decodes the array under key element by element, preserving
// source order. Every element must be an object.
func decodeList[T any](o object, key string, decode func(object) (T, error)) ([]T, error) {
	n, err := o.require(key)
	if err != nil {
		return nil, err
	}
	return decodeArray(n, o.at(key), decode)
}

// decodeOptionalList is decodeList for an optional key; it returns nil when
// the key is absent and a non-nil slice when it is present.
func decodeOptionalList[T any](o object, key string, decode func(object) (T, error)) ([]T, error) {
	n, ok := o.optional(key)
	if !ok {
		return nil, nil
	}
	return decodeArray(n, o.at(key), decode)
}

func decodeArray[T any](n dynamic.Node, path string, decode func(object) (T, error)) ([]T, error) {
	if n.Kind() != dynamic.KindArray {
		return nil, decodeErrorf(path, "expected array, found %s", n.Kind())
	}
	out := make([]T, 0, n.Len())
	for i := range n.Len() {
		elem, err := asObject(n.Index(i), joinIndex(path, i))
		if err != nil {
			return nil, err
		}
		v, err := decode(elem)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}
