package dynamic_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dynamic "github.com/hanpama/gqlir/internal/dynamic"
)

const document = `{
  "name": "HeroAndFriends",
  "alias": null,
  "count": 3,
  "ratio": 0.5,
  "deprecated": false,
  "selections": [{"kind": "Field"}, "loose", 7, true, null, []]
}`

// nodes returns the same document behind both adapters.
func nodes(t *testing.T) map[string]dynamic.Node {
	t.Helper()
	fromJSON, err := dynamic.ParseJSON([]byte(document))
	require.NoError(t, err)
	var v any
	require.NoError(t, json.Unmarshal([]byte(document), &v))
	return map[string]dynamic.Node{
		"json":  fromJSON,
		"value": dynamic.FromValue(v),
	}
}

func TestNodeAdapters(t *testing.T) {
	for name, root := range nodes(t) {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, dynamic.KindObject, root.Kind())

			n, ok := root.Get("name")
			require.True(t, ok)
			s, ok := n.String()
			require.True(t, ok)
			assert.Equal(t, "HeroAndFriends", s)
			_, ok = n.Number()
			assert.False(t, ok)

			n, ok = root.Get("alias")
			require.True(t, ok, "explicit null is present")
			assert.Equal(t, dynamic.KindNull, n.Kind())

			_, ok = root.Get("missing")
			assert.False(t, ok)

			n, _ = root.Get("count")
			f, ok := n.Number()
			require.True(t, ok)
			assert.Equal(t, 3.0, f)
			n, _ = root.Get("ratio")
			f, _ = n.Number()
			assert.Equal(t, 0.5, f)

			n, _ = root.Get("deprecated")
			b, ok := n.Bool()
			require.True(t, ok)
			assert.False(t, b)
			_, ok = n.String()
			assert.False(t, ok)

			sels, ok := root.Get("selections")
			require.True(t, ok)
			require.Equal(t, dynamic.KindArray, sels.Kind())
			require.Equal(t, 6, sels.Len())
			kinds := make([]dynamic.Kind, 0, sels.Len())
			for i := range sels.Len() {
				kinds = append(kinds, sels.Index(i).Kind())
			}
			assert.Equal(t, []dynamic.Kind{
				dynamic.KindObject, dynamic.KindString, dynamic.KindNumber,
				dynamic.KindBool, dynamic.KindNull, dynamic.KindArray,
			}, kinds)

			first := sels.Index(0)
			k, ok := first.Get("kind")
			require.True(t, ok)
			s, _ = k.String()
			assert.Equal(t, "Field", s)

			assert.Equal(t, dynamic.KindNull, sels.Index(-1).Kind())
			assert.Equal(t, dynamic.KindNull, sels.Index(6).Kind())
			assert.Zero(t, root.Len())
			assert.Equal(t, dynamic.KindNull, root.Index(0).Kind())
			_, ok = sels.Get("kind")
			assert.False(t, ok)
		})
	}
}

func TestParseJSONError(t *testing.T) {
	_, err := dynamic.ParseJSON([]byte(`{"operations": [`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse dynamic tree")
}

func TestFromValueNumericTypes(t *testing.T) {
	for _, v := range []any{int(2), int32(2), int64(2), float32(2), float64(2)} {
		n := dynamic.FromValue(v)
		require.Equal(t, dynamic.KindNumber, n.Kind())
		f, ok := n.Number()
		require.True(t, ok)
		assert.Equal(t, 2.0, f)
	}
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "object", dynamic.KindObject.String())
	assert.Equal(t, "boolean", dynamic.KindBool.String())
	assert.Equal(t, "Kind(42)", dynamic.Kind(42).String())
}
