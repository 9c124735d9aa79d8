package ir_test

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	dynamic "github.com/hanpama/gqlir/internal/dynamic"
	ir "github.com/hanpama/gqlir/internal/ir"
)

func TestMaterialize(t *testing.T) {
	require.NoError(t, mustResult(t, heroTree()).Materialize())
	require.NoError(t, mustResult(t, transitiveTree("Zeta", "Unused", "Mid", "Alpha")).Materialize())
}

func TestMaterializeReportsDeepErrors(t *testing.T) {
	for _, tc := range []struct {
		name   string
		mutate func(root map[string]any)
		path   string
	}{
		{
			name: "field inside fragment",
			mutate: func(root map[string]any) {
				frag := root["fragments"].([]any)[0].(map[string]any)
				inl := frag["selectionSet"].(map[string]any)["selections"].([]any)[1].(map[string]any)
				field := inl["selectionSet"].(map[string]any)["selections"].([]any)[0].(map[string]any)
				delete(field, "type")
			},
			path: "fragments[0].selectionSet.selections[1].selectionSet.selections[0].type",
		},
		{
			name: "nested operation field",
			mutate: func(root map[string]any) {
				hero := operationAt(root, 0)["selectionSet"].(map[string]any)["selections"].([]any)[0].(map[string]any)
				friends := hero["selectionSet"].(map[string]any)["selections"].([]any)[1].(map[string]any)
				friends["selectionSet"].(map[string]any)["selections"].([]any)[0].(map[string]any)["name"] = false
			},
			path: "operations[0].selectionSet.selections[0].selectionSet.selections[1].selectionSet.selections[0].name",
		},
		{
			name: "dangling spread",
			mutate: func(root map[string]any) {
				root["fragments"] = []any{}
			},
			path: "operations[0].selectionSet.selections[0].selectionSet.selections[0].fragment",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			root := heroTree()
			tc.mutate(root)
			err := mustResult(t, root).Materialize()
			var decodeErr *ir.DecodeError
			require.ErrorAs(t, err, &decodeErr)
			require.Equal(t, tc.path, decodeErr.Path)
		})
	}
}

type decodedOperation struct {
	Name       string
	Type       ir.OperationType
	Identifier string
	Fragments  []string
	Keys       []string
}

func decodeOperations(t *testing.T, r *ir.CompilationResult) []decodedOperation {
	t.Helper()
	require.NoError(t, r.Materialize())
	ops, err := r.Operations()
	require.NoError(t, err)
	var out []decodedOperation
	for _, op := range ops {
		var d decodedOperation
		d.Name, err = op.Name()
		require.NoError(t, err)
		d.Type, err = op.OperationType()
		require.NoError(t, err)
		d.Identifier, err = op.OperationIdentifier()
		require.NoError(t, err)
		frags, err := op.ReferencedFragments()
		require.NoError(t, err)
		for _, f := range frags {
			name, err := f.Name()
			require.NoError(t, err)
			d.Fragments = append(d.Fragments, name)
		}
		set, err := op.SelectionSet()
		require.NoError(t, err)
		require.NoError(t, ir.Walk(set, func(sel ir.Selection) error {
			if f, ok := sel.(*ir.Field); ok {
				key, err := f.ResponseKey()
				if err != nil {
					return err
				}
				d.Keys = append(d.Keys, key)
			}
			return nil
		}))
		out = append(out, d)
	}
	return out
}

func TestJSONAndValueTreesDecodeAlike(t *testing.T) {
	root := transitiveTree("Zeta", "Unused", "Mid", "Alpha")
	root["operations"] = append(root["operations"].([]any), heroTree()["operations"].([]any)...)
	root["fragments"] = append(root["fragments"].([]any), heroTree()["fragments"].([]any)...)

	data, err := json.Marshal(root)
	require.NoError(t, err)
	node, err := dynamic.ParseJSON(data)
	require.NoError(t, err)
	fromJSON, err := ir.NewCompilationResult(node)
	require.NoError(t, err)

	want := decodeOperations(t, mustResult(t, root))
	got := decodeOperations(t, fromJSON)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("decoded operations differ (-value +json):\n%s", diff)
	}
	require.Len(t, got, 2)
	require.Equal(t, []string{"HeroDetails"}, got[1].Fragments)
}
