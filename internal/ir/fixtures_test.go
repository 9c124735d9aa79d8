package ir_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	dynamic "github.com/hanpama/gqlir/internal/dynamic"
	ir "github.com/hanpama/gqlir/internal/ir"
)

// Builders for compiler output trees in the wire format read by ir.

func starWarsTypes() []any {
	return []any{
		map[string]any{"kind": "OBJECT", "name": "Query"},
		map[string]any{"kind": "OBJECT", "name": "Mutation"},
		map[string]any{"kind": "INTERFACE", "name": "Character", "description": "A character in the Star Wars Trilogy"},
		map[string]any{"kind": "OBJECT", "name": "Human"},
		map[string]any{"kind": "OBJECT", "name": "Droid"},
		map[string]any{"kind": "UNION", "name": "SearchResult"},
		map[string]any{"kind": "ENUM", "name": "Episode"},
		map[string]any{"kind": "SCALAR", "name": "String"},
		map[string]any{"kind": "SCALAR", "name": "ID"},
		map[string]any{"kind": "INPUT_OBJECT", "name": "ReviewInput"},
	}
}

func named(name string) map[string]any { return map[string]any{"kind": "NAMED", "name": name} }
func list(of map[string]any) map[string]any {
	return map[string]any{"kind": "LIST", "ofType": of}
}
func nonNull(of map[string]any) map[string]any {
	return map[string]any{"kind": "NON_NULL", "ofType": of}
}

func selectionSet(parent string, sels ...any) map[string]any {
	if sels == nil {
		sels = []any{}
	}
	return map[string]any{"parentType": parent, "selections": sels}
}

func leaf(name string, typ map[string]any) map[string]any {
	return map[string]any{"kind": "Field", "name": name, "type": typ}
}

func object(name string, typ map[string]any, set map[string]any) map[string]any {
	return map[string]any{"kind": "Field", "name": name, "type": typ, "selectionSet": set}
}

func spread(name string) map[string]any {
	return map[string]any{"kind": "FragmentSpread", "fragment": name}
}

func inline(typeCondition string, set map[string]any) map[string]any {
	m := map[string]any{"kind": "InlineFragment", "selectionSet": set}
	if typeCondition != "" {
		m["typeCondition"] = typeCondition
	}
	return m
}

func operation(name, source string, set map[string]any) map[string]any {
	return map[string]any{
		"name":          name,
		"operationType": "query",
		"rootType":      "Query",
		"variables":     []any{},
		"selectionSet":  set,
		"source":        source,
		"filePath":      "queries/" + name + ".graphql",
	}
}

func fragment(name, on, source string, set map[string]any) map[string]any {
	return map[string]any{
		"name":         name,
		"type":         on,
		"selectionSet": set,
		"source":       source,
		"filePath":     "fragments/" + name + ".graphql",
	}
}

func tree(ops []any, frags []any) map[string]any {
	if ops == nil {
		ops = []any{}
	}
	if frags == nil {
		frags = []any{}
	}
	return map[string]any{"operations": ops, "fragments": frags, "referencedTypes": starWarsTypes()}
}

const (
	heroAndFriendsSource = "query HeroAndFriends {\n  hero {\n    ...HeroDetails\n    friends {\n      name\n    }\n  }\n}"
	heroDetailsSource    = "fragment HeroDetails on Character {\n  name\n  ... on Droid {\n    primaryFunction\n  }\n}"
)

// heroTree is a single operation spreading one fragment.
func heroTree() map[string]any {
	return tree(
		[]any{operation("HeroAndFriends", heroAndFriendsSource,
			selectionSet("Query",
				object("hero", named("Character"), selectionSet("Character",
					spread("HeroDetails"),
					object("friends", list(named("Character")), selectionSet("Character",
						leaf("name", nonNull(named("String"))),
					)),
				)),
			))},
		[]any{fragment("HeroDetails", "Character", heroDetailsSource,
			selectionSet("Character",
				leaf("name", nonNull(named("String"))),
				inline("Droid", selectionSet("Droid",
					leaf("primaryFunction", named("String")),
				)),
			))},
	)
}

func mustResult(t *testing.T, root map[string]any) *ir.CompilationResult {
	t.Helper()
	r, err := ir.NewCompilationResult(dynamic.FromValue(root))
	require.NoError(t, err)
	return r
}

func firstOperation(t *testing.T, r *ir.CompilationResult) *ir.OperationDefinition {
	t.Helper()
	ops, err := r.Operations()
	require.NoError(t, err)
	require.NotEmpty(t, ops)
	return ops[0]
}

func rootSelections(t *testing.T, op *ir.OperationDefinition) []ir.Selection {
	t.Helper()
	set, err := op.SelectionSet()
	require.NoError(t, err)
	sels, err := set.Selections()
	require.NoError(t, err)
	return sels
}

// countingNode records every Get made through it or its descendants.
type countingNode struct {
	dynamic.Node
	gets *getCounter
}

type getCounter struct {
	mu sync.Mutex
	n  map[string]int
}

func newCountingNode(root map[string]any) (countingNode, *getCounter) {
	c := &getCounter{n: map[string]int{}}
	return countingNode{Node: dynamic.FromValue(root), gets: c}, c
}

func (c *getCounter) count(key string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.n[key]
}

func (n countingNode) Get(key string) (dynamic.Node, bool) {
	n.gets.mu.Lock()
	n.gets.n[key]++
	n.gets.mu.Unlock()
	child, ok := n.Node.Get(key)
	if !ok {
		return nil, false
	}
	return countingNode{Node: child, gets: n.gets}, true
}

func (n countingNode) Index(i int) dynamic.Node {
	return countingNode{Node: n.Node.Index(i), gets: n.gets}
}
