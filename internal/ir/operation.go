package ir

import (
	language "github.com/hanpama/gqlir/internal/language"
)

// OperationDefinition is a named query, mutation or subscription.
type OperationDefinition struct {
	object
	root *CompilationResult

	name                lazy[string]
	operationType       lazy[OperationType]
	variables           lazy[[]*VariableDefinition]
	rootType            lazy[*NamedType]
	selectionSet        lazy[*SelectionSet]
	source              lazy[string]
	filePath            lazy[string]
	referencedFragments lazy[[]*FragmentDefinition]
	identifier          lazy[string]
}

func newOperationDefinition(root *CompilationResult, o object) *OperationDefinition {
	op := &OperationDefinition{object: o, root: root}
	op.name = newLazy(func() (string, error) { return o.requireString("name") })
	op.operationType = newLazy(func() (OperationType, error) {
		raw, err := o.requireString("operationType")
		if err != nil {
			return "", err
		}
		t, err := ParseOperationType(raw)
		return t, withPath(err, o.at("operationType"))
	})
	op.variables = newLazy(func() ([]*VariableDefinition, error) {
		return decodeList(o, "variables", func(v object) (*VariableDefinition, error) {
			return newVariableDefinition(root, v), nil
		})
	})
	op.rootType = newLazy(func() (*NamedType, error) { return root.decodeCompositeType(o, "rootType") })
	op.selectionSet = newLazy(func() (*SelectionSet, error) {
		ss, err := o.requireObject("selectionSet")
		if err != nil {
			return nil, err
		}
		return newSelectionSet(root, ss), nil
	})
	op.source = newLazy(func() (string, error) { return o.requireString("source") })
	op.filePath = newLazy(func() (string, error) { return o.requireString("filePath") })
	op.referencedFragments = newLazy(func() ([]*FragmentDefinition, error) {
		ss, err := op.SelectionSet()
		if err != nil {
			return nil, err
		}
		return fragmentClosure(ss)
	})
	op.identifier = newLazy(func() (string, error) {
		body, err := op.EffectiveSource()
		if err != nil {
			return "", err
		}
		return Identifier(body), nil
	})
	return op
}

func (op *OperationDefinition) Name() (string, error) { return op.name() }
func (op *OperationDefinition) OperationType() (OperationType, error) { return op.operationType() }
func (op *OperationDefinition) Variables() ([]*VariableDefinition, error) { return op.variables() }

// RootType is the schema root type the operation selects on.
func (op *OperationDefinition) RootType() (*NamedType, error) { return op.rootType() }
func (op *OperationDefinition) SelectionSet() (*SelectionSet, error) { return op.selectionSet() }

// Source is the operation's own text, without the fragments it spreads.
func (op *OperationDefinition) Source() (string, error) { return op.source() }
func (op *OperationDefinition) FilePath() (string, error) { return op.filePath() }

// ReferencedFragments returns every fragment reachable from the operation's
// selection tree, including fragments spread by other fragments, sorted by
// name.
func (op *OperationDefinition) ReferencedFragments() ([]*FragmentDefinition, error) {
	return op.referencedFragments()
}

// OperationIdentifier is the content hash of the operation's effective text.
// See EffectiveSource and Identifier.
func (op *OperationDefinition) OperationIdentifier() (string, error) { return op.identifier() }

// Path is the location of the operation in the dynamic tree.
func (op *OperationDefinition) Path() string { return op.path }

// VariableDefinition is a variable declared by an operation.
type VariableDefinition struct {
	object

	name         lazy[string]
	typ          lazy[*TypeRef]
	defaultValue lazy[*language.Value]
}

func newVariableDefinition(root *CompilationResult, o object) *VariableDefinition {
	v := &VariableDefinition{object: o}
	v.name = newLazy(func() (string, error) { return o.requireString("name") })
	v.typ = newLazy(func() (*TypeRef, error) {
		t, err := o.requireObject("type")
		if err != nil {
			return nil, err
		}
		return root.decodeTypeRef(t)
	})
	v.defaultValue = newLazy(func() (*language.Value, error) {
		n, ok := o.optional("defaultValue")
		if !ok {
			return nil, nil
		}
		vo, err := asObject(n, o.at("defaultValue"))
		if err != nil {
			return nil, err
		}
		return decodeValue(vo)
	})
	return v
}

func (v *VariableDefinition) Name() (string, error) { return v.name() }
func (v *VariableDefinition) Type() (*TypeRef, error) { return v.typ() }

// DefaultValue returns nil when the variable declares no default.
func (v *VariableDefinition) DefaultValue() (*language.Value, error) { return v.defaultValue() }
