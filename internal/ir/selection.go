package ir

import (
	"fmt"

	language "github.com/hanpama/gqlir/internal/language"
)

// SelectionSet is an ordered list of selections made on a composite type.
// Order is preserved from the source.
type SelectionSet struct {
	object

	parentType lazy[*NamedType]
	selections lazy[[]Selection]
}

func newSelectionSet(root *CompilationResult, o object) *SelectionSet {
	s := &SelectionSet{object: o}
	s.parentType = newLazy(func() (*NamedType, error) { return root.decodeCompositeType(o, "parentType") })
	s.selections = newLazy(func() ([]Selection, error) {
		return decodeList(o, "selections", func(sel object) (Selection, error) {
			return decodeSelection(root, sel)
		})
	})
	return s
}

// ParentType is the type in whose context the selections are resolved.
func (s *SelectionSet) ParentType() (*NamedType, error) { return s.parentType() }
func (s *SelectionSet) Selections() ([]Selection, error) { return s.selections() }

// Selection is one entry of a selection set. It is implemented by exactly
// *Field, *InlineFragment and *FragmentSpread; use a type switch to tell them
// apart.
type Selection interface {
	Kind() SelectionKind
	selection()
}

var (
	_ Selection = (*Field)(nil)
	_ Selection = (*InlineFragment)(nil)
	_ Selection = (*FragmentSpread)(nil)
)

// decodeSelection dispatches on the node's kind tag. The set of variants is
// closed; an unknown tag is an error, never a default.
func decodeSelection(root *CompilationResult, o object) (Selection, error) {
	raw, err := o.requireString("kind")
	if err != nil {
		return nil, err
	}
	kind, err := parseSelectionKind(raw)
	if err != nil {
		return nil, withPath(err, o.at("kind"))
	}
	switch kind {
	case SelectionField:
		return newField(root, o), nil
	case SelectionInlineFragment:
		return newInlineFragment(root, o), nil
	case SelectionFragmentSpread:
		return newFragmentSpread(root, o), nil
	}
	panic(fmt.Sprintf("ir: selection kind %q has no decoder", kind))
}

// Field is a field selection.
type Field struct {
	object

	name              lazy[string]
	alias             lazy[*string]
	arguments         lazy[[]*Argument]
	typ               lazy[*TypeRef]
	selectionSet      lazy[*SelectionSet]
	deprecationReason lazy[*string]
	description       lazy[*string]
}

func newField(root *CompilationResult, o object) *Field {
	f := &Field{object: o}
	f.name = newLazy(func() (string, error) { return o.requireString("name") })
	f.alias = newLazy(func() (*string, error) { return o.optionalString("alias") })
	f.arguments = newLazy(func() ([]*Argument, error) {
		return decodeOptionalList(o, "arguments", newArgument)
	})
	f.typ = newLazy(func() (*TypeRef, error) {
		t, err := o.requireObject("type")
		if err != nil {
			return nil, err
		}
		return root.decodeTypeRef(t)
	})
	f.selectionSet = newLazy(func() (*SelectionSet, error) {
		ss, ok, err := o.optionalObject("selectionSet")
		if !ok {
			return nil, err
		}
		return newSelectionSet(root, ss), nil
	})
	f.deprecationReason = newLazy(func() (*string, error) { return o.optionalString("deprecationReason") })
	f.description = newLazy(func() (*string, error) { return o.optionalString("description") })
	return f
}

func (*Field) Kind() SelectionKind { return SelectionField }
func (*Field) selection() {}

func (f *Field) Name() (string, error) { return f.name() }

// Alias returns nil when the field is not aliased.
func (f *Field) Alias() (*string, error) { return f.alias() }

// ResponseKey is the key under which the field appears in a response: the
// alias when one is set and non-empty, the field name otherwise.
func (f *Field) ResponseKey() (string, error) {
	alias, err := f.alias()
	if err != nil {
		return "", err
	}
	if alias != nil && *alias != "" {
		return *alias, nil
	}
	return f.name()
}

// Arguments returns nil when the field node carries no arguments key.
func (f *Field) Arguments() ([]*Argument, error) { return f.arguments() }
func (f *Field) Type() (*TypeRef, error) { return f.typ() }

// SelectionSet returns nil for leaf-typed fields.
func (f *Field) SelectionSet() (*SelectionSet, error) { return f.selectionSet() }

// DeprecationReason returns nil when the field is not deprecated.
func (f *Field) DeprecationReason() (*string, error) { return f.deprecationReason() }

// IsDeprecated reports whether a deprecation reason is present, including an
// empty one.
func (f *Field) IsDeprecated() (bool, error) {
	reason, err := f.deprecationReason()
	if err != nil {
		return false, err
	}
	return reason != nil, nil
}

func (f *Field) Description() (*string, error) { return f.description() }

// Argument is a field argument with its literal or variable value.
type Argument struct {
	object

	name  lazy[string]
	value lazy[*language.Value]
}

func newArgument(o object) (*Argument, error) {
	a := &Argument{object: o}
	a.name = newLazy(func() (string, error) { return o.requireString("name") })
	a.value = newLazy(func() (*language.Value, error) {
		v, err := o.requireObject("value")
		if err != nil {
			return nil, err
		}
		return decodeValue(v)
	})
	return a, nil
}

func (a *Argument) Name() (string, error) { return a.name() }
func (a *Argument) Value() (*language.Value, error) { return a.value() }

// InlineFragment is an inline fragment, optionally narrowed by a type
// condition.
type InlineFragment struct {
	object

	typeCondition lazy[*NamedType]
	selectionSet  lazy[*SelectionSet]
}

func newInlineFragment(root *CompilationResult, o object) *InlineFragment {
	f := &InlineFragment{object: o}
	f.typeCondition = newLazy(func() (*NamedType, error) {
		n, ok := o.optional("typeCondition")
		if !ok {
			return nil, nil
		}
		name, ok := n.String()
		if !ok {
			return nil, decodeErrorf(o.at("typeCondition"), "expected type name, found %s", n.Kind())
		}
		return root.resolveComposite(name, o.at("typeCondition"))
	})
	f.selectionSet = newLazy(func() (*SelectionSet, error) {
		ss, err := o.requireObject("selectionSet")
		if err != nil {
			return nil, err
		}
		return newSelectionSet(root, ss), nil
	})
	return f
}

func (*InlineFragment) Kind() SelectionKind { return SelectionInlineFragment }
func (*InlineFragment) selection() {}

// TypeCondition returns nil when the fragment does not narrow the parent type.
func (f *InlineFragment) TypeCondition() (*NamedType, error) { return f.typeCondition() }
func (f *InlineFragment) SelectionSet() (*SelectionSet, error) { return f.selectionSet() }

// FragmentSpread references a fragment by name. It does not own the fragment;
// Fragment resolves the name against the root's fragment table.
type FragmentSpread struct {
	object
	root *CompilationResult

	fragmentName lazy[string]
}

func newFragmentSpread(root *CompilationResult, o object) *FragmentSpread {
	s := &FragmentSpread{object: o, root: root}
	s.fragmentName = newLazy(func() (string, error) {
		n, err := o.require("fragment")
		if err != nil {
			return "", err
		}
		if name, ok := n.String(); ok {
			return name, nil
		}
		ref, err := asObject(n, o.at("fragment"))
		if err != nil {
			return "", decodeErrorf(o.at("fragment"), "expected fragment name or object, found %s", n.Kind())
		}
		return ref.requireString("name")
	})
	return s
}

func (*FragmentSpread) Kind() SelectionKind { return SelectionFragmentSpread }
func (*FragmentSpread) selection() {}

// FragmentName is the lookup key of the spread fragment.
func (s *FragmentSpread) FragmentName() (string, error) { return s.fragmentName() }

// Fragment resolves the spread. Every spread of the same name yields the same
// *FragmentDefinition.
func (s *FragmentSpread) Fragment() (*FragmentDefinition, error) {
	name, err := s.fragmentName()
	if err != nil {
		return nil, err
	}
	return s.root.lookupFragment(name, s.at("fragment"))
}
