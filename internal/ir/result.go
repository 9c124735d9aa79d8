package ir

import (
	"github.com/hanpama/gqlir/internal/dynamic"
)

// CompilationResult is the root of the IR. It owns every operation and
// fragment it lists, and the tables through which fragment spreads and type
// references are resolved by name.
type CompilationResult struct {
	object

	operations      lazy[[]*OperationDefinition]
	fragments       lazy[[]*FragmentDefinition]
	referencedTypes lazy[[]*NamedType]
	fragmentTable   lazy[map[string]*FragmentDefinition]
	typeTable       lazy[map[string]*NamedType]
}

// NewCompilationResult wraps the root node of a frontend compiler result.
// Only the root shape is checked here; everything below is decoded on first
// access.
func NewCompilationResult(root dynamic.Node) (*CompilationResult, error) {
	o, err := asObject(root, "")
	if err != nil {
		return nil, err
	}
	r := &CompilationResult{object: o}
	r.operations = newLazy(func() ([]*OperationDefinition, error) {
		return decodeList(r.object, "operations", func(o object) (*OperationDefinition, error) {
			return newOperationDefinition(r, o), nil
		})
	})
	r.fragments = newLazy(func() ([]*FragmentDefinition, error) {
		return decodeList(r.object, "fragments", func(o object) (*FragmentDefinition, error) {
			return newFragmentDefinition(r, o), nil
		})
	})
	r.referencedTypes = newLazy(r.decodeReferencedTypes)
	r.fragmentTable = newLazy(r.buildFragmentTable)
	r.typeTable = newLazy(func() (map[string]*NamedType, error) {
		types, err := r.referencedTypes()
		if err != nil {
			return nil, err
		}
		table := make(map[string]*NamedType, len(types))
		for _, t := range types {
			table[t.Name] = t
		}
		return table, nil
	})
	return r, nil
}

// Operations returns the operations in source order.
func (r *CompilationResult) Operations() ([]*OperationDefinition, error) { return r.operations() }

// Fragments returns the fragments in source order.
func (r *CompilationResult) Fragments() ([]*FragmentDefinition, error) { return r.fragments() }

// ReferencedTypes returns every named type used anywhere in the document set,
// unique by name, in first-occurrence order.
func (r *CompilationResult) ReferencedTypes() ([]*NamedType, error) { return r.referencedTypes() }

// Fragment looks a fragment up by name. The boolean is false when no fragment
// with that name exists.
func (r *CompilationResult) Fragment(name string) (*FragmentDefinition, bool, error) {
	table, err := r.fragmentTable()
	if err != nil {
		return nil, false, err
	}
	f, ok := table[name]
	return f, ok, nil
}

// Type looks a named type up by name.
func (r *CompilationResult) Type(name string) (*NamedType, bool, error) {
	table, err := r.typeTable()
	if err != nil {
		return nil, false, err
	}
	t, ok := table[name]
	return t, ok, nil
}

// Operation looks an operation up by name.
func (r *CompilationResult) Operation(name string) (*OperationDefinition, bool, error) {
	ops, err := r.operations()
	if err != nil {
		return nil, false, err
	}
	for _, op := range ops {
		n, err := op.Name()
		if err != nil {
			return nil, false, err
		}
		if n == name {
			return op, true, nil
		}
	}
	return nil, false, nil
}

func (r *CompilationResult) decodeReferencedTypes() ([]*NamedType, error) {
	types, err := decodeList(r.object, "referencedTypes", decodeNamedType)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]*NamedType, len(types))
	unique := types[:0]
	for i, t := range types {
		if prev, ok := seen[t.Name]; ok {
			if prev.Kind != t.Kind {
				return nil, decodeErrorf(joinIndex(r.at("referencedTypes"), i),
					"type %q listed as both %s and %s", t.Name, prev.Kind, t.Kind)
			}
			continue
		}
		seen[t.Name] = t
		unique = append(unique, t)
	}
	return unique, nil
}

func (r *CompilationResult) buildFragmentTable() (map[string]*FragmentDefinition, error) {
	frags, err := r.fragments()
	if err != nil {
		return nil, err
	}
	table := make(map[string]*FragmentDefinition, len(frags))
	for _, f := range frags {
		name, err := f.Name()
		if err != nil {
			return nil, err
		}
		if _, dup := table[name]; dup {
			return nil, decodeErrorf(f.at("name"), "duplicate fragment %q", name)
		}
		table[name] = f
	}
	return table, nil
}

func (r *CompilationResult) lookupType(name, path string) (*NamedType, error) {
	t, ok, err := r.Type(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, decodeErrorf(path, "type %q is not among the referenced types", name)
	}
	return t, nil
}

func (r *CompilationResult) lookupFragment(name, path string) (*FragmentDefinition, error) {
	f, ok, err := r.Fragment(name)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, decodeErrorf(path, "fragment %q is not defined", name)
	}
	return f, nil
}
