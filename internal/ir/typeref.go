package ir

import "strings"

// NamedType is an entry of the document set's type table. Named types are
// shared: every reference to the same name yields the same *NamedType.
type NamedType struct {
	Name        string   `json:"name"`
	Kind        TypeKind `json:"kind"`
	Description string   `json:"description,omitempty"`
}

// IsComposite reports whether selections can be made on the type.
func (t *NamedType) IsComposite() bool {
	switch t.Kind {
	case TypeKindObject, TypeKindInterface, TypeKindUnion:
		return true
	}
	return false
}

// IsAbstract reports whether the type is an interface or a union.
func (t *NamedType) IsAbstract() bool {
	return t.Kind == TypeKindInterface || t.Kind == TypeKindUnion
}

// IsLeaf reports whether the type is a scalar or an enum.
func (t *NamedType) IsLeaf() bool {
	return t.Kind == TypeKindScalar || t.Kind == TypeKindEnum
}

// TypeRef is a possibly wrapped type reference as found on fields and
// variables, e.g. [Episode!]!.
type TypeRef struct {
	Kind   TypeRefKind `json:"kind"`
	OfType *TypeRef    `json:"ofType,omitempty"`
	Named  *NamedType  `json:"named,omitempty"`
}

func (t *TypeRef) IsNonNull() bool {
	return t != nil && t.Kind == TypeRefKindNonNull
}

func (t *TypeRef) IsList() bool {
	if t == nil {
		return false
	}
	if t.Kind == TypeRefKindList {
		return true
	}
	return t.Kind == TypeRefKindNonNull && t.OfType != nil && t.OfType.Kind == TypeRefKindList
}

// Unwrap removes one layer of list or non-null wrapping.
func (t *TypeRef) Unwrap() *TypeRef {
	if t.Kind == TypeRefKindNonNull || t.Kind == TypeRefKindList {
		return t.OfType
	}
	return t
}

// NamedType returns the innermost named type.
func (t *TypeRef) NamedType() *NamedType {
	for cur := t; cur != nil; cur = cur.OfType {
		if cur.Kind == TypeRefKindNamed {
			return cur.Named
		}
	}
	return nil
}

// String renders the reference as a GraphQL type literal.
func (t *TypeRef) String() string {
	if t == nil {
		return "Unknown"
	}
	switch t.Kind {
	case TypeRefKindNamed:
		if t.Named == nil {
			return "Unknown"
		}
		return t.Named.Name
	case TypeRefKindList:
		return "[" + t.OfType.String() + "]"
	case TypeRefKindNonNull:
		inner := t.OfType.String()
		if strings.HasSuffix(inner, "!") {
			return inner
		}
		return inner + "!"
	default:
		return "Unknown"
	}
}

func decodeNamedType(o object) (*NamedType, error) {
	name, err := o.requireString("name")
	if err != nil {
		return nil, err
	}
	rawKind, err := o.requireString("kind")
	if err != nil {
		return nil, err
	}
	kind, err := parseTypeKind(rawKind)
	if err != nil {
		return nil, withPath(err, o.at("kind"))
	}
	desc, err := o.optionalString("description")
	if err != nil {
		return nil, err
	}
	t := &NamedType{Name: name, Kind: kind}
	if desc != nil {
		t.Description = *desc
	}
	return t, nil
}

// decodeTypeRef decodes a wrapped reference eagerly; references are small and
// their named leaves resolve against the shared type table.
func (r *CompilationResult) decodeTypeRef(o object) (*TypeRef, error) {
	rawKind, err := o.requireString("kind")
	if err != nil {
		return nil, err
	}
	kind, err := parseTypeRefKind(rawKind)
	if err != nil {
		return nil, withPath(err, o.at("kind"))
	}
	if kind == TypeRefKindNamed {
		name, err := o.requireString("name")
		if err != nil {
			return nil, err
		}
		named, err := r.lookupType(name, o.at("name"))
		if err != nil {
			return nil, err
		}
		return &TypeRef{Kind: kind, Named: named}, nil
	}
	inner, err := o.requireObject("ofType")
	if err != nil {
		return nil, err
	}
	ofType, err := r.decodeTypeRef(inner)
	if err != nil {
		return nil, err
	}
	if kind == TypeRefKindNonNull && ofType.Kind == TypeRefKindNonNull {
		return nil, decodeErrorf(o.path, "non-null type cannot wrap a non-null type")
	}
	return &TypeRef{Kind: kind, OfType: ofType}, nil
}

// decodeCompositeType resolves the type name stored under key and checks that
// the named type can carry a selection set.
func (r *CompilationResult) decodeCompositeType(o object, key string) (*NamedType, error) {
	name, err := o.requireString(key)
	if err != nil {
		return nil, err
	}
	return r.resolveComposite(name, o.at(key))
}

func (r *CompilationResult) resolveComposite(name, path string) (*NamedType, error) {
	t, err := r.lookupType(name, path)
	if err != nil {
		return nil, err
	}
	if !t.IsComposite() {
		return nil, decodeErrorf(path, "type %q of kind %s is not a composite type", name, t.Kind)
	}
	return t, nil
}
