package ir

// OperationType is the kind of an executable operation.
type OperationType string

const (
	OperationQuery        OperationType = "query"
	OperationMutation     OperationType = "mutation"
	OperationSubscription OperationType = "subscription"
)

// ParseOperationType matches raw exactly against the known operation types.
// Matching is case-sensitive and does not trim.
func ParseOperationType(raw string) (OperationType, error) {
	switch t := OperationType(raw); t {
	case OperationQuery, OperationMutation, OperationSubscription:
		return t, nil
	}
	return "", &EnumError{Enum: "operation type", Value: raw}
}

// SelectionKind is the discriminator carried by every selection node.
type SelectionKind string

const (
	SelectionField          SelectionKind = "Field"
	SelectionInlineFragment SelectionKind = "InlineFragment"
	SelectionFragmentSpread SelectionKind = "FragmentSpread"
)

func parseSelectionKind(raw string) (SelectionKind, error) {
	switch k := SelectionKind(raw); k {
	case SelectionField, SelectionInlineFragment, SelectionFragmentSpread:
		return k, nil
	}
	return "", &EnumError{Enum: "selection kind", Value: raw}
}

// TypeKind is the kind of a named GraphQL type.
type TypeKind string

const (
	TypeKindScalar      TypeKind = "SCALAR"
	TypeKindObject      TypeKind = "OBJECT"
	TypeKindInterface   TypeKind = "INTERFACE"
	TypeKindUnion       TypeKind = "UNION"
	TypeKindEnum        TypeKind = "ENUM"
	TypeKindInputObject TypeKind = "INPUT_OBJECT"
)

func parseTypeKind(raw string) (TypeKind, error) {
	switch k := TypeKind(raw); k {
	case TypeKindScalar, TypeKindObject, TypeKindInterface, TypeKindUnion, TypeKindEnum, TypeKindInputObject:
		return k, nil
	}
	return "", &EnumError{Enum: "type kind", Value: raw}
}

// TypeRefKind distinguishes named references from list and non-null wrappers.
type TypeRefKind string

const (
	TypeRefKindNamed   TypeRefKind = "NAMED"
	TypeRefKindList    TypeRefKind = "LIST"
	TypeRefKindNonNull TypeRefKind = "NON_NULL"
)

func parseTypeRefKind(raw string) (TypeRefKind, error) {
	switch k := TypeRefKind(raw); k {
	case TypeRefKindNamed, TypeRefKindList, TypeRefKindNonNull:
		return k, nil
	}
	return "", &EnumError{Enum: "type reference kind", Value: raw}
}

// withPath fills in the location of an enum error produced by a parser that
// does not know where its input came from.
func withPath(err error, path string) error {
	if e, ok := err.(*EnumError); ok && e.Path == "" {
		e.Path = path
	}
	return err
}
