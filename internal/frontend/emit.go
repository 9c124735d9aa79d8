package frontend

import (
	"fmt"
	"sort"

	language "github.com/hanpama/gqlir/internal/language"
)

// emitter renders a validated query document in the wire format read by
// package ir, collecting every named type it mentions along the way.
type emitter struct {
	schema *language.Schema
	types  map[string]*language.Definition
}

func newEmitter(schema *language.Schema) *emitter {
	return &emitter{schema: schema, types: make(map[string]*language.Definition)}
}

func (e *emitter) emit(doc *language.QueryDocument) (map[string]any, error) {
	operations := make([]any, 0, len(doc.Operations))
	for _, op := range doc.Operations {
		out, err := e.operation(op)
		if err != nil {
			return nil, err
		}
		operations = append(operations, out)
	}
	fragments := make([]any, 0, len(doc.Fragments))
	for _, f := range doc.Fragments {
		out, err := e.fragment(f)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, out)
	}

	names := make([]string, 0, len(e.types))
	for name := range e.types {
		names = append(names, name)
	}
	sort.Strings(names)
	types := make([]any, 0, len(names))
	for _, name := range names {
		def := e.types[name]
		t := map[string]any{"kind": string(def.Kind), "name": def.Name}
		if def.Description != "" {
			t["description"] = def.Description
		}
		types = append(types, t)
	}

	return map[string]any{
		"operations":      operations,
		"fragments":       fragments,
		"referencedTypes": types,
	}, nil
}

func (e *emitter) rootType(op *language.OperationDefinition) *language.Definition {
	switch op.Operation {
	case language.Mutation:
		return e.schema.Mutation
	case language.Subscription:
		return e.schema.Subscription
	default:
		return e.schema.Query
	}
}

func (e *emitter) operation(op *language.OperationDefinition) (map[string]any, error) {
	root := e.rootType(op)
	if root == nil {
		return nil, ValidationError{violationWithPosition(
			fmt.Sprintf("Schema does not define a %s root type", op.Operation), op.Position)}
	}
	e.addType(root)

	variables := make([]any, 0, len(op.VariableDefinitions))
	for _, v := range op.VariableDefinitions {
		out := map[string]any{
			"name": v.Variable,
			"type": e.typeRef(v.Type),
		}
		if v.DefaultValue != nil {
			out["defaultValue"] = valueNode(v.DefaultValue)
		}
		variables = append(variables, out)
	}
	selectionSet, err := e.selectionSet(root, op.SelectionSet)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"name":          op.Name,
		"operationType": string(op.Operation),
		"variables":     variables,
		"rootType":      root.Name,
		"selectionSet":  selectionSet,
		"source":        language.PrintOperation(op),
		"filePath":      fileOf(op.Position),
	}, nil
}

func (e *emitter) fragment(f *language.FragmentDefinition) (map[string]any, error) {
	def := e.schema.Types[f.TypeCondition]
	if def == nil {
		return nil, ValidationError{violationWithPosition(
			fmt.Sprintf("Unknown type %q", f.TypeCondition), f.Position)}
	}
	e.addType(def)
	selectionSet, err := e.selectionSet(def, f.SelectionSet)
	if err != nil {
		return nil, err
	}
	return map[string]any{
		"name":         f.Name,
		"type":         def.Name,
		"selectionSet": selectionSet,
		"source":       language.PrintFragment(f),
		"filePath":     fileOf(f.Position),
	}, nil
}

func (e *emitter) selectionSet(parent *language.Definition, set language.SelectionSet) (map[string]any, error) {
	selections := make([]any, 0, len(set))
	for _, sel := range set {
		var (
			out map[string]any
			err error
		)
		switch s := sel.(type) {
		case *language.Field:
			out, err = e.field(parent, s)
		case *language.InlineFragment:
			out, err = e.inlineFragment(parent, s)
		case *language.FragmentSpread:
			out = map[string]any{"kind": "FragmentSpread", "fragment": s.Name}
		default:
			err = fmt.Errorf("unsupported selection %T", sel)
		}
		if err != nil {
			return nil, err
		}
		selections = append(selections, out)
	}
	return map[string]any{
		"parentType": parent.Name,
		"selections": selections,
	}, nil
}

func (e *emitter) field(parent *language.Definition, f *language.Field) (map[string]any, error) {
	def := f.Definition
	if def == nil {
		return nil, ValidationError{violationWithPosition(
			fmt.Sprintf("Cannot query field %q on type %q", f.Name, parent.Name), f.Position)}
	}
	out := map[string]any{
		"kind": "Field",
		"name": f.Name,
		"type": e.typeRef(def.Type),
	}
	if f.Alias != "" && f.Alias != f.Name {
		out["alias"] = f.Alias
	}
	if len(f.Arguments) > 0 {
		args := make([]any, 0, len(f.Arguments))
		for _, a := range f.Arguments {
			args = append(args, map[string]any{"name": a.Name, "value": valueNode(a.Value)})
		}
		out["arguments"] = args
	}
	if len(f.SelectionSet) > 0 {
		child := e.schema.Types[def.Type.Name()]
		if child == nil {
			return nil, ValidationError{violationWithPosition(
				fmt.Sprintf("Unknown type %q", def.Type.Name()), f.Position)}
		}
		ss, err := e.selectionSet(child, f.SelectionSet)
		if err != nil {
			return nil, err
		}
		out["selectionSet"] = ss
	}
	if d := def.Directives.ForName("deprecated"); d != nil {
		reason := "No longer supported"
		if arg := d.Arguments.ForName("reason"); arg != nil && arg.Value != nil {
			reason = arg.Value.Raw
		}
		out["deprecationReason"] = reason
	}
	if def.Description != "" {
		out["description"] = def.Description
	}
	return out, nil
}

func (e *emitter) inlineFragment(parent *language.Definition, f *language.InlineFragment) (map[string]any, error) {
	out := map[string]any{"kind": "InlineFragment"}
	target := parent
	if f.TypeCondition != "" {
		target = e.schema.Types[f.TypeCondition]
		if target == nil {
			return nil, ValidationError{violationWithPosition(
				fmt.Sprintf("Unknown type %q", f.TypeCondition), f.Position)}
		}
		e.addType(target)
		out["typeCondition"] = target.Name
	}
	ss, err := e.selectionSet(target, f.SelectionSet)
	if err != nil {
		return nil, err
	}
	out["selectionSet"] = ss
	return out, nil
}

func (e *emitter) typeRef(t *language.Type) map[string]any {
	var inner map[string]any
	if t.Elem != nil {
		inner = map[string]any{"kind": "LIST", "ofType": e.typeRef(t.Elem)}
	} else {
		inner = map[string]any{"kind": "NAMED", "name": t.NamedType}
		if def := e.schema.Types[t.NamedType]; def != nil {
			e.addType(def)
		}
	}
	if t.NonNull {
		return map[string]any{"kind": "NON_NULL", "ofType": inner}
	}
	return inner
}

// addType records def and, for input objects, the types of their fields, so
// that generators can emit variable input types.
func (e *emitter) addType(def *language.Definition) {
	if _, ok := e.types[def.Name]; ok {
		return
	}
	e.types[def.Name] = def
	if def.Kind != language.InputObject {
		return
	}
	for _, f := range def.Fields {
		if child := e.schema.Types[f.Type.Name()]; child != nil {
			e.addType(child)
		}
	}
}

var valueKindNames = map[language.ValueKind]string{
	language.Variable:     "Variable",
	language.IntValue:     "IntValue",
	language.FloatValue:   "FloatValue",
	language.StringValue:  "StringValue",
	language.BlockValue:   "StringValue",
	language.BooleanValue: "BooleanValue",
	language.NullValue:    "NullValue",
	language.EnumValue:    "EnumValue",
	language.ListValue:    "ListValue",
	language.ObjectValue:  "ObjectValue",
}

func valueNode(v *language.Value) map[string]any {
	out := map[string]any{"kind": valueKindNames[v.Kind]}
	switch v.Kind {
	case language.BooleanValue:
		out["value"] = v.Raw == "true"
	case language.NullValue:
	case language.ListValue:
		values := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			values = append(values, valueNode(c.Value))
		}
		out["values"] = values
	case language.ObjectValue:
		fields := make([]any, 0, len(v.Children))
		for _, c := range v.Children {
			fields = append(fields, map[string]any{"name": c.Name, "value": valueNode(c.Value)})
		}
		out["fields"] = fields
	default:
		out["value"] = v.Raw
	}
	return out
}

func fileOf(pos *language.Position) string {
	if pos == nil || pos.Src == nil {
		return ""
	}
	return pos.Src.Name
}
