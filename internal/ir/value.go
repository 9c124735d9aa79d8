package ir

import (
	"strconv"

	language "github.com/hanpama/gqlir/internal/language"
)

// valueKinds maps graphql-js ValueNode kinds onto gqlparser value kinds.
var valueKinds = map[string]language.ValueKind{
	"Variable":     language.Variable,
	"IntValue":     language.IntValue,
	"FloatValue":   language.FloatValue,
	"StringValue":  language.StringValue,
	"BooleanValue": language.BooleanValue,
	"NullValue":    language.NullValue,
	"EnumValue":    language.EnumValue,
	"ListValue":    language.ListValue,
	"ObjectValue":  language.ObjectValue,
}

// decodeValue decodes a literal or variable reference. The result carries no
// position or type information; it is a structural copy of the wire value.
func decodeValue(o object) (*language.Value, error) {
	raw, err := o.requireString("kind")
	if err != nil {
		return nil, err
	}
	kind, ok := valueKinds[raw]
	if !ok {
		return nil, &EnumError{Path: o.at("kind"), Enum: "value kind", Value: raw}
	}
	v := &language.Value{Kind: kind}
	switch kind {
	case language.Variable, language.IntValue, language.FloatValue, language.StringValue, language.EnumValue:
		s, err := o.requireString("value")
		if err != nil {
			return nil, err
		}
		v.Raw = s
	case language.BooleanValue:
		n, err := o.require("value")
		if err != nil {
			return nil, err
		}
		if b, ok := n.Bool(); ok {
			v.Raw = strconv.FormatBool(b)
		} else if s, ok := n.String(); ok && (s == "true" || s == "false") {
			v.Raw = s
		} else {
			return nil, decodeErrorf(o.at("value"), "expected boolean, found %s", n.Kind())
		}
	case language.NullValue:
		v.Raw = "null"
	case language.ListValue:
		items, err := decodeList(o, "values", decodeValue)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			v.Children = append(v.Children, &language.ChildValue{Value: item})
		}
	case language.ObjectValue:
		fields, err := decodeList(o, "fields", func(f object) (*language.ChildValue, error) {
			name, err := f.requireString("name")
			if err != nil {
				return nil, err
			}
			fv, err := f.requireObject("value")
			if err != nil {
				return nil, err
			}
			child, err := decodeValue(fv)
			if err != nil {
				return nil, err
			}
			return &language.ChildValue{Name: name, Value: child}, nil
		})
		if err != nil {
			return nil, err
		}
		v.Children = fields
	}
	return v, nil
}
