package language

import (
	"bytes"
	"strings"

	"github.com/vektah/gqlparser/v2"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
	"github.com/vektah/gqlparser/v2/validator"
)

func ParseQuery(name, source string) (*QueryDocument, error) {
	doc, err := parser.ParseQuery(&ast.Source{Name: name, Input: source})
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// LoadSchema parses and validates SDL sources. Built-in scalars and
// directives are added by gqlparser.
func LoadSchema(sources ...*Source) (*Schema, error) {
	return gqlparser.LoadSchema(sources...)
}

// Validate runs the standard validation rules over doc. Besides reporting
// errors it annotates fields, spreads and variables with their schema
// definitions.
func Validate(schema *Schema, doc *QueryDocument) ErrorList {
	return validator.Validate(schema, doc)
}

// PrintOperation renders a single operation in canonical formatting.
func PrintOperation(op *OperationDefinition) string {
	return format(&ast.QueryDocument{Operations: ast.OperationList{op}})
}

// PrintFragment renders a single fragment in canonical formatting.
func PrintFragment(f *FragmentDefinition) string {
	return format(&ast.QueryDocument{Fragments: ast.FragmentDefinitionList{f}})
}

func format(doc *QueryDocument) string {
	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatQueryDocument(doc)
	return strings.TrimRight(buf.String(), "\n")
}
