package frontend

import (
	"errors"
	"fmt"

	language "github.com/hanpama/gqlir/internal/language"
)

type Violation struct {
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
}

// ValidationError lists every problem found in the schema or documents.
type ValidationError []*Violation

func (e ValidationError) Error() string {
	msg := "violations found:\n"
	for _, v := range e {
		line := "- " + v.Message
		if v.File != "" {
			line += fmt.Sprintf(" %s:%d:%d", v.File, v.Line, v.Column)
		}
		msg += line + "\n"
	}
	return msg
}

func violationFromError(err error, file string) *Violation {
	var gqlErr *language.Error
	if !errors.As(err, &gqlErr) {
		return &Violation{Message: err.Error(), File: file}
	}
	v := &Violation{Message: gqlErr.Message, File: file}
	if f, ok := gqlErr.Extensions["file"].(string); ok && f != "" {
		v.File = f
	}
	if len(gqlErr.Locations) > 0 {
		v.Line = gqlErr.Locations[0].Line
		v.Column = gqlErr.Locations[0].Column
	}
	return v
}

func violationWithPosition(message string, pos *language.Position) *Violation {
	v := &Violation{Message: message}
	if pos != nil {
		v.Line = pos.Line
		v.Column = pos.Column
		if pos.Src != nil {
			v.File = pos.Src.Name
		}
	}
	return v
}
