package manifest

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects the manifest's JSON layout.
type Format string

const (
	// FormatApollo is the Apollo persisted query manifest.
	FormatApollo Format = "apollo"
	// FormatOperationIdentifiers is an object keyed by operation identifier.
	FormatOperationIdentifiers Format = "operationIdentifiers"
)

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatApollo, FormatOperationIdentifiers:
		return f, nil
	}
	return "", fmt.Errorf("unknown manifest format %q: must be %q or %q", s, FormatApollo, FormatOperationIdentifiers)
}

type apolloManifest struct {
	Format     string            `json:"format"`
	Version    int               `json:"version"`
	Operations []apolloOperation `json:"operations"`
}

type apolloOperation struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
	Body string `json:"body"`
}

type identifiedOperation struct {
	Name   string `json:"name"`
	Source string `json:"source"`
}

// Write encodes m to w in the given format, indented, with a trailing newline.
func Write(w io.Writer, m *Manifest, format Format) error {
	var doc any
	switch format {
	case FormatApollo:
		am := apolloManifest{
			Format:     "apollo-persisted-query-manifest",
			Version:    1,
			Operations: make([]apolloOperation, 0, len(m.Operations)),
		}
		for _, e := range m.Operations {
			am.Operations = append(am.Operations, apolloOperation{
				ID:   e.Identifier,
				Name: e.Name,
				Type: string(e.Type),
				Body: e.Body,
			})
		}
		doc = am
	case FormatOperationIdentifiers:
		ids := make(map[string]identifiedOperation, len(m.Operations))
		for _, e := range m.Operations {
			ids[e.Identifier] = identifiedOperation{Name: e.Name, Source: e.Body}
		}
		doc = ids
	default:
		return fmt.Errorf("unknown manifest format %q", format)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode manifest: %w", err)
	}
	return nil
}
