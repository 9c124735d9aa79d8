package frontend

import (
	"context"
	"fmt"
	"sort"
)

type InMemoryDocument struct {
	Name    string
	Content string
}

// InMemoryDiscovery is a Discovery over documents held in memory.
type InMemoryDiscovery struct {
	names    []string
	contents map[string]string
}

func NewInMemoryDiscovery(docs []InMemoryDocument) *InMemoryDiscovery {
	d := &InMemoryDiscovery{contents: make(map[string]string, len(docs))}
	for _, doc := range docs {
		if _, dup := d.contents[doc.Name]; !dup {
			d.names = append(d.names, doc.Name)
		}
		d.contents[doc.Name] = doc.Content
	}
	sort.Strings(d.names)
	return d
}

func (d *InMemoryDiscovery) ListDocuments(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.names...), nil
}

func (d *InMemoryDiscovery) ReadDocument(ctx context.Context, name string) (string, error) {
	content, ok := d.contents[name]
	if !ok {
		return "", fmt.Errorf("document %q not found", name)
	}
	return content, nil
}
