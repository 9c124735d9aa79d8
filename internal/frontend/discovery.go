package frontend

import (
	"context"
)

// Discovery lists and reads the executable GraphQL documents of a project.
type Discovery interface {
	// ListDocuments returns document names in a stable order.
	ListDocuments(ctx context.Context) ([]string, error)
	ReadDocument(ctx context.Context, name string) (string, error)
}
