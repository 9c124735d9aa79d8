package frontend

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// FileSystemDiscovery implements Discovery for .graphql and .gql files under a
// root directory.
type FileSystemDiscovery struct {
	rootDir string
	paths   map[string]string
	names   []string
}

// NewFileSystemDiscovery walks rootDir for documents. Paths listed in exclude,
// typically schema files living next to the documents, are skipped. Document
// names are slash-separated paths relative to rootDir.
func NewFileSystemDiscovery(ctx context.Context, rootDir string, exclude ...string) (*FileSystemDiscovery, error) {
	if rootDir == "" {
		return nil, fmt.Errorf("documents root cannot be empty")
	}
	skip := make(map[string]struct{}, len(exclude))
	for _, p := range exclude {
		abs, err := filepath.Abs(p)
		if err != nil {
			return nil, fmt.Errorf("resolve excluded path %q: %w", p, err)
		}
		skip[abs] = struct{}{}
	}
	d := &FileSystemDiscovery{rootDir: rootDir, paths: make(map[string]string)}

	err := filepath.WalkDir(rootDir, func(path string, entry os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() {
			return nil
		}
		switch filepath.Ext(entry.Name()) {
		case ".graphql", ".gql":
		default:
			return nil
		}
		abs, err := filepath.Abs(path)
		if err != nil {
			return fmt.Errorf("failed to resolve %q: %w", path, err)
		}
		if _, ok := skip[abs]; ok {
			return nil
		}
		rel, err := filepath.Rel(rootDir, path)
		if err != nil {
			return fmt.Errorf("failed to get relative path for %q: %w", path, err)
		}
		name := filepath.ToSlash(rel)
		d.paths[name] = path
		d.names = append(d.names, name)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk documents root %q: %w", rootDir, err)
	}
	sort.Strings(d.names)
	return d, nil
}

func (d *FileSystemDiscovery) ListDocuments(ctx context.Context) ([]string, error) {
	return append([]string(nil), d.names...), nil
}

func (d *FileSystemDiscovery) ReadDocument(ctx context.Context, name string) (string, error) {
	fp, ok := d.paths[name]
	if !ok {
		return "", fmt.Errorf("document %q not found", name)
	}
	content, err := os.ReadFile(fp)
	if err != nil {
		return "", fmt.Errorf("failed to read document %q: %w", name, err)
	}
	return string(content), nil
}
