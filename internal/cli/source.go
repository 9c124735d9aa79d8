package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	config "github.com/hanpama/gqlir/internal/config"
	dynamic "github.com/hanpama/gqlir/internal/dynamic"
	frontend "github.com/hanpama/gqlir/internal/frontend"
	ir "github.com/hanpama/gqlir/internal/ir"
	language "github.com/hanpama/gqlir/internal/language"
	runid "github.com/hanpama/gqlir/internal/runid"
)

// sourceFlags selects where a command's documents come from.
type sourceFlags struct {
	schema    []string
	documents string
	exclude   []string
	input     string
	output    string
}

func addSourceFlags(cmd *cobra.Command, f *sourceFlags, withInput bool) {
	cmd.Flags().StringSliceVar(&f.schema, "schema", nil, "GraphQL SDL file. Repeatable")
	cmd.Flags().StringVar(&f.documents, "documents", "", "directory searched for .graphql and .gql documents")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude", nil, "path under the documents directory to skip. Repeatable")
	cmd.Flags().StringVarP(&f.output, "output", "o", "", "output file (default: stdout)")
	if withInput {
		cmd.Flags().StringVar(&f.input, "input", "", "compiled JSON tree to decode instead of compiling documents")
	}
}

// merge layers the flags that were set explicitly over cfg.
func (f *sourceFlags) merge(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("schema") {
		cfg.Schema = f.schema
	}
	if flags.Changed("documents") {
		cfg.Documents = f.documents
	}
	if flags.Changed("exclude") {
		cfg.Exclude = f.exclude
	}
	if flags.Changed("output") {
		cfg.Output = f.output
	}
	if flags.Changed("input") {
		cfg.Input = f.input
	}
}

func commandContext(cmd *cobra.Command, log *zap.Logger) (context.Context, *zap.Logger) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, id := runid.NewContext(ctx)
	return ctx, log.With(zap.String("run", id), zap.String("command", cmd.Name()))
}

// compileTree runs the frontend over cfg's schema and documents.
func compileTree(ctx context.Context, cfg config.Config, log *zap.Logger) (map[string]any, error) {
	if len(cfg.Schema) == 0 {
		return nil, fmt.Errorf("--schema is required")
	}
	sources := make([]*language.Source, 0, len(cfg.Schema))
	for _, path := range cfg.Schema {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read schema: %w", err)
		}
		sources = append(sources, &language.Source{Name: path, Input: string(data)})
	}
	exclude := append(append([]string(nil), cfg.Schema...), cfg.Exclude...)
	if cfg.Output != "" {
		exclude = append(exclude, cfg.Output)
	}
	disc, err := frontend.NewFileSystemDiscovery(ctx, cfg.Documents, exclude...)
	if err != nil {
		return nil, err
	}
	return frontend.Compile(ctx, sources, disc, frontend.WithLogger(log))
}

// loadResult decodes cfg.Input when set and compiles the documents otherwise.
func loadResult(ctx context.Context, cfg config.Config, log *zap.Logger) (*ir.CompilationResult, error) {
	var root dynamic.Node
	if cfg.Input != "" {
		data, err := os.ReadFile(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("read input: %w", err)
		}
		if root, err = dynamic.ParseJSON(data); err != nil {
			return nil, fmt.Errorf("%s: %w", cfg.Input, err)
		}
		log.Debug("loaded compiled tree", zap.String("input", cfg.Input), zap.Int("bytes", len(data)))
	} else {
		tree, err := compileTree(ctx, cfg, log)
		if err != nil {
			return nil, err
		}
		root = dynamic.FromValue(tree)
	}
	return ir.NewCompilationResult(root)
}

// withOutput calls write with the configured output file, or with the
// command's stdout when none is configured.
func withOutput(cmd *cobra.Command, path string, write func(io.Writer) error) error {
	if path == "" {
		return write(cmd.OutOrStdout())
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
