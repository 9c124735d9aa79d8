package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	ir "github.com/hanpama/gqlir/internal/ir"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Decode the whole IR and print a summary",
		Long: `Decode every operation, fragment and type eagerly, reporting the first
malformed node, and print a summary of what was found.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			src.merge(cmd, &cfg)
			ctx, log := commandContext(cmd, rootOpts.Logger)

			result, err := loadResult(ctx, cfg, log)
			if err != nil {
				return err
			}
			if err := result.Materialize(); err != nil {
				return err
			}
			return withOutput(cmd, cfg.Output, func(w io.Writer) error {
				return summarize(w, result)
			})
		},
	}
	addSourceFlags(cmd, &src, true)
	return cmd
}

// summarize writes one line per operation, fragment and type.
func summarize(out io.Writer, r *ir.CompilationResult) error {
	ops, err := r.Operations()
	if err != nil {
		return err
	}
	frags, err := r.Fragments()
	if err != nil {
		return err
	}
	types, err := r.ReferencedTypes()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "operations (%d)\n", len(ops))
	for _, op := range ops {
		line, err := operationLine(op)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "fragments (%d)\n", len(frags))
	for _, f := range frags {
		line, err := fragmentLine(f)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, line)
	}
	fmt.Fprintf(w, "types (%d)\n", len(types))
	for _, t := range types {
		fmt.Fprintf(w, "  %s\t%s\n", t.Name, t.Kind)
	}
	return w.Flush()
}

func operationLine(op *ir.OperationDefinition) (string, error) {
	name, err := op.Name()
	if err != nil {
		return "", err
	}
	typ, err := op.OperationType()
	if err != nil {
		return "", err
	}
	root, err := op.RootType()
	if err != nil {
		return "", err
	}
	id, err := op.OperationIdentifier()
	if err != nil {
		return "", err
	}
	refs, err := op.ReferencedFragments()
	if err != nil {
		return "", err
	}
	names := make([]string, 0, len(refs))
	for _, f := range refs {
		n, err := f.Name()
		if err != nil {
			return "", err
		}
		names = append(names, n)
	}
	return fmt.Sprintf("  %s\t%s\ton %s\t%s\t%s", name, typ, root.Name, id, strings.Join(names, ",")), nil
}

func fragmentLine(f *ir.FragmentDefinition) (string, error) {
	name, err := f.Name()
	if err != nil {
		return "", err
	}
	typ, err := f.Type()
	if err != nil {
		return "", err
	}
	file, err := f.FilePath()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("  %s\ton %s\t%s", name, typ.Name, file), nil
}
