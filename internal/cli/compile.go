package cli

import (
	"io"

	"github.com/spf13/cobra"
)

// NewCompileCommand creates the compile command.
func NewCompileCommand(rootOpts *RootOptions) *cobra.Command {
	var src sourceFlags
	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Validate documents against a schema and write the compiled tree",
		Long: `Parse the schema and every .graphql/.gql document under the documents
directory, validate them together, and write the compiled result as JSON.
The output can be fed back to manifest and inspect with --input.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			src.merge(cmd, &cfg)
			ctx, log := commandContext(cmd, rootOpts.Logger)

			tree, err := compileTree(ctx, cfg, log)
			if err != nil {
				return err
			}
			return withOutput(cmd, cfg.Output, func(w io.Writer) error {
				return writeJSON(w, tree)
			})
		},
	}
	addSourceFlags(cmd, &src, false)
	return cmd
}
