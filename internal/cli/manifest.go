package cli

import (
	"io"

	"github.com/spf13/cobra"

	manifest "github.com/hanpama/gqlir/internal/manifest"
)

// NewManifestCommand creates the manifest command.
func NewManifestCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		src       sourceFlags
		format    string
		keepGoing bool
	)
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Write a persisted query manifest",
		Long: `Decode every operation, compute its identifier and write a manifest.

With --keep-going, operations that fail to decode are reported and the
manifest is still written for the rest. The command exits non-zero either way.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config
			src.merge(cmd, &cfg)
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if cmd.Flags().Changed("keep-going") {
				cfg.KeepGoing = keepGoing
			}
			f, err := manifest.ParseFormat(cfg.Format)
			if err != nil {
				return err
			}
			ctx, log := commandContext(cmd, rootOpts.Logger)

			result, err := loadResult(ctx, cfg, log)
			if err != nil {
				return err
			}
			policy := manifest.FailFast
			if cfg.KeepGoing {
				policy = manifest.Collect
			}
			m, buildErr := manifest.Build(ctx, result, manifest.WithPolicy(policy), manifest.WithLogger(log))
			if m == nil {
				return buildErr
			}
			if err := withOutput(cmd, cfg.Output, func(w io.Writer) error {
				return manifest.Write(w, m, f)
			}); err != nil {
				return err
			}
			return buildErr
		},
	}
	addSourceFlags(cmd, &src, true)
	cmd.Flags().StringVar(&format, "format", "apollo", "manifest format (apollo|operationIdentifiers)")
	cmd.Flags().BoolVar(&keepGoing, "keep-going", false, "record failing operations and continue")
	return cmd
}
