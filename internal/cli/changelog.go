package cli

import (
	"time"

	"github.com/spf13/cobra"

	"gitflow.dev/gitflow/internal/changelog"
	"gitflow.dev/gitflow/internal/output"
)

// newChangelogCmd creates the changelog command
func newChangelogCmd() *cobra.Command {
	var (
		since      string
		outputPath string
	)

	cmd := &cobra.Command{
		Use:   "changelog",
		Short: "Generate a grouped changelog from conventional commits",
		Long: `Generate a grouped changelog from conventional commits.

--since accepts a relative duration like 7.days, an ISO date like
2024-01-01, or may be omitted for the full history.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			splog := output.NewSplog()

			cfg, err := requireRepository(ctx)
			if err != nil {
				return err
			}

			var doc string
			err = output.WithSpinner("Generating changelog...", func() error {
				var genErr error
				doc, genErr = changelog.Generate(ctx, changelog.Options{
					Since: since,
				}, cfg, time.Now())
				return genErr
			})
			if err != nil {
				return err
			}

			if outputPath != "" {
				if err := changelog.WriteFile(outputPath, doc); err != nil {
					return err
				}
				splog.Ok("Changelog saved to: %s", outputPath)
				return nil
			}

			splog.Page(doc)
			return nil
		},
	}

	cmd.Flags().StringVar(&since, "since", "", "Start date (e.g., 7.days, 2024-01-01)")
	cmd.Flags().StringVar(&outputPath, "output", "", "Output file (default: stdout)")

	return cmd
}
