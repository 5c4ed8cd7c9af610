package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newSeedCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Write the demo sales dataset",
		Long: `Ask the API to write the fixed demo dataset.

Running it twice stores the records twice.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			res, err := opts.client().Seed(ctx)
			if err != nil {
				return fmt.Errorf("seed: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s (%d records)\n", res.Message, res.Count)
			return nil
		},
	}
}
