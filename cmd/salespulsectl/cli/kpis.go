package cli

import (
	"context"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/salespulse/salespulse/internal/dashboard"
)

func newKPIsCommand(opts *options) *cobra.Command {
	var trends bool
	cmd := &cobra.Command{
		Use:   "kpis",
		Short: "Print the dashboard KPI cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			payload, err := opts.client().Dashboard(ctx)
			if err != nil {
				return fmt.Errorf("kpis: %w", err)
			}
			return printCards(cmd.OutOrStdout(), dashboard.BuildCards(payload), trends)
		},
	}
	cmd.Flags().BoolVar(&trends, "trends", true, "show the trend column")
	return cmd
}

func printCards(out io.Writer, cards []dashboard.Card, trends bool) error {
	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	for _, card := range cards {
		line := card.Label + "\t" + card.Value
		if trends && card.Trend != nil {
			line += "\t" + card.Trend.Arrow + " " + card.Trend.Delta + " " + card.Trend.Label
		}
		if _, err := fmt.Fprintln(tw, line); err != nil {
			return err
		}
	}
	return tw.Flush()
}
