package cli

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/salespulse/salespulse/internal/dashboard"
)

type options struct {
	api     string
	timeout time.Duration
}

func (o *options) client() *dashboard.Client {
	return dashboard.NewClient(o.api, nil)
}

// NewRootCommand builds the salespulsectl command tree.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "salespulsectl",
		Short: "SalesPulse command line",
		Long: `salespulsectl talks to a running SalesPulse API.
Seed the demo dataset and print the dashboard KPIs from a terminal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.api, "api", dashboard.DefaultAPIBase, "SalesPulse API base URL")
	root.PersistentFlags().DurationVar(&opts.timeout, "timeout", 10*time.Second, "request timeout")

	root.AddCommand(newSeedCommand(opts))
	root.AddCommand(newKPIsCommand(opts))
	root.AddCommand(newVersionCommand())
	return root
}

// Execute runs the command tree against os.Args.
func Execute() error {
	return NewRootCommand().Execute()
}
