package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/renderer"
)

type dashboardCmd struct{}

func (*dashboardCmd) Name() string     { return "dashboard" }
func (*dashboardCmd) Synopsis() string { return "show balance, totals and the daily breakdown" }
func (*dashboardCmd) Usage() string {
	return `grana dashboard

  Shows the current balance, the income and expense totals, and the
  daily income versus expense breakdown.
`
}

func (c *dashboardCmd) SetFlags(f *flag.FlagSet) {}

func (c *dashboardCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger := grana.NewLedger(store.Snapshot()...)

	summary := grana.Totals(ledger)
	series, err := grana.TimeSeries(ledger)
	var derr *grana.DateParseError
	if errors.As(err, &derr) {
		// Totals are still correct, only the daily breakdown is unsafe.
		grana.Log.WithError(derr).Warn("daily breakdown skipped")
		series = grana.Series{}
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.RenderDashboard(renderer.NewDashboardView(summary, series)))
	return subcommands.ExitSuccess
}
