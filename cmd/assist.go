package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/agent"
	"github.com/grana-cli/grana/renderer"
	"google.golang.org/genai"
)

type assistCmd struct{}

func (*assistCmd) Name() string { return "assist" }

func (*assistCmd) Synopsis() string { return "start an interactive session with the AI assistant" }

func (*assistCmd) Usage() string {
	return `grana assist:
  Start an interactive session with the AI assistant, briefed with your
  current financial report. Requires a Gemini API key in the environment.
`
}

func (*assistCmd) SetFlags(_ *flag.FlagSet) {}

func (c *assistCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	briefing, err := buildBriefing(store)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	client, err := genai.NewClient(ctx, nil)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error initializing Gemini's client:", err)
		return subcommands.ExitFailure
	}

	a := agent.New(os.Stdout, os.Stdin)
	if err := a.Run(ctx, client, briefing); err != nil {
		fmt.Fprintln(os.Stderr, "Assistant failed:", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

// buildBriefing renders the dashboard and the recent transactions into
// the markdown report the assistant is briefed with.
func buildBriefing(store *grana.Store) (string, error) {
	ledger := grana.NewLedger(store.Snapshot()...)

	summary := grana.Totals(ledger)
	series, err := grana.TimeSeries(ledger)
	var derr *grana.DateParseError
	if errors.As(err, &derr) {
		series = grana.Series{}
	} else if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(renderer.RenderDashboard(renderer.NewDashboardView(summary, series)))
	b.WriteString("\n")

	// The most recent transactions are enough context for the chat.
	transactions := ledger.Slice()
	if len(transactions) > 50 {
		transactions = transactions[:50]
	}
	b.WriteString(renderer.RenderTransactions(renderer.NewTransactionsView(transactions)))
	return b.String(), nil
}
