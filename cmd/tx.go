package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/renderer"
)

type txCmd struct {
	kind     string
	category string
	head     int
	tail     int
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list transactions, newest first" }
func (*txCmd) Usage() string {
	return `grana tx [-k <kind>] [-c <category>] [-head <n>] [-tail <n>]

  Lists transactions, with options for filtering and limiting the output.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.kind, "k", "", "Show only this kind (income or expense).")
	f.StringVar(&c.category, "c", "", "Show only this category.")
	f.IntVar(&c.head, "head", 0, "Show only the first N transactions.")
	f.IntVar(&c.tail, "tail", 0, "Show only the last N transactions.")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.head > 0 && c.tail > 0 {
		fmt.Fprintln(os.Stderr, "Error: -head and -tail flags cannot be used together.")
		return subcommands.ExitUsageError
	}

	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	var filters []grana.TransactionFilter
	if c.kind != "" {
		kind, err := grana.ParseKind(c.kind)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		filters = append(filters, grana.ByKind(kind))
	}
	if c.category != "" {
		filters = append(filters, grana.ByCategory(c.category))
	}

	ledger := grana.NewLedger(store.Snapshot()...)
	var transactions []grana.Transaction
	for _, tx := range ledger.Transactions(filters...) {
		transactions = append(transactions, tx)
	}

	if c.head > 0 && c.head < len(transactions) {
		transactions = transactions[:c.head]
	}
	if c.tail > 0 && c.tail < len(transactions) {
		transactions = transactions[len(transactions)-c.tail:]
	}

	printMarkdown(renderer.RenderTransactions(renderer.NewTransactionsView(transactions)))
	return subcommands.ExitSuccess
}
