package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
)

// addTransaction validates and stores a draft, shared by the income and
// expense commands.
func addTransaction(kind grana.Kind, description, amount, date, category string) subcommands.ExitStatus {
	store, err := OpenStore()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	tx, err := store.Append(grana.Draft{
		Kind:        kind,
		Description: description,
		Amount:      amount,
		Date:        date,
		Category:    category,
	})

	var verr *grana.ValidationError
	if errors.As(err, &verr) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", verr)
		return subcommands.ExitUsageError
	}
	var serr *grana.StorageError
	if errors.As(err, &serr) {
		// The transaction is kept in memory but the file is stale.
		grana.Log.WithError(serr).Warn("transaction accepted but not persisted")
	} else if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Added %s %q of %s on %s (id %s)\n", tx.Kind, tx.Description, tx.Amount.Display(), tx.Date, tx.ID)
	return subcommands.ExitSuccess
}

type incomeCmd struct {
	amount   string
	date     string
	category string
}

func (*incomeCmd) Name() string     { return "income" }
func (*incomeCmd) Synopsis() string { return "record an income transaction" }
func (*incomeCmd) Usage() string {
	return `grana income -a <amount> [-d <date>] [-c <category>] <description>

  Records an income. The amount accepts '.' or ',' as decimal separator,
  the date defaults to today.
`
}

func (c *incomeCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 59,90.")
	f.StringVar(&c.date, "d", grana.Today().String(), "Date of the transaction, dd/mm/yyyy.")
	f.StringVar(&c.category, "c", "", "Category. Defaults to "+grana.DefaultCategory+".")
}

func (c *incomeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing description.")
		return subcommands.ExitUsageError
	}
	description := f.Arg(0)
	return addTransaction(grana.Income, description, c.amount, c.date, c.category)
}

type expenseCmd struct {
	amount   string
	date     string
	category string
}

func (*expenseCmd) Name() string     { return "expense" }
func (*expenseCmd) Synopsis() string { return "record an expense transaction" }
func (*expenseCmd) Usage() string {
	return `grana expense -a <amount> [-d <date>] [-c <category>] <description>

  Records an expense. The amount accepts '.' or ',' as decimal separator,
  the date defaults to today.
`
}

func (c *expenseCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.amount, "a", "", "Amount, e.g. 59,90.")
	f.StringVar(&c.date, "d", grana.Today().String(), "Date of the transaction, dd/mm/yyyy.")
	f.StringVar(&c.category, "c", "", "Category. Defaults to "+grana.DefaultCategory+".")
}

func (c *expenseCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "Error: missing description.")
		return subcommands.ExitUsageError
	}
	description := f.Arg(0)
	return addTransaction(grana.Expense, description, c.amount, c.date, c.category)
}
