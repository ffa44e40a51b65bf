package cmd

import (
	"context"
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana/coingecko"
)

type priceCmd struct{}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "show the USD price of one coin" }
func (*priceCmd) Usage() string {
	return `grana price <coin-id>

  Shows the current USD price and 24h change of a single coin, by its
  CoinGecko id, e.g. "bitcoin".
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {}

func (c *priceCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: expected exactly one coin id.")
		return subcommands.ExitUsageError
	}
	id := f.Arg(0)

	price, change, err := coingecko.New().Price(ctx, id)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	if math.IsNaN(change) {
		fmt.Printf("%s: US$%.2f\n", id, price)
	} else {
		fmt.Printf("%s: US$%.2f (%+.2f%% 24h)\n", id, price, change)
	}
	return subcommands.ExitSuccess
}
