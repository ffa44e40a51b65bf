package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/coingecko"
	"github.com/grana-cli/grana/renderer"
)

type cryptoCmd struct{}

func (*cryptoCmd) Name() string     { return "crypto" }
func (*cryptoCmd) Synopsis() string { return "show USD quotes for the crypto watchlist" }
func (*cryptoCmd) Usage() string {
	return `grana crypto [<coin-id>...]

  Shows the current USD price and 24h change of the watchlist, or of
  the given CoinGecko coin ids.
`
}

func (c *cryptoCmd) SetFlags(f *flag.FlagSet) {}

func (c *cryptoCmd) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	coins, err := coingecko.New().Markets(ctx, f.Args()...)
	if err != nil {
		// Market data is a nicety, its failure never blocks the ledger.
		grana.Log.WithError(err).Warn("cannot fetch market data")
		coins = nil
	}
	printMarkdown(renderer.RenderCoins(renderer.NewCoinsView(coins)))
	return subcommands.ExitSuccess
}
