package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
	"github.com/grana-cli/grana/cmd"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
)

func main() {
	// A missing .env file is fine, the environment alone is enough.
	godotenv.Load()
	grana.ConfigureLog()

	// Shell completion of subcommand names. Complete exits by itself
	// when invoked by the shell completion hook.
	completion := &complete.Command{Sub: map[string]*complete.Command{
		"help":  {},
		"flags": {},
	}}
	for _, c := range cmd.Commands {
		completion.Sub[c.Name()] = &complete.Command{}
	}
	completion.Complete("grana")

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
