// Package cmd implements the CLI application to track personal finances.
package cmd

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/grana-cli/grana"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&incomeCmd{},
	&expenseCmd{},
	&txCmd{},
	&rmCmd{},
	&dashboardCmd{},
	&cryptoCmd{},
	&priceCmd{},
	&topicCmd{},
	&assistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var home = flag.String("home", defaultHome(), "Directory holding the transaction file")
var key = flag.String("key", defaultKey(), "Name of the transaction file, without extension")

func defaultHome() string {
	if dir := os.Getenv("GRANA_HOME"); dir != "" {
		return dir
	}
	userHome, err := os.UserHomeDir()
	if err != nil {
		return ".grana"
	}
	return filepath.Join(userHome, ".grana")
}

func defaultKey() string {
	if key := os.Getenv("GRANA_KEY"); key != "" {
		return key
	}
	return grana.DefaultKey
}

// OpenStore opens the application store from the global flags.
func OpenStore() (*grana.Store, error) {
	return grana.Open(*home, *key)
}

// printMarkdown renders markdown to the terminal. When rendering fails
// the raw markdown is printed instead, it is still readable.
func printMarkdown(md string) {
	out, err := glamour.Render(md, "auto")
	if err != nil {
		fmt.Println(md)
		return
	}
	fmt.Print(out)
}
