/*
godelta is a command-line wrapper around the go-delta library, primarily as
a demonstration of usage but functional in itself: it creates deltas between
files, applies them, and inspects them.
*/
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
)

var app = cli.NewApp()

func main() {
	app.Name = "godelta"
	app.Usage = "Create, apply and inspect binary deltas"

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
