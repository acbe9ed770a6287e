package main

import (
	"fmt"
	"os"

	delta "github.com/Redundancy/go-delta"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const infoUsage = "godelta info <delta>"

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:        "info",
			Aliases:     []string{"i"},
			Usage:       infoUsage,
			Description: "Print the output size and copy/insert accounting of a delta.",
			Action:      runInfo,
		},
	)
}

func runInfo(c *cli.Context) error {
	if c.Args().Len() != 1 {
		return errors.Errorf("usage is %q (invalid number of arguments)", infoUsage)
	}

	d, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return errors.Wrap(err, "reading delta")
	}

	size, err := delta.OutputSize(d)
	if err != nil {
		return err
	}

	copied, inserted, err := delta.Analyze(d)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "delta size:   %v bytes\n", len(d))
	fmt.Fprintf(os.Stdout, "output size:  %v bytes\n", size)
	fmt.Fprintf(os.Stdout, "copied:       %v bytes\n", copied)
	fmt.Fprintf(os.Stdout, "inserted:     %v bytes\n", inserted)

	return nil
}
