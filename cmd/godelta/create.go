package main

import (
	"os"

	delta "github.com/Redundancy/go-delta"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const createUsage = "godelta create <source> <target> <delta>"

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:      "create",
			Aliases:   []string{"c"},
			Usage:     createUsage,
			Description: `Create a delta that turns <source> into <target> and write it to <delta>.
Applying the delta to <source> with "godelta apply" reproduces <target> exactly.`,
			Action: runCreate,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:  "window",
					Value: delta.DefaultHashWindowSize,
					Usage: "Hash window size in bytes (power of two)",
				},
				&cli.IntFlag{
					Name:  "depth",
					Value: delta.DefaultSearchDepth,
					Usage: "Maximum candidate blocks examined per position",
				},
				&cli.BoolFlag{
					Name:  "z",
					Usage: "Wrap the delta in a Zstandard frame",
				},
			},
		},
	)
}

func runCreate(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return errors.Errorf("usage is %q (invalid number of arguments)", createUsage)
	}

	source, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return errors.Wrap(err, "reading source")
	}

	target, err := os.ReadFile(c.Args().Get(1))
	if err != nil {
		return errors.Wrap(err, "reading target")
	}

	d, err := delta.Create(source, target, &delta.Options{
		HashWindowSize: c.Int("window"),
		SearchDepth:    c.Int("depth"),
		Compressed:     c.Bool("z"),
	})
	if err != nil {
		return err
	}

	return errors.Wrap(
		os.WriteFile(c.Args().Get(2), d, 0644),
		"writing delta",
	)
}
