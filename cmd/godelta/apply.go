package main

import (
	"os"

	delta "github.com/Redundancy/go-delta"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const applyUsage = "godelta apply <source> <delta> <output>"

func init() {
	app.Commands = append(
		app.Commands,
		&cli.Command{
			Name:      "apply",
			Aliases:   []string{"a"},
			Usage:     applyUsage,
			Description: `Apply a delta produced by "godelta create" to <source>, writing the
reconstructed target to <output>. Compressed deltas are detected automatically.`,
			Action: runApply,
			Flags: []cli.Flag{
				&cli.BoolFlag{
					Name:  "verify",
					Usage: "Verify the delta's checksum against the output",
				},
			},
		},
	)
}

func runApply(c *cli.Context) error {
	if c.Args().Len() != 3 {
		return errors.Errorf("usage is %q (invalid number of arguments)", applyUsage)
	}

	source, err := os.ReadFile(c.Args().Get(0))
	if err != nil {
		return errors.Wrap(err, "reading source")
	}

	d, err := os.ReadFile(c.Args().Get(1))
	if err != nil {
		return errors.Wrap(err, "reading delta")
	}

	target, err := delta.Apply(source, d, &delta.Options{
		VerifyChecksum: c.Bool("verify"),
	})
	if err != nil {
		return err
	}

	return errors.Wrap(
		os.WriteFile(c.Args().Get(2), target, 0644),
		"writing output",
	)
}
