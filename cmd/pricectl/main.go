// pricectl computes price recommendations and mints API tokens from the
// command line.
//
// Usage:
//
//	pricectl quote --base-price 100 --demand 0.8 [options]
//	pricectl example
//	pricectl token --subject ops-dashboard
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/yanqian/dynamic-pricing/pkg/logger"
)

var version = "dev"

func main() {
	if err := newApp(os.Stdout, os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out, errOut io.Writer) *cli.App {
	return &cli.App{
		Name:      "pricectl",
		Usage:     "Dynamic pricing recommendations from the command line",
		Version:   version,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "warn",
				Usage:   "Log level (debug, info, warn, error)",
				EnvVars: []string{"LOG_LEVEL"},
			},
		},
		Before: func(c *cli.Context) error {
			c.App.Metadata = map[string]interface{}{
				"logger": logger.NewWithWriter(errOut, c.String("log-level"), "text"),
			}
			return nil
		},
		Commands: []*cli.Command{
			quoteCommand(),
			exampleCommand(),
			tokenCommand(),
		},
	}
}
