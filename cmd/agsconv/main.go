// Package main provides agsconv, which re-encodes structured documents between
// JSON and YAML through the structural value model.
//
// Usage:
//
//	agsconv [--verbose] convert IN OUT
//	agsconv [--verbose] check FILE...
//
// The format of each file follows its suffix: .json or .yml.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/urfave/cli"
	"golang.org/x/sync/errgroup"

	"ags/format"
)

var verboseFlag = cli.BoolFlag{
	Name:   "verbose",
	Usage:  "log every step at debug level",
	EnvVar: "AGSCONV_VERBOSE",
}

func main() {
	if err := newApp(os.Stderr).Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp(logOut io.Writer) *cli.App {
	var log *slog.Logger

	app := cli.NewApp()
	app.Name = "agsconv"
	app.Usage = "re-encode structured documents between JSON and YAML"
	app.Version = "v0.1.0"
	app.Flags = []cli.Flag{verboseFlag}
	app.Before = func(c *cli.Context) error {
		log = newLogger(logOut, c.Bool(verboseFlag.Name))
		return nil
	}
	app.Commands = []cli.Command{
		{
			Name:      "convert",
			Usage:     "read IN and write the same document to OUT",
			ArgsUsage: "IN OUT",
			Action: func(c *cli.Context) error {
				if c.NArg() != 2 {
					return fmt.Errorf("convert takes IN and OUT, got %d arguments", c.NArg())
				}
				return convert(log, c.Args().Get(0), c.Args().Get(1))
			},
		},
		{
			Name:      "check",
			Usage:     "check that every FILE decodes",
			ArgsUsage: "FILE...",
			Action: func(c *cli.Context) error {
				if c.NArg() == 0 {
					return fmt.Errorf("check takes at least one FILE")
				}
				return check(log, c.Args())
			},
		},
	}

	return app
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func convert(log *slog.Logger, in, out string) error {
	log.Debug("reading", "path", in)

	s, err := format.ReadFile(in)
	if err != nil {
		return err
	}

	log.Debug("writing", "path", out)

	if err := format.WriteFile(out, s); err != nil {
		return err
	}

	log.Info("converted", "from", in, "to", out)
	return nil
}

// check decodes the files concurrently and reports the first failure.
func check(log *slog.Logger, paths []string) error {
	var g errgroup.Group
	for _, path := range paths {
		g.Go(func() error {
			if _, err := format.ReadFile(path); err != nil {
				log.Error("invalid document", "path", path, "err", err)
				return err
			}

			log.Debug("valid document", "path", path)
			return nil
		})
	}

	return g.Wait()
}
