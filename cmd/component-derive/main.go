// Package main provides the CLI entrypoint for component-derive.
//
// component-derive generates MockComponent implementations that forward
// every method to a delegate field of the marked struct:
//
//	//go:generate go run component-derive/cmd/component-derive .
//
//	//realm:derive
//	//realm:component "inner"
//	type Labeled struct {
//		inner realm.MockComponent
//	}
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func main() {
	app := newApp()

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()

	app.Name = "component-derive"
	app.Usage = "generate forwarding MockComponent implementations"
	app.UsageText = "component-derive [flags] [packages]"
	app.HideVersion = true
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.StringSliceFlag{
			Name:  "type, t",
			Usage: "type names to generate in addition to //realm:derive ones",
		},
		cli.StringFlag{
			Name:  "config, c",
			Usage: "YAML config file",
		},
		cli.StringFlag{
			Name:  "dir, C",
			Usage: "directory package patterns are resolved in (default: the current directory)",
		},
		cli.StringFlag{
			Name:  "tags",
			Usage: "comma separated build tags used when loading packages",
		},
		cli.StringFlag{
			Name:  "output, o",
			Usage: "output directory (default: the package directory)",
		},
		cli.StringFlag{
			Name:  "suffix",
			Usage: "generated file suffix (default \"_component.go\")",
		},
		cli.StringFlag{
			Name:  "framework",
			Usage: "import path of the package declaring MockComponent",
		},
		cli.StringFlag{
			Name:  "alias",
			Usage: "import alias of the framework package",
		},
		cli.StringFlag{
			Name:  "field",
			Usage: "delegate field used when no //realm:component directive is given",
		},
		cli.BoolFlag{
			Name:  "dry-run",
			Usage: "print generated code to stdout instead of writing files",
		},
		cli.BoolFlag{
			Name:  "debug",
			Usage: "dump analyzed declarations",
		},
		cli.StringFlag{
			Name:  "log-level, l",
			Usage: "log level: debug,info,warning,error",
			Value: "info",
		},
	}

	app.Before = func(c *cli.Context) error {
		lv, err := logrus.ParseLevel(c.String("log-level"))
		if err != nil {
			return err
		}
		logrus.SetLevel(lv)
		logrus.SetOutput(c.App.ErrWriter)

		return nil
	}

	app.Commands = []cli.Command{
		{
			Name:      "init",
			Usage:     "write a config file with the default settings",
			ArgsUsage: "[path]",
			Action:    initConfig,
		},
	}

	app.Action = func(c *cli.Context) error {
		opts, err := optionsFromContext(c)
		if err != nil {
			return err
		}

		r := &runner{
			opts:   opts,
			out:    c.App.Writer,
			errOut: c.App.ErrWriter,
			log:    logrus.StandardLogger(),
		}

		return r.run()
	}

	return app
}
