package main

/*
* CLI to decode GWT-RPC request bodies
 */

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/op/go-logging"
	"github.com/urfave/cli"

	log2 "krypt.co/gwt/common/log"
	"krypt.co/gwt/common/render"
	"krypt.co/gwt/common/util"
	"krypt.co/gwt/common/version"
)

func useSyslog() bool {
	return os.Getenv("GWT_LOG_SYSLOG") == "true"
}

var log = log2.SetupLogging("gwtparse", logging.WARNING, useSyslog())

func main() {
	defer func() {
		if x := recover(); x != nil {
			log.Error(fmt.Sprintf("run time panic: %v", x))
			log.Error(string(debug.Stack()))
			panic(x)
		}
	}()

	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print the version",
	}

	app := cli.NewApp()
	app.Name = "gwtparse"
	app.Usage = "decode GWT-RPC calls"
	app.ArgsUsage = "RPC_STRING"
	app.Version = version.CURRENT_VERSION.String()
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "classes, c",
			Usage:  "A JSON object of classes to field counts",
			EnvVar: "GWT_CLASSES",
		},
		cli.BoolFlag{
			Name:  "s",
			Usage: "Parse in silent mode",
		},
		cli.BoolFlag{
			Name:  "v",
			Usage: "Parse in verbose mode",
		},
		cli.BoolFlag{
			Name:  "vv",
			Usage: "Parse in very verbose mode",
		},
		cli.StringFlag{
			Name:  "format, f",
			Value: render.FORMAT_TEXT,
			Usage: "Output format: text, json or yaml",
		},
		cli.BoolFlag{
			Name:  "save",
			Usage: "Load and save learned classes in ~/.gwt/classes.json",
		},
		cli.BoolFlag{
			Name:  "color",
			Usage: "Color output even when it is not a terminal",
		},
		cli.BoolFlag{
			Name:  "copy",
			Usage: "Copy the decoded output to the clipboard",
		},
	}
	app.Before = func(c *cli.Context) error {
		if c.GlobalBool("color") {
			util.ForceColor(true)
		}
		return nil
	}
	app.Action = parseCommand
	app.Commands = []cli.Command{
		cli.Command{
			Name:      "batch",
			Usage:     "Decode one RPC string per line of FILE (- for stdin)",
			ArgsUsage: "FILE",
			Action:    batchCommand,
		},
		cli.Command{
			Name:   "classes",
			Usage:  "Print the saved classes",
			Action: classesCommand,
			Subcommands: []cli.Command{
				cli.Command{
					Name:   "clear",
					Usage:  "Forget all saved classes",
					Action: classesClearCommand,
				},
			},
		},
	}
	app.Run(os.Args)
}
