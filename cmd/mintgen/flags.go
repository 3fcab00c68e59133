package main

import (
	"github.com/urfave/cli/v2"

	"github.com/solmint/mintgen/internal/log"
)

var (
	configFileFlag = &cli.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Specify config file",
	}
	verbosityFlag = &cli.Uint64Flag{
		Name:    "verbosity",
		Aliases: []string{"v"},
		Usage:   "log verbosity (0:panic, 1:fatal, 2:error, 3:warn, 4:info, 5:debug, 6:trace)",
		Value:   4,
	}
	jsonFormatFlag = &cli.BoolFlag{
		Name:  "json",
		Usage: "output log in json format",
	}
	colorFormatFlag = &cli.BoolFlag{
		Name:  "color",
		Usage: "output log in color text format",
		Value: true,
	}

	countFlag = &cli.IntFlag{
		Name:    "count",
		Aliases: []string{"n"},
		Usage:   "number of addresses to generate",
		Value:   1,
	}
	batchSizeFlag = &cli.IntFlag{
		Name:    "batch-size",
		Aliases: []string{"b"},
		Usage:   "batch size for database uploads (0 = upload all at end)",
		Value:   10,
	}
	saveLocalFlag = &cli.BoolFlag{
		Name:  "save-local",
		Usage: "save matches to a local backup file",
	}
	workersFlag = &cli.IntFlag{
		Name:    "workers",
		Aliases: []string{"w"},
		Usage:   "number of search workers (0 = number of logical cores)",
	}
)

var generateFlags = []cli.Flag{
	countFlag,
	batchSizeFlag,
	saveLocalFlag,
	workersFlag,
}

func setLogger(ctx *cli.Context) {
	logLevel := ctx.Uint64(verbosityFlag.Name)
	jsonFormat := ctx.Bool(jsonFormatFlag.Name)
	colorFormat := ctx.Bool(colorFormatFlag.Name)
	log.SetLogger(uint32(logLevel), jsonFormat, colorFormat)
}
