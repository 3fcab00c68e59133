// Command mintgen grinds Solana keypairs whose address ends with a chosen
// launchpad suffix and ships the matches to a Supabase table, with an
// optional local backup file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"

	"github.com/solmint/mintgen/internal/log"
	"github.com/solmint/mintgen/internal/params"
	"github.com/solmint/mintgen/internal/supabase"
	"github.com/solmint/mintgen/internal/ui"
	"github.com/solmint/mintgen/internal/uploader"
	"github.com/solmint/mintgen/pkg/generator"
	"github.com/solmint/mintgen/pkg/generator/cpu"
)

const version = "0.2"

var app = cli.NewApp()

func initApp() {
	app.Name = filepath.Base(os.Args[0])
	app.Version = version
	app.Usage = "generate Solana mint addresses with specific suffixes"
	app.Flags = []cli.Flag{
		configFileFlag,
		verbosityFlag,
		jsonFormatFlag,
		colorFormatFlag,
	}
	app.Before = prepare
	app.Commands = []*cli.Command{
		{
			Name:   "pump",
			Usage:  "generate addresses ending with 'pump' for pump.fun tokens",
			Flags:  generateFlags,
			Action: func(ctx *cli.Context) error { return generate(ctx, generator.SuffixPump) },
		},
		{
			Name:   "bonk",
			Usage:  "generate addresses ending with 'bonk' for letsbonk tokens",
			Flags:  generateFlags,
			Action: func(ctx *cli.Context) error { return generate(ctx, generator.SuffixBonk) },
		},
		{
			Name:  "both",
			Usage: "generate both pump and bonk addresses",
			Flags: generateFlags,
			Action: func(ctx *cli.Context) error {
				if err := generate(ctx, generator.SuffixPump); err != nil {
					return err
				}
				return generate(ctx, generator.SuffixBonk)
			},
		},
	}
}

func main() {
	initApp()
	if err := app.Run(os.Args); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func prepare(ctx *cli.Context) error {
	setLogger(ctx)
	// A missing .env file is fine; environment variables may be set directly.
	if err := godotenv.Load(); err == nil {
		log.Debug("loaded environment from .env")
	}
	params.LoadConfig(ctx.String(configFileFlag.Name))
	return nil
}

func generate(cliCtx *cli.Context, typ generator.SuffixType) error {
	cfg := params.LoadConfig(cliCtx.String(configFileFlag.Name))

	workers := cliCtx.Int(workersFlag.Name)
	if workers == 0 {
		workers = cfg.Generate.Workers
	}
	batchSize := cliCtx.Int(batchSizeFlag.Name)
	if !cliCtx.IsSet(batchSizeFlag.Name) && cfg.Generate.BatchSize > 0 {
		batchSize = cfg.Generate.BatchSize
	}

	job, err := generator.NewJob(typ, cliCtx.Int(countFlag.Name), batchSize, workers, cliCtx.Bool(saveLocalFlag.Name))
	if err != nil {
		return err
	}

	client, err := supabase.NewClient(cfg.Supabase)
	if err != nil {
		return fmt.Errorf("initialize supabase client: %w (check your .env file)", err)
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return run(ctx, cfg, job, client)
}

func run(ctx context.Context, cfg *params.Config, job *generator.Job, client uploader.Client) error {
	strategy := fmt.Sprintf("batch upload every %d addresses", job.BatchSize)
	if job.BatchSize == 0 {
		strategy = "upload all addresses at the end"
	}
	log.Info("starting search",
		"suffix", job.Suffix, "count", job.Count,
		"workers", job.Workers, "upload", strategy)

	var backup *uploader.BackupWriter
	if job.SaveLocal {
		var err error
		backup, err = uploader.NewBackupWriter(".", job.Type)
		if err != nil {
			// Backup is best-effort; the search and upload still run.
			log.Warn("local backup disabled", "err", err)
		} else {
			defer backup.Close()
			log.Info("saving local backup", "file", backup.Path())
		}
	}

	stats := generator.NewRunStats(job.Count)

	reporterDone := make(chan struct{})
	interval := time.Duration(cfg.Generate.ReportIntervalSeconds) * time.Second
	go generator.NewReporter(stats, interval).Run(reporterDone)

	results, err := cpu.NewDispatcher().Run(ctx, job, stats)
	if err != nil {
		close(reporterDone)
		return err
	}

	summary := uploader.NewBatcher(client, job.BatchSize, backup).Drain(ctx, job.Count, results)
	close(reporterDone)

	printSummary(job, stats.Snapshot(), summary)

	if ctx.Err() != nil && summary.Found < job.Count {
		return fmt.Errorf("run cancelled after %d/%d addresses", summary.Found, job.Count)
	}
	return nil
}

func printSummary(job *generator.Job, st generator.Stats, sum uploader.Summary) {
	elapsed := time.Duration(st.ElapsedSecs * float64(time.Second))
	avg := float64(st.Attempts)
	if sum.Found > 0 {
		avg = float64(st.Attempts) / float64(sum.Found)
	}

	log.Info("generation complete",
		"suffix", job.Suffix,
		"found", sum.Found,
		"attempts", ui.FormatNumber(st.Attempts),
		"elapsed", ui.FormatDuration(elapsed),
		"rate", ui.FormatHashRate(st.HashRate),
		"avgAttemptsPerAddress", fmt.Sprintf("%.0f", avg),
	)
	log.Info("upload summary",
		"uploaded", sum.Uploaded,
		"failed", sum.FailedUpload,
		"backedUp", sum.BackedUp,
	)
}
