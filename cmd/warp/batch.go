package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/ssh/terminal"
	progress "gopkg.in/cheggaaa/pb.v1"

	"github.com/katalvlaran/warp/batch"
	"github.com/katalvlaran/warp/cache"
	"github.com/katalvlaran/warp/config"
	"github.com/katalvlaran/warp/internal/logging"
	"github.com/katalvlaran/warp/pb"
	"github.com/katalvlaran/warp/render"
)

type batchFlags struct {
	engineFlags
	workers int
	redis   string
	redisDB int
	quiet   bool
}

func newBatchCmd() *cobra.Command {
	var f batchFlags
	cmd := &cobra.Command{
		Use:   "batch <jobs.yaml>",
		Short: "Align every sequence pair listed in a job file.",
		Long: `Batch reads a YAML job file, aligns each pair on a pool of workers and prints
the results in job order. Jobs without a pattern use --pattern (or the configured
default). Failed jobs are reported in the output and make the command exit non-zero.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			fs := cmd.Flags()
			if err = f.apply(fs, &cfg); err != nil {
				return err
			}
			if fs.Changed("workers") {
				cfg.Workers = f.workers
			}
			if fs.Changed("redis") {
				cfg.Cache.Redis = f.redis
			}
			if fs.Changed("redis-db") {
				cfg.Cache.DB = f.redisDB
			}
			if err = cfg.Validate(); err != nil {
				return err
			}
			switch cfg.Format {
			case config.FormatMask, config.FormatCosts:
				return errors.Errorf("format %q is only supported by align", cfg.Format)
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return runBatch(ctx, cmd.OutOrStdout(), cfg, args[0], f.quiet)
		},
	}
	fs := cmd.Flags()
	f.register(fs, "yaml, pb or template")
	fs.IntVar(&f.workers, "workers", 0, "Number of parallel workers (0 means one per CPU).")
	fs.StringVar(&f.redis, "redis", "", "Redis address (host:port) of the result cache.")
	fs.IntVar(&f.redisDB, "redis-db", 0, "Redis database number.")
	fs.BoolVar(&f.quiet, "quiet", !terminal.IsTerminal(int(os.Stderr.Fd())),
		"Do not print status updates to stderr.")
	return cmd
}

// runBatch loads the jobs, runs them and writes the results.
func runBatch(ctx context.Context, w io.Writer, cfg config.Config, jobsPath string, quiet bool) error {
	jobs, err := config.LoadJobs(jobsPath, cfg.Pattern)
	if err != nil {
		return err
	}

	runner := batch.NewRunner()
	runner.Workers = cfg.Workers
	runner.Fill = cfg.Fill
	runner.Logger = logging.NewWriterLogger(os.Stderr)
	if cfg.Cache.Redis != "" {
		client, err := cache.DialRedis(ctx, cfg.Cache.Redis, cfg.Cache.DB)
		if err != nil {
			return err
		}
		defer client.Close()
		runner.Store = cache.NewRedisStore(client, cfg.Cache.Prefix, cfg.Cache.TTL)
	}

	var bar *progress.ProgressBar
	if !quiet {
		runner.OnProgress = func(done, total int) {
			if bar == nil {
				bar = progress.New(total)
				bar.Callback = func(msg string) {
					os.Stderr.WriteString("\033[2K\r" + msg)
				}
				bar.NotPrint = true
				bar.ShowPercent = false
				bar.ShowSpeed = false
				bar.SetMaxWidth(80).Start()
			}
			bar.Set(done)
			if done == total {
				bar.Finish()
				fmt.Fprint(os.Stderr, "\033[2K\r")
			}
		}
	}

	results, runErr := runner.Run(ctx, jobs)
	if err = writeBatch(w, cfg, results); err != nil {
		return err
	}
	if runErr != nil {
		return runErr
	}
	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d jobs failed", failed, len(results))
	}
	return nil
}

func writeBatch(w io.Writer, cfg config.Config, results []batch.Result) error {
	if cfg.Format == config.FormatPB {
		alignments := make([]*pb.Alignment, 0, len(results))
		for _, res := range results {
			if res.Err == nil {
				alignments = append(alignments, res.ToProto())
			}
		}
		return render.WriteProto(w, alignments)
	}

	views := make([]render.View, len(results))
	for i, res := range results {
		if res.Err != nil {
			views[i] = render.View{ID: res.ID, Pattern: res.Pattern.String(), Error: res.Err.Error()}
			continue
		}
		views[i] = render.ViewOf(res.ToProto())
		views[i].Cached = res.Cached
	}
	if cfg.Format == config.FormatTemplate {
		return render.WriteTemplate(w, cfg.Template, views)
	}
	return render.WriteYAML(w, views)
}
