package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/sentiment-flow/internal/config"
	"github.com/nguyentantai21042004/sentiment-flow/internal/logger"
	"github.com/nguyentantai21042004/sentiment-flow/internal/processor"
	"github.com/nguyentantai21042004/sentiment-flow/internal/sentiment"
	"github.com/nguyentantai21042004/sentiment-flow/internal/tabular"
	"github.com/nguyentantai21042004/sentiment-flow/internal/watcher"
)

const usage = `Must include parameters as follows:
  -t <twitter csv file> [--summary] OR
  -s to run transcript analysis in the input folder (must contain .txt files) OR
  -w to watch the input folder for new transcripts`

type options struct {
	configPath  string
	transcripts bool
	tweets      string
	summary     bool
	watch       bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:           "sentiment",
		Short:         "Annotate transcripts and tweets with sentiment scores",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), opts, args)
		},
	}

	// invalid flags get the same fixed usage text as missing ones
	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		fmt.Fprintln(c.OutOrStdout(), usage)
		return nil
	})

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "config.yaml", "path to the YAML config file")
	f.BoolVarP(&opts.transcripts, "transcripts", "s", false, "analyse every transcript file in the input folder")
	f.StringVarP(&opts.tweets, "tweets", "t", "", "twitter CSV file to annotate")
	f.BoolVar(&opts.summary, "summary", false, "with -t, add only the sentiment label from the tweet column")
	f.BoolVarP(&opts.watch, "watch", "w", false, "watch the input folder and analyse new transcripts")

	return cmd
}

func (o *options) modes() int {
	n := 0
	for _, set := range []bool{o.transcripts, o.tweets != "", o.watch} {
		if set {
			n++
		}
	}
	return n
}

func run(ctx context.Context, out io.Writer, opts *options, args []string) error {
	if len(args) > 0 || opts.modes() != 1 || (opts.summary && opts.tweets == "") {
		fmt.Fprintln(out, usage)
		return nil
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)
	log.Debug(ctx, "System: %s/%s, provider: %s", runtime.GOOS, runtime.GOARCH, cfg.Sentiment.Provider)

	client, err := sentiment.New(cfg.Sentiment)
	if err != nil {
		return err
	}

	switch {
	case opts.tweets != "":
		return runTweets(ctx, cfg, client, log, opts)
	case opts.watch:
		return runWatch(ctx, cfg, client, log)
	default:
		return runTranscripts(ctx, cfg, client, log)
	}
}

func runTranscripts(ctx context.Context, cfg *config.Config, client sentiment.Client, log logger.Logger) error {
	proc := processor.New(cfg, client, log)

	log.Info(ctx, "Running transcript analysis in %s", cfg.Transcripts.InputDir)
	res, err := proc.Run(ctx, cfg.Transcripts.InputDir)
	if err != nil {
		return err
	}

	log.Info(ctx, "Files: %d, records: %d, segments: %d", res.Files, res.Records, res.Windows)
	log.Info(ctx, "Detail: %s", cfg.Output.DetailPath)
	log.Info(ctx, "Summary: %s", cfg.Output.SummaryPath)
	return nil
}

func runTweets(ctx context.Context, cfg *config.Config, client sentiment.Client, log logger.Logger, opts *options) error {
	mode, out := tabular.ModeFull, cfg.Tweets.FullOutput
	if opts.summary {
		mode, out = tabular.ModeSummary, cfg.Tweets.SummaryOutput
	}

	if _, err := tabular.New(client, log).Augment(ctx, opts.tweets, out, mode); err != nil {
		return fmt.Errorf("tweet analysis: %w", err)
	}
	return nil
}

func runWatch(ctx context.Context, cfg *config.Config, client sentiment.Client, log logger.Logger) error {
	proc := processor.New(cfg, client, log)

	handler := func(ctx context.Context, path string) error {
		if err := proc.Process(ctx, path); err != nil {
			return err
		}
		if err := proc.Report(ctx); err != nil {
			log.Warn(ctx, "Failed to render report: %v", err)
		}
		return nil
	}

	w, err := watcher.New(cfg.Transcripts.InputDir, cfg.Transcripts.Extension, handler, log)
	if err != nil {
		return err
	}
	defer w.Stop()

	log.Info(ctx, "Press Ctrl+C to stop")

	if err := w.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("watcher: %w", err)
	}

	log.Info(ctx, "Sentiment watcher stopped")
	return nil
}
