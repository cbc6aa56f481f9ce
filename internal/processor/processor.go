package processor

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/nguyentantai21042004/sentiment-flow/internal/report"
	"github.com/nguyentantai21042004/sentiment-flow/internal/scanner"
	"github.com/nguyentantai21042004/sentiment-flow/internal/transcript"
)

type fileStats struct {
	records int
	windows int
}

// Process runs a single transcript file through the pipeline
func (p *implProcessor) Process(ctx context.Context, path string) error {
	_, err := p.processFile(ctx, path)
	return err
}

func (p *implProcessor) processFile(ctx context.Context, path string) (stats fileStats, err error) {
	startTime := time.Now()
	p.logger.Info(ctx, "Running transcript analysis: %s", path)

	content, err := os.ReadFile(path)
	if err != nil {
		return stats, fmt.Errorf("read transcript: %w", err)
	}

	w, err := report.Open(p.cfg.Output.DetailPath, p.cfg.Output.SummaryPath)
	if err != nil {
		return stats, fmt.Errorf("open outputs: %w", err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close outputs: %w", cerr)
		}
	}()

	for rec := range transcript.Records(string(content), p.cfg.Transcripts.Delimiter) {
		n, err := p.aggregate(ctx, rec, w)
		stats.windows += n
		if err != nil {
			return stats, err
		}
		stats.records++
		p.logger.Debug(ctx, "Record %s: %d segment(s)", rec.Date, n)
	}

	p.logger.Info(ctx, "Wrote %d record(s), %d segment(s) from %s in %s",
		stats.records, stats.windows, filepath.Base(path), time.Since(startTime).Round(time.Millisecond))
	return stats, nil
}

// Run processes every transcript file in dir, one at a time, in directory order
func (p *implProcessor) Run(ctx context.Context, dir string) (Result, error) {
	var res Result

	files, err := scanner.Scan(dir, p.cfg.Transcripts.Extension)
	if err != nil {
		return res, fmt.Errorf("discover transcripts: %w", err)
	}

	if len(files) == 0 {
		p.logger.Info(ctx, "No .%s files found in %s", p.cfg.Transcripts.Extension, dir)
		return res, nil
	}

	res.Files = len(files)
	p.logger.Info(ctx, "Found %d transcript file(s) to analyse", len(files))

	for i, path := range files {
		p.logger.Info(ctx, "[%d/%d] Processing: %s", i+1, len(files), filepath.Base(path))

		stats, err := p.processFile(ctx, path)
		res.Records += stats.records
		res.Windows += stats.windows
		if err != nil {
			p.logger.Error(ctx, "Failed to process %s: %v", path, err)
			res.Failed++
			continue
		}
		res.Succeeded++
	}

	p.logger.Info(ctx, "Transcript analysis complete: %d success, %d failed", res.Succeeded, res.Failed)

	if err := p.Report(ctx); err != nil {
		p.logger.Warn(ctx, "Failed to render report: %v", err)
	}

	return res, nil
}

// Report renders every summary row written so far into the configured docx file
func (p *implProcessor) Report(ctx context.Context) error {
	if p.cfg.Output.ReportPath == "" {
		return nil
	}

	rows, err := report.ReadSummaries(p.cfg.Output.SummaryPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			p.logger.Debug(ctx, "No summary file yet, skipping report")
			return nil
		}
		return err
	}

	if dir := filepath.Dir(p.cfg.Output.ReportPath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	if err := report.RenderDocx("Transcript sentiment summary", rows, p.now(), p.cfg.Output.ReportPath); err != nil {
		return err
	}

	p.logger.Info(ctx, "Report written: %s (%d transcript(s))", p.cfg.Output.ReportPath, len(rows))
	return nil
}
