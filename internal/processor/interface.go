package processor

import "context"

// Processor runs transcript files through segmentation, sentiment scoring and CSV output
type Processor interface {
	// Process handles one transcript file. Rows written before a failure stay in the outputs.
	Process(ctx context.Context, path string) error
	// Run processes every matching file in dir, continuing past per-file failures.
	Run(ctx context.Context, dir string) (Result, error)
	// Report renders the docx summary report when one is configured.
	Report(ctx context.Context) error
}

// Result counts the work done by Run
type Result struct {
	Files     int
	Succeeded int
	Failed    int
	Records   int
	Windows   int
}
