package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cvflow/cvparse/internal/ingest"
	"github.com/cvflow/cvparse/internal/resume"
	"github.com/cvflow/cvparse/internal/sink"
)

// Worker processes one job at a time: text extraction, parsing, optional
// delivery to the sink.
type Worker struct {
	parser     *resume.Parser
	stats      *resume.Stats
	sink       *sink.Client
	log        *slog.Logger
	ingestOpts ingest.Options
}

func NewWorker(parser *resume.Parser, stats *resume.Stats, sc *sink.Client, log *slog.Logger, ingestOpts ingest.Options) *Worker {
	return &Worker{
		parser:     parser,
		stats:      stats,
		sink:       sc,
		log:        log,
		ingestOpts: ingestOpts,
	}
}

// Process runs a job to completion. Failures end the job in StatusFailed with
// the cause recorded; a sink delivery failure is recorded but does not fail
// the job, since the result is still available for polling.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	log.Info("job started")

	job.SetStatus(StatusExtracting, "extract_text")
	text, err := w.extractText(job)
	if err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extract_text")
		log.Error("text extraction failed", "error", err)
		return
	}

	job.SetStatus(StatusParsing, "parse")
	start := time.Now()
	cv := w.parser.Parse(text)
	w.stats.Record(time.Since(start).Milliseconds())
	result := cv.Cleaned()

	if w.sink != nil {
		job.SetStatus(StatusDelivering, "deliver")
		d := sink.Delivery{
			JobID:    job.ID,
			Filename: job.Filename,
			ParsedAt: time.Now().UTC(),
			Record:   result,
		}
		if err := w.sink.Deliver(ctx, d); err != nil {
			job.AddError(fmt.Sprintf("deliver: %v", err))
			log.Warn("sink delivery failed", "error", err)
		}
	}

	job.SetResult(result)
	job.SetStatus(StatusCompleted, "done")
	log.Info("job completed", "duration_ms", time.Since(start).Milliseconds())
}

func (w *Worker) extractText(job *Job) (string, error) {
	ext, err := ingest.ForFile(job.Filename, w.ingestOpts)
	if err != nil {
		return "", err
	}
	text, err := ext.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		return "", fmt.Errorf("extract %s: %w", job.Filename, err)
	}
	return text, nil
}
