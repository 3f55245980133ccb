package jobs

import (
	"bytes"
	"context"
	"time"

	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/report"
	"github.com/straye-as/paint-stock-api/internal/storage"
	"go.uber.org/zap"
)

// ReportArchiveJobName is the name of the weekly report archive job
const ReportArchiveJobName = "report_archive"

// DefaultArchiveTimeout bounds a single archive run
const DefaultArchiveTimeout = 2 * time.Minute

// ReportSource builds the current weekly report.
// This interface allows the job to run without importing the service package.
type ReportSource interface {
	Report() domain.Report
}

// ReportArchiveJob writes the current week's report to storage, so a copy
// survives after the week number moves on or the data is reset
type ReportArchiveJob struct {
	source  ReportSource
	store   storage.Storage
	prefix  string
	formats []report.Format
	logger  *zap.Logger
	timeout time.Duration
}

// NewReportArchiveJob creates the archive job. Reports are stored as
// prefix + "paint-report-week-<n>.<ext>", one object per format.
func NewReportArchiveJob(source ReportSource, store storage.Storage, prefix string, formats []report.Format, logger *zap.Logger, timeout time.Duration) *ReportArchiveJob {
	if len(formats) == 0 {
		formats = []report.Format{report.FormatCSV}
	}
	return &ReportArchiveJob{
		source:  source,
		store:   store,
		prefix:  prefix,
		formats: formats,
		logger:  logger,
		timeout: timeout,
	}
}

// Run is called by the scheduler.
func (j *ReportArchiveJob) Run() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	start := time.Now()
	keys, err := j.Archive(ctx)
	if err != nil {
		j.logger.Error("report archive failed",
			zap.Strings("archived", keys),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return
	}

	j.logger.Info("report archive completed",
		zap.Strings("archived", keys),
		zap.Duration("duration", time.Since(start)))
}

// Archive renders the report in every configured format and stores it.
// It returns the keys written before any failure.
func (j *ReportArchiveJob) Archive(ctx context.Context) ([]string, error) {
	rep := j.source.Report()

	keys := make([]string, 0, len(j.formats))
	for _, format := range j.formats {
		var buf bytes.Buffer
		if err := report.Write(&buf, rep, format); err != nil {
			return keys, err
		}

		key := j.prefix + report.FileName(rep.WeekNumber, format)
		if err := j.store.Put(ctx, key, buf.Bytes()); err != nil {
			return keys, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// RegisterReportArchiveJob registers the archive job with the scheduler.
func RegisterReportArchiveJob(scheduler *Scheduler, job *ReportArchiveJob, cronExpr string) error {
	return scheduler.AddJob(ReportArchiveJobName, cronExpr, job.Run)
}
