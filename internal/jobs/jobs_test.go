package jobs

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/straye-as/paint-stock-api/internal/domain"
	"github.com/straye-as/paint-stock-api/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type fixedReport struct {
	rep domain.Report
}

func (f fixedReport) Report() domain.Report { return f.rep }

type recordingStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	failPut error
}

func newRecordingStorage() *recordingStorage {
	return &recordingStorage{objects: make(map[string][]byte)}
}

func (s *recordingStorage) Put(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.failPut != nil {
		return s.failPut
	}
	s.objects[key] = append([]byte(nil), data...)
	return nil
}

func (s *recordingStorage) Get(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.objects[key]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return data, nil
}

func (s *recordingStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	return nil
}

func weekReport(week int) domain.Report {
	byColor := map[domain.PaintColor]float64{domain.ColorRed: 41.25}
	return report.Build(week, byColor, domain.DefaultTargets)
}

func TestScheduler_AddAndRemoveJobs(t *testing.T) {
	s := NewScheduler(zap.NewNop())

	require.NoError(t, s.AddJob("weekly", "0 18 * * 5", func() {}))
	require.NoError(t, s.AddJob("with-seconds", "0 0 18 * * 5", func() {}))
	require.NoError(t, s.AddJob("descriptor", "@daily", func() {}))
	assert.ElementsMatch(t, []string{"weekly", "with-seconds", "descriptor"}, s.GetJobNames())

	err := s.AddJob("weekly", "@hourly", func() {})
	assert.Error(t, err)

	err = s.AddJob("broken", "every friday", func() {})
	assert.Error(t, err)
	assert.NotContains(t, s.GetJobNames(), "broken")

	require.NoError(t, s.RemoveJob("weekly"))
	assert.Error(t, s.RemoveJob("weekly"))
	assert.ElementsMatch(t, []string{"with-seconds", "descriptor"}, s.GetJobNames())
}

func TestScheduler_RunsJobs(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	ran := make(chan struct{}, 1)

	require.NoError(t, s.AddJob("tick", "@every 1s", func() {
		select {
		case ran <- struct{}{}:
		default:
		}
	}))

	s.Start()
	defer s.Stop()

	select {
	case <-ran:
	case <-time.After(3 * time.Second):
		t.Fatal("job did not run")
	}
}

func TestReportArchiveJob_Archive(t *testing.T) {
	store := newRecordingStorage()
	job := NewReportArchiveJob(fixedReport{weekReport(12)}, store, "reports/",
		[]report.Format{report.FormatCSV, report.FormatXLSX}, zap.NewNop(), time.Minute)

	keys, err := job.Archive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"reports/paint-report-week-12.csv", "reports/paint-report-week-12.xlsx"}, keys)

	csv, err := store.Get(context.Background(), "reports/paint-report-week-12.csv")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(csv), "Color,This Week (kg)"))
	assert.Contains(t, string(csv), "Red,41.2,200,-158.8,20.6")

	xlsx, err := store.Get(context.Background(), "reports/paint-report-week-12.xlsx")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(xlsx), "PK"))
}

func TestReportArchiveJob_DefaultsToCSV(t *testing.T) {
	store := newRecordingStorage()
	job := NewReportArchiveJob(fixedReport{weekReport(3)}, store, "", nil, zap.NewNop(), time.Minute)

	keys, err := job.Archive(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"paint-report-week-3.csv"}, keys)
}

func TestReportArchiveJob_RunLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	store := newRecordingStorage()
	store.failPut = errors.New("container unavailable")

	job := NewReportArchiveJob(fixedReport{weekReport(1)}, store, "reports/", nil, zap.New(core), time.Minute)
	job.Run()

	failures := logs.FilterMessage("report archive failed")
	require.Equal(t, 1, failures.Len())
	assert.Equal(t, "container unavailable", failures.All()[0].ContextMap()["error"])
}

func TestRegisterReportArchiveJob(t *testing.T) {
	s := NewScheduler(zap.NewNop())
	job := NewReportArchiveJob(fixedReport{weekReport(1)}, newRecordingStorage(), "reports/", nil, zap.NewNop(), time.Minute)

	require.NoError(t, RegisterReportArchiveJob(s, job, "0 18 * * 5"))
	assert.Equal(t, []string{ReportArchiveJobName}, s.GetJobNames())
}
