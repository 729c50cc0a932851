package worker

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/internal/application/usecase/report"
)

type fakeGenerator struct {
	mu     sync.Mutex
	calls  []int
	output *report.GeneratePendingReportsOutput
	err    error
}

func (f *fakeGenerator) Execute(_ context.Context, input report.GeneratePendingReportsInput) (*report.GeneratePendingReportsOutput, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, input.Limit)
	if f.err != nil {
		return nil, f.err
	}
	if f.output == nil {
		return &report.GeneratePendingReportsOutput{}, nil
	}
	return f.output, nil
}

func (f *fakeGenerator) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

func TestNewReportWorker_Defaults(t *testing.T) {
	w := NewReportWorker(&fakeGenerator{}, ReportWorkerConfig{})

	assert.Equal(t, 10*time.Second, w.pollInterval)
	assert.Equal(t, 10, w.batchSize)
}

func TestReportWorker_ProcessNowUsesBatchSize(t *testing.T) {
	gen := &fakeGenerator{output: &report.GeneratePendingReportsOutput{Generated: 2, Failed: 1}}
	w := NewReportWorker(gen, ReportWorkerConfig{PollInterval: time.Hour, BatchSize: 3})

	w.ProcessNow(context.Background())

	require.Equal(t, 1, gen.callCount())
	assert.Equal(t, 3, gen.calls[0])
}

func TestReportWorker_ErrorDoesNotStopLoop(t *testing.T) {
	gen := &fakeGenerator{err: errors.New("database unavailable")}
	w := NewReportWorker(gen, ReportWorkerConfig{PollInterval: 10 * time.Millisecond, BatchSize: 1})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		w.Start(ctx)
		close(done)
	}()

	assert.Eventually(t, func() bool { return gen.callCount() >= 3 }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("worker did not stop after cancel")
	}
}
