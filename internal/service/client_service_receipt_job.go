package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-will-keeper/internal/logger"
)

const defaultReceiptInterval = 15 * time.Second

type receiptSyncJob struct {
	syncService ReceiptSyncService
	interval    time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup
}

// NewReceiptSyncJob creates a job that calls syncService.Reconcile every
// interval, defaulting to 15 seconds if interval is zero or negative. The
// job is idle until Start is called.
func NewReceiptSyncJob(syncService ReceiptSyncService, interval time.Duration, log *logger.Logger) ReceiptSyncJob {
	if interval <= 0 {
		interval = defaultReceiptInterval
	}

	return &receiptSyncJob{
		syncService: syncService,
		interval:    interval,
		logger:      log.GetChildLogger(),
	}
}

// Start implements ReceiptSyncJob. The goroutine exits when ctx is cancelled
// or Stop is called.
func (j *receiptSyncJob) Start(ctx context.Context) {
	j.Stop()

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()
		t := time.NewTicker(j.interval)
		defer t.Stop()

		// settle what earlier sessions left pending without waiting a full interval
		j.reconcile(jobCtx)

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				j.reconcile(jobCtx)
			}
		}
	}()
}

func (j *receiptSyncJob) reconcile(ctx context.Context) {
	settled, err := j.syncService.Reconcile(ctx)
	if err != nil {
		j.logger.Err(err).Str("func", "receiptSyncJob").Int("settled", settled).Msg("reconcile failed")
		return
	}
	if settled > 0 {
		j.logger.Info().Str("func", "receiptSyncJob").Int("settled", settled).Msg("pending transactions settled")
	}
}

// Stop implements ReceiptSyncJob. Safe to call when the job is not running.
func (j *receiptSyncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	j.cancel = nil
	j.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
