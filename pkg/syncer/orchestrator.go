package syncer

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/breaking-byts/Life-Os-sub000/pkg/setting/repository"
	"github.com/breaking-byts/Life-Os-sub000/pkg/syncer/provider"
)

// Status is the externally visible sync state.
type Status struct {
	Connected    bool   `json:"connected"`
	LastSync     string `json:"last_sync,omitempty"`
	FailureCount int    `json:"failure_count"`
	BackoffMs    int64  `json:"backoff_ms"`
}

// Result describes one SyncNow outcome. A skipped attempt touched neither
// the remote nor the backoff state.
type Result struct {
	Skipped bool `json:"skipped"`
	Synced  bool `json:"synced"`
}

// Orchestrator composes the backoff policy with the provider's sync call.
// It runs on a timer while the service is up, immediately after user actions
// that should become externally visible, and on explicit request.
type Orchestrator struct {
	provider provider.Provider
	store    backoffStore

	cron *cron.Cron
	mu   sync.Mutex // serializes provider calls
	now  func() time.Time
}

func NewOrchestrator(p provider.Provider, settings repository.SettingRepository) *Orchestrator {
	return &Orchestrator{
		provider: p,
		store:    backoffStore{settings: settings},
		now:      time.Now,
	}
}

// Start schedules the periodic sync tick. Stop cancels it; no background
// work survives teardown.
func (o *Orchestrator) Start(interval time.Duration) error {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	o.cron = cron.New()
	_, err := o.cron.AddFunc(fmt.Sprintf("@every %s", interval), func() {
		if _, err := o.SyncNow(context.Background()); err != nil {
			log.Printf("[sync] periodic sync failed: %v", err)
		}
	})
	if err != nil {
		return err
	}
	o.cron.Start()
	return nil
}

func (o *Orchestrator) Stop() {
	if o.cron != nil {
		o.cron.Stop()
	}
}

func (o *Orchestrator) Connected() bool { return o.provider.Connected() }

// RequestSync is the fire-and-forget push used after accept/lock/drag
// commits. Failures land in the backoff state and are retried by the timer.
func (o *Orchestrator) RequestSync() {
	go func() {
		if _, err := o.SyncNow(context.Background()); err != nil {
			log.Printf("[sync] requested sync failed: %v", err)
		}
	}()
}

// SyncNow performs one gated sync attempt. Inside the backoff window the
// attempt is skipped entirely: no network call, no state change.
func (o *Orchestrator) SyncNow(ctx context.Context) (Result, error) {
	if !o.provider.Connected() {
		return Result{Skipped: true}, nil
	}

	b, err := o.store.load()
	if err != nil {
		return Result{}, fmt.Errorf("load backoff state: %w", err)
	}
	if b.ShouldSkip(o.now()) {
		log.Printf("[sync] skipped: %d consecutive failures, backoff %s", b.FailureCount, b.Delay())
		return Result{Skipped: true}, nil
	}

	o.mu.Lock()
	syncErr := o.provider.Sync(ctx)
	o.mu.Unlock()

	if syncErr != nil {
		if rerr := o.store.recordFailure(o.now()); rerr != nil {
			log.Printf("[sync] record failure: %v", rerr)
		}
		return Result{}, syncErr
	}
	if rerr := o.store.recordSuccess(o.now()); rerr != nil {
		log.Printf("[sync] record success: %v", rerr)
	}
	return Result{Synced: true}, nil
}

func (o *Orchestrator) Status() (Status, error) {
	b, err := o.store.load()
	if err != nil {
		return Status{}, err
	}
	last, err := o.store.lastSuccess()
	if err != nil {
		return Status{}, err
	}
	return Status{
		Connected:    o.provider.Connected(),
		LastSync:     last,
		FailureCount: b.FailureCount,
		BackoffMs:    b.Delay().Milliseconds(),
	}, nil
}
