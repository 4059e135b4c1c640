package syncer

import (
	"strconv"
	"time"

	"github.com/breaking-byts/Life-Os-sub000/pkg/setting/repository"
)

// Backoff grows geometrically with consecutive failures and caps, so a
// broken remote is never hammered but recovery after a transient error is
// prompt. One recorded success clears the whole state.
const (
	BackoffBase = 30 * time.Second
	BackoffCap  = 10 * time.Minute

	keyFailureCount  = "sync_failure_count"
	keyLastFailureAt = "sync_last_failure_at"
	keyLastSuccessAt = "sync_last_success_at"
)

// Backoff is the derived policy state: two counters, both zero when healthy.
type Backoff struct {
	FailureCount  int
	LastFailureAt time.Time
}

// Delay returns the minimum wait after the last failure before the next
// attempt: 0 with no failures, else min(base * 2^(n-1), cap).
func (b Backoff) Delay() time.Duration {
	if b.FailureCount <= 0 {
		return 0
	}
	d := BackoffBase
	for i := 1; i < b.FailureCount; i++ {
		d *= 2
		if d >= BackoffCap {
			return BackoffCap
		}
	}
	if d > BackoffCap {
		return BackoffCap
	}
	return d
}

// ShouldSkip reports whether a sync attempt at now falls inside the backoff
// window and must be skipped without touching the remote.
func (b Backoff) ShouldSkip(now time.Time) bool {
	d := b.Delay()
	return d > 0 && now.Sub(b.LastFailureAt) < d
}

// backoffStore persists the two counters as settings rows. The read-then-
// write is deliberately untransactional: the state only gates an optional
// optimization, and a lost update costs at most one extra sync attempt.
type backoffStore struct {
	settings repository.SettingRepository
}

func (s backoffStore) load() (Backoff, error) {
	var b Backoff
	raw, err := s.settings.Get(keyFailureCount)
	if err != nil {
		return b, err
	}
	if raw != "" {
		b.FailureCount, _ = strconv.Atoi(raw)
	}
	raw, err = s.settings.Get(keyLastFailureAt)
	if err != nil {
		return b, err
	}
	if raw != "" {
		if ms, perr := strconv.ParseInt(raw, 10, 64); perr == nil && ms > 0 {
			b.LastFailureAt = time.UnixMilli(ms)
		}
	}
	return b, nil
}

func (s backoffStore) recordFailure(now time.Time) error {
	b, err := s.load()
	if err != nil {
		return err
	}
	if err := s.settings.Put(keyFailureCount, strconv.Itoa(b.FailureCount+1)); err != nil {
		return err
	}
	return s.settings.Put(keyLastFailureAt, strconv.FormatInt(now.UnixMilli(), 10))
}

func (s backoffStore) recordSuccess(now time.Time) error {
	if err := s.settings.Delete(keyFailureCount, keyLastFailureAt); err != nil {
		return err
	}
	return s.settings.Put(keyLastSuccessAt, now.Format("2006-01-02T15:04:05"))
}

func (s backoffStore) lastSuccess() (string, error) {
	return s.settings.Get(keyLastSuccessAt)
}
