package cronjob

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"
)

// HistoryPruner is the slice of the history store the retention job needs.
type HistoryPruner interface {
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

// RecentTrimmer re-applies the recent-list cap on the cache side.
type RecentTrimmer interface {
	Trim(ctx context.Context) error
}

// Scheduler prunes old simulation results on a nightly schedule.
type Scheduler struct {
	history       HistoryPruner
	cache         RecentTrimmer
	retentionDays int
}

func NewScheduler(history HistoryPruner, cache RecentTrimmer, retentionDays int) *Scheduler {
	return &Scheduler{
		history:       history,
		cache:         cache,
		retentionDays: retentionDays,
	}
}

// Start initializes cron tasks
func (s *Scheduler) Start() {
	c := cron.New(cron.WithSeconds())

	// (12:00 AM)
	_, err := c.AddFunc("0 0 0 * * *", func() {
		s.RunOnce(context.Background())
	})
	if err != nil {
		log.Printf("Failed to create cron job: %v", err)
		return
	}

	log.Printf("Cron scheduler started (pruning history older than %d days nightly)", s.retentionDays)
	c.Start()
}

// RunOnce performs one retention pass. Failures are logged; the next
// tick retries.
func (s *Scheduler) RunOnce(ctx context.Context) {
	cutoff := time.Now().UTC().AddDate(0, 0, -s.retentionDays)

	n, err := s.history.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		log.Printf("History prune failed: %v", err)
	} else if n > 0 {
		log.Printf("Pruned %d simulation results older than %s", n, cutoff.Format("2006-01-02"))
	}

	if s.cache != nil {
		if err := s.cache.Trim(ctx); err != nil {
			log.Printf("Recent-list trim failed: %v", err)
		}
	}
}
