// Package poller runs the dashboard's periodic refresh cycles. Each
// subscription owns one ticker goroutine and is stopped explicitly, so a
// parent can tear polling down deterministically instead of leaking timers.
package poller

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/2extndd/MRS-sub002/internal/api"
)

// MaxItems caps how many recent items a cycle delivers.
const MaxItems = 30

// Default poll periods.
const (
	StatsInterval = 10 * time.Second
	ItemsInterval = 30 * time.Second
)

// Subscription is a running poll loop. Stop cancels it and waits for the
// loop to exit; it is safe to call more than once.
type Subscription struct {
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// New starts a loop that runs cycle every interval. When focused reports
// true the cycle is skipped entirely, so polling never disturbs active
// input; the guard is checked before any work for that tick. Cycles are not
// de-duplicated: a slow cycle may overlap the next tick's.
func New(interval time.Duration, focused func() bool, cycle func()) *Subscription {
	s := &Subscription{
		stop: make(chan struct{}),
		done: make(chan struct{}),
	}
	go s.loop(interval, focused, cycle)
	return s
}

// Stop halts the loop and blocks until it has exited. No deliveries happen
// after Stop returns.
func (s *Subscription) Stop() {
	s.stopOnce.Do(func() {
		close(s.stop)
	})
	<-s.done
}

func (s *Subscription) loop(interval time.Duration, focused func() bool, cycle func()) {
	defer close(s.done)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.stop:
			return
		case <-ticker.C:
			if focused != nil && focused() {
				continue
			}
			cycle()
		}
	}
}

// Stats polls the stats endpoint. Failures are logged and the tick is
// otherwise dropped; the next tick retries naturally.
func Stats(client *api.Client, logger *zap.Logger, interval time.Duration, focused func() bool, deliver func(*api.StatsSnapshot)) *Subscription {
	if logger == nil {
		logger = zap.NewNop()
	}
	return New(interval, focused, func() {
		stats, err := client.Stats(context.Background())
		if err != nil {
			logger.Warn("stats poll failed", zap.Error(err))
			return
		}
		deliver(stats)
	})
}

// RecentItems polls the recent-items endpoint, delivering at most MaxItems
// per cycle.
func RecentItems(client *api.Client, logger *zap.Logger, interval time.Duration, focused func() bool, deliver func([]api.Item)) *Subscription {
	if logger == nil {
		logger = zap.NewNop()
	}
	return New(interval, focused, func() {
		items, err := client.RecentItems(context.Background())
		if err != nil {
			logger.Warn("recent items poll failed", zap.Error(err))
			return
		}
		if len(items) > MaxItems {
			items = items[:MaxItems]
		}
		deliver(items)
	})
}
