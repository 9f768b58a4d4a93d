package snake

import (
	"sync"
	"time"
)

// Timer schedules a repeating task
type Timer interface {
	Schedule(interval time.Duration, fn func()) Handle
}

// Handle cancels a scheduled task. Cancel is idempotent and never blocks,
// so a task may cancel itself.
type Handle interface {
	Cancel()
}

// TickerTimer runs each task on its own time.Ticker goroutine
type TickerTimer struct{}

// Schedule calls fn every interval until the handle is cancelled.
func (TickerTimer) Schedule(interval time.Duration, fn func()) Handle {
	h := &tickerHandle{done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-h.done:
				return
			case <-ticker.C:
				// cancellation wins over a tick that fired at the same time
				select {
				case <-h.done:
					return
				default:
				}
				fn()
			}
		}
	}()
	return h
}

type tickerHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *tickerHandle) Cancel() {
	h.once.Do(func() { close(h.done) })
}
