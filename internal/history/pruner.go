// SPDX-License-Identifier: MIT
package history

import (
	"fmt"
	"log"
	"time"

	"gorm.io/gorm"
)

// Pruner periodically removes stale lookups
type Pruner struct {
	DB        *gorm.DB
	Retention time.Duration // lookups idle longer than this are removed
	Interval  time.Duration
	ticker    *time.Ticker
	done      chan bool
	stopChan  chan bool
	now       func() time.Time
}

// NewPruner creates a pruner that runs daily
func NewPruner(db *gorm.DB, retention time.Duration) *Pruner {
	return &Pruner{
		DB:        db,
		Retention: retention,
		Interval:  24 * time.Hour,
		done:      make(chan bool, 1),
		stopChan:  make(chan bool, 1),
		now:       time.Now,
	}
}

// Start begins pruning in a goroutine.
// Returns a done channel that receives once the pruner stops.
func (p *Pruner) Start() chan bool {
	go func() {
		p.ticker = time.NewTicker(p.Interval)
		defer p.ticker.Stop()

		if _, err := p.RunOnce(); err != nil {
			log.Printf("initial history prune failed: %v\n", err)
		}

		for {
			select {
			case <-p.stopChan:
				p.done <- true
				return
			case <-p.ticker.C:
				if _, err := p.RunOnce(); err != nil {
					log.Printf("scheduled history prune failed: %v\n", err)
				}
			}
		}
	}()

	return p.done
}

// Stop stops the pruner
func (p *Pruner) Stop() {
	select {
	case p.stopChan <- true:
	default:
	}
}

// RunOnce prunes lookups older than the retention window
func (p *Pruner) RunOnce() (int64, error) {
	if p.Retention <= 0 {
		return 0, nil
	}

	removed, err := Prune(p.DB, p.now().Add(-p.Retention))
	if err != nil {
		return 0, fmt.Errorf("prune failed: %w", err)
	}
	if removed > 0 {
		log.Printf("pruned %d stale color lookups", removed)
	}
	return removed, nil
}

// SetInterval sets the prune interval
func (p *Pruner) SetInterval(interval time.Duration) {
	p.Interval = interval
}
