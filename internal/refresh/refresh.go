// Package refresh reruns the pipeline on a cron schedule and holds the
// latest successful result for concurrent readers.
package refresh

import (
	"fmt"
	"log"
	"sync"

	"github.com/robfig/cron/v3"

	"StockBoard/internal/pipeline"
	"StockBoard/internal/snapshot"
)

// Refresher owns the periodically refreshed pipeline result. Readers get a
// complete snapshot or nothing: a failed run never replaces the held result.
type Refresher struct {
	Cron     *cron.Cron
	Pipeline *pipeline.Pipeline
	Store    snapshot.Store
	OnUpdate func(*pipeline.Result)

	mu      sync.RWMutex
	current *pipeline.Result
}

// NewRefresher creates a Refresher around a configured pipeline.
func NewRefresher(p *pipeline.Pipeline, store snapshot.Store) *Refresher {
	return &Refresher{
		Cron:     cron.New(cron.WithSeconds()),
		Pipeline: p,
		Store:    store,
	}
}

func (r *Refresher) key() string {
	p := r.Pipeline
	return snapshot.Key(p.Tickers, p.Start, p.End, p.Interval)
}

// Restore loads a cached snapshot for the pipeline's exact inputs, if one
// exists. Returns true on a cache hit.
func (r *Refresher) Restore() bool {
	result, ok, err := r.Store.Load(r.key())
	if err != nil {
		log.Printf("[WARN] restore snapshot: %v", err)
		return false
	}
	if !ok {
		return false
	}
	r.swap(result)
	return true
}

// RunNow executes the pipeline immediately, caches the result and publishes
// it to readers. On failure the previously held result stays in place.
func (r *Refresher) RunNow() error {
	result, err := r.Pipeline.Run()
	if err != nil {
		return fmt.Errorf("pipeline run: %w", err)
	}
	if err := r.Store.Save(r.key(), result); err != nil {
		log.Printf("[WARN] save snapshot: %v", err)
	}
	r.swap(result)
	return nil
}

// Register schedules periodic refreshes with the given cron expression.
func (r *Refresher) Register(cronExpr string) error {
	_, err := r.Cron.AddFunc(cronExpr, func() {
		log.Println("[INFO] running scheduled refresh")
		if err := r.RunNow(); err != nil {
			log.Printf("[ERROR] scheduled refresh: %v", err)
		}
	})
	if err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (r *Refresher) Start() {
	r.Cron.Start()
	log.Println("[INFO] refresh scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (r *Refresher) Stop() {
	r.Cron.Stop()
	log.Println("[INFO] refresh scheduler stopped")
}

// Current returns the latest successful result, or nil before the first run.
func (r *Refresher) Current() *pipeline.Result {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

func (r *Refresher) swap(result *pipeline.Result) {
	r.mu.Lock()
	r.current = result
	r.mu.Unlock()
	if r.OnUpdate != nil {
		r.OnUpdate(result)
	}
}
