// Package snapshot caches complete pipeline runs keyed by their exact
// inputs. A cache entry is an immutable point-in-time snapshot; correctness
// never depends on the cache being present.
package snapshot

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"StockBoard/internal/feed"
	"StockBoard/internal/pipeline"
)

// Key derives a deterministic cache key from the run inputs. Any change to
// the ticker set, its order, the date range or the sampling period yields a
// different key.
func Key(tickers []string, start, end time.Time, interval feed.Interval) string {
	h := sha256.New()
	h.Write([]byte(strings.Join(tickers, ",")))
	h.Write([]byte("|" + start.Format("2006-01-02")))
	h.Write([]byte("|" + end.Format("2006-01-02")))
	h.Write([]byte("|" + string(interval)))
	return hex.EncodeToString(h.Sum(nil))
}

// Store persists pipeline run snapshots.
type Store interface {
	// Load returns the cached result for key; ok is false on a miss.
	Load(key string) (result *pipeline.Result, ok bool, err error)
	// Save stores the result under key, replacing any previous entry.
	Save(key string, result *pipeline.Result) error
	Close() error
}

// NoopStore is used when no cache is configured: every Load misses and
// every Save is discarded.
type NoopStore struct{}

func NewNoopStore() *NoopStore { return &NoopStore{} }

func (n *NoopStore) Load(_ string) (*pipeline.Result, bool, error) { return nil, false, nil }
func (n *NoopStore) Save(_ string, _ *pipeline.Result) error       { return nil }
func (n *NoopStore) Close() error                                  { return nil }
