package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"StockBoard/internal/calculator"
	"StockBoard/internal/config"
	"StockBoard/internal/feed"
	"StockBoard/internal/pipeline"
	"StockBoard/internal/refresh"
	"StockBoard/internal/render"
	"StockBoard/internal/snapshot"
	"StockBoard/internal/window"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] StockBoard starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init fetcher
	var fetcher feed.Fetcher
	if cfg.DataSource.BaseURL != "" {
		fetcher = feed.NewRestFetcher(cfg.DataSource.BaseURL, cfg.DataSource.APIKey, cfg.Proxy)
	} else {
		fetcher = feed.NewYahooFetcher(cfg.Proxy)
	}
	log.Printf("[INFO] data source: %s", fetcher.Name())

	// Init snapshot store
	var store snapshot.Store
	if cfg.Database.SQLitePath != "" {
		ss, err := snapshot.NewSQLiteStore(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite store failed, using noop: %v", err)
			store = snapshot.NewNoopStore()
		} else {
			store = ss
			defer ss.Close()
		}
	} else {
		store = snapshot.NewNoopStore()
	}

	// Resolve the date range. The wall clock is read here, once; everything
	// below works with explicit dates.
	start, err := cfg.StartDate()
	if err != nil {
		log.Fatalf("[FATAL] start date: %v", err)
	}
	end, ok, err := cfg.EndDate()
	if err != nil {
		log.Fatalf("[FATAL] end date: %v", err)
	}
	if !ok {
		now := time.Now().UTC()
		end = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	}
	interval, err := feed.ParseInterval(cfg.Basket.Interval)
	if err != nil {
		log.Fatalf("[FATAL] interval: %v", err)
	}
	period, err := window.Parse(cfg.Display.Period)
	if err != nil {
		log.Fatalf("[FATAL] period: %v", err)
	}

	p := &pipeline.Pipeline{
		Fetcher:  fetcher,
		Tickers:  cfg.Basket.Tickers,
		Start:    start,
		End:      end,
		Interval: interval,
		Retries:  cfg.Fetch.Retries,
	}

	ref := refresh.NewRefresher(p, store)
	ref.OnUpdate = func(result *pipeline.Result) {
		display(result, cfg.Display.GridColumns, period, end)
	}

	// First result: cached snapshot when available, fresh run otherwise.
	if os.Getenv("FORCE_REFRESH") == "true" || !ref.Restore() {
		log.Printf("[INFO] fetching %d tickers from %s to %s",
			len(p.Tickers), start.Format("2006-01-02"), end.Format("2006-01-02"))
		if err := ref.RunNow(); err != nil {
			log.Fatalf("[FATAL] pipeline: %v", err)
		}
	} else {
		log.Println("[INFO] restored snapshot from cache")
		display(ref.Current(), cfg.Display.GridColumns, period, end)
	}

	// One-shot mode when no refresh schedule is configured.
	if cfg.Schedule.RefreshCron == "" {
		log.Println("[INFO] no refresh schedule, exiting")
		return
	}

	if err := ref.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	ref.Start()
	defer ref.Stop()

	log.Println("[INFO] StockBoard is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	log.Println("[INFO] StockBoard stopped")
}

// display writes the watchlist grid plus a per-ticker indicator block for
// the configured period.
func display(result *pipeline.Result, columns int, period window.Period, anchor time.Time) {
	grid, err := render.FormatWatchlist(result.Table, columns)
	if err != nil {
		log.Printf("[ERROR] format watchlist: %v", err)
		return
	}
	fmt.Print(grid)

	for _, row := range result.Table {
		windowed, err := result.Window(row.Ticker, period, anchor)
		if err != nil {
			log.Printf("[ERROR] window %s: %v", row.Ticker, err)
			continue
		}
		agg, err := calculator.Aggregate(windowed)
		if err != nil {
			log.Printf("[WARN] aggregates %s: %v", row.Ticker, err)
			continue
		}
		fmt.Println(render.FormatSymbolDetail(row, period, windowed, agg))
	}
}
