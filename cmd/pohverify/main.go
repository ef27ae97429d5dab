// Command pohverify runs a small verification service: it generates a
// PoH tick-entry slice, verifies it through the dispatch/verifier
// pipeline, serves Prometheus metrics, and exits non-zero on failure.
package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/certen/poh-verifier/internal/metrics"
	"github.com/certen/poh-verifier/internal/workerpool"
	"github.com/certen/poh-verifier/pkg/config"
	"github.com/certen/poh-verifier/pkg/dispatch"
	"github.com/certen/poh-verifier/pkg/entry"
	"github.com/certen/poh-verifier/pkg/verifier"
	"github.com/certen/poh-verifier/pkg/verify/native"
)

var (
	numTicks      = flag.Uint64("ticks", 1000, "number of tick entries to generate and verify")
	hashesPerTick = flag.Uint64("hashes-per-tick", 0, "override POH_HASHES_PER_TICK")
	dispatchFile  = flag.String("dispatch-thresholds", "", "optional YAML file overriding dispatch backend thresholds")
)

func main() {
	flag.Parse()

	logger := log.New(os.Stdout, "[pohverify] ", log.LstdFlags)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatalf("loading configuration: %v", err)
	}
	if *hashesPerTick != 0 {
		cfg.HashesPerTick = *hashesPerTick
	}
	if err := cfg.Validate(); err != nil {
		logger.Fatalf("invalid configuration: %v", err)
	}

	dispatchCfg := dispatch.Config{MinGPUSliceLen: cfg.MinGPUSliceLen}
	if *dispatchFile != "" {
		thresholds, err := config.LoadDispatchThresholds(*dispatchFile)
		if err != nil {
			logger.Fatalf("loading dispatch thresholds: %v", err)
		}
		dispatchCfg = thresholds.ToDispatchConfig()
	}

	if cfg.WorkerPoolSize > 0 {
		workerpool.Init(cfg.WorkerPoolSize)
	}

	var simdCap native.Capability
	if cfg.SIMDLibPath != "" {
		simdCap = native.Load(native.ResolveLibPath(cfg.SIMDLibPath))
	}
	logger.Printf("native SIMD capability loaded: %v", simdCap != nil && simdCap.Loaded())

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: cfg.MetricsAddr, Handler: mux}

	go func() {
		logger.Printf("metrics listening on %s", cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatalf("metrics server: %v", err)
		}
	}()

	start := entry.Hash{}
	entries := entry.CreateTicks(*numTicks, cfg.HashesPerTick, start)
	logger.Printf("generated %d tick entries, hashes_per_tick=%d", len(entries), cfg.HashesPerTick)

	ok := verifier.Verify(context.Background(), entries, start, verifier.Options{
		Secp256k1Enabled: cfg.Secp256k1Enabled,
		NativeCap:        simdCap,
		DispatchConfig:   dispatchCfg,
	})

	var tickHashCount uint64
	tickOK := entry.VerifyTickHashCount(entries, &tickHashCount, cfg.HashesPerTick)

	logger.Printf("hash-chain verify: %v, tick-hash-count verify: %v, tick_count=%d", ok, tickOK, entry.TickCount(entries))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	if !ok || !tickOK {
		_ = srv.Shutdown(shutdownCtx)
		os.Exit(1)
	}

	logger.Println("verification succeeded; serving metrics, press Ctrl+C to exit")
	<-quit
	_ = srv.Shutdown(shutdownCtx)
}
