package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/songzhibin97/cosmoboard/internal/configs"
	"github.com/songzhibin97/cosmoboard/internal/data"
	"github.com/songzhibin97/cosmoboard/internal/data/collector"
	"github.com/songzhibin97/cosmoboard/internal/data/collector/atmos"
	"github.com/songzhibin97/cosmoboard/internal/render"
	"github.com/songzhibin97/cosmoboard/internal/scheduler"
	"github.com/songzhibin97/cosmoboard/internal/server"
	"github.com/songzhibin97/cosmoboard/internal/utils/logger"
)

var flagconf string

func init() {
	flag.StringVar(&flagconf, "conf", "", "config path, eg: -conf config.yaml")
}

func main() {
	flag.Parse()

	// 加载配置
	config, err := configs.Load(flagconf)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	log, closer, err := logger.New(config.Log.Level, config.Log.File)
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger setup failed:", err)
		os.Exit(1)
	}
	defer closer.Close()

	log.Debug("Loaded config", "config", config)

	board := render.NewBoard()

	provider := collector.NewSnapshotCollector([]data.StatsSource{
		atmos.NewAtmosDataSource(config.Endpoints.AtmosStats),
	}, board, log)

	log.Debug("init collector")

	sched := scheduler.NewScheduler(provider, board, config.Interval(), log)
	srv := server.NewServer(board, config.Interval(), config.TokenAddress, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return sched.Run(gCtx)
	})
	g.Go(func() error {
		return srv.Run(gCtx, config.Server.ListenAddr)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("System error", "err", err)
		closer.Close()
		os.Exit(1)
	}
	log.Info("dashboard stopped")
}
