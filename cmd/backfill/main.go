package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"drift-indexer-sol/internal/config"
	"drift-indexer-sol/internal/logic/backfill"
	"drift-indexer-sol/internal/logic/progress"
	"drift-indexer-sol/internal/pkg/logger"
	"drift-indexer-sol/internal/svc"

	"github.com/google/uuid"
	"github.com/zeromicro/go-zero/core/conf"
)

var (
	configFile = flag.String("f", "etc/backfill.yaml", "the config file")
	fromSlot   = flag.Uint64("from", 0, "first slot to backfill, overrides Backfill.FromSlot")
	toSlot     = flag.Uint64("to", 0, "last slot to backfill, overrides Backfill.ToSlot")
)

func main() {
	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)
	if *fromSlot != 0 {
		c.Backfill.FromSlot = *fromSlot
	}
	if *toSlot != 0 {
		c.Backfill.ToSlot = *toSlot
	}

	sc, err := svc.NewServiceContext(c, progress.SourceBackfill)
	if err != nil {
		logger.Errorf("[Backfill:Main] 初始化失败: %v", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if sc.Metrics != nil {
		go sc.Metrics.Start()
		defer sc.Metrics.Stop()
	}

	opts := []backfill.Option{backfill.WithWorkers(c.Backfill.Workers)}
	if sc.Progress != nil {
		opts = append(opts, backfill.WithProgressStore(sc.Progress, c.Backfill.Checkpoint))
	}
	if c.Backfill.ShowProgress {
		opts = append(opts, backfill.WithProgressBar(os.Stderr))
	}
	runner := backfill.NewRunner(sc.Lister, sc.BlockFetcher, sc.Processor, opts...)

	runID := uuid.NewString()
	logger.Infof("[Backfill:Main] 开始回补, run=%s, range=[%d, %d]", runID, c.Backfill.FromSlot, c.Backfill.ToSlot)

	summary, err := runner.Run(ctx, c.Backfill.FromSlot, c.Backfill.ToSlot)
	sc.Close()
	if err != nil {
		logger.Errorf("[Backfill:Main] 回补失败: %v, run=%s", err, runID)
		os.Exit(1)
	}
	logger.Infof("[Backfill:Main] 回补完成, run=%s, summary=%+v", runID, summary)
}
