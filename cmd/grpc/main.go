package main

import (
	"flag"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"
	"time"

	"drift-indexer-sol/internal/config"
	"drift-indexer-sol/internal/logic/grpc"
	"drift-indexer-sol/internal/logic/progress"
	"drift-indexer-sol/internal/svc"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/core/logx"
	zerosvc "github.com/zeromicro/go-zero/core/service"
)

var configFile = flag.String("f", "etc/grpc.yaml", "the config file")

func main() {
	defer func() {
		if r := recover(); r != nil {
			logx.Errorf("panic: %+v\nstack: %s", r, debug.Stack())
		}
	}()

	flag.Parse()

	var c config.Config
	conf.MustLoad(*configFile, &c)

	serviceContext, err := svc.NewServiceContext(c, progress.SourceGrpc)
	if err != nil {
		logx.Must(err)
	}
	defer serviceContext.Close()

	var marker grpc.SlotMarker
	if serviceContext.Progress != nil {
		marker = serviceContext.Progress
	}

	sg := zerosvc.NewServiceGroup()
	if serviceContext.Metrics != nil {
		sg.Add(serviceContext.Metrics)
	}

	blockChan := make(chan *pb.SubscribeUpdateBlock, c.Grpc.BlockChanSize)

	refill := grpc.NewRefill(serviceContext.BlockFetcher, serviceContext.Processor, marker)
	checker := grpc.NewSlotChecker(serviceContext.Lister, refill, time.Duration(c.Grpc.GapCheckDelaySec)*time.Second)
	sg.Add(checker)

	sg.Add(grpc.NewBlockProcessor(serviceContext.Processor, marker, blockChan))

	grpcService, err := grpc.NewGrpcStreamManager(c.Grpc, blockChan, checker.Submit)
	if err != nil {
		logx.Must(err)
	}
	sg.Add(grpcService)

	logx.Infof("Starting drift grpc stream service")

	go sg.Start()

	// 等待退出信号
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	logx.Info("Shutting down services...")
	sg.Stop()
}
