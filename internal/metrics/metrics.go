package metrics

import (
	"context"
	"errors"
	"net/http"
	"time"

	"drift-indexer-sol/internal/pkg/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "drift_indexer"

// 失败原因标签
const (
	ReasonUnknownInstruction = "unknown_instruction"
	ReasonInvalidEncoding    = "invalid_encoding"
	ReasonBadData            = "bad_data"
	ReasonSkipped            = "skipped"
	ReasonExtractFailed      = "extract_failed"
	ReasonResolveFailed      = "resolve_failed"
	ReasonAdaptFailed        = "adapt_failed"
)

// 漏块检查结果标签
const (
	GapEmpty    = "empty"
	GapRefilled = "refilled"
	GapFailed   = "failed"
)

// 查找表获取结果标签
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultError = "error"
)

var (
	DecodedInstructions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decoded_instructions_total",
		Help:      "Drift v2 instructions decoded, by instruction name.",
	}, []string{"name"})

	DecodeFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "decode_failures_total",
		Help:      "Drift v2 instructions that could not be decoded, by reason.",
	}, []string{"reason"})

	DroppedTransactions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dropped_transactions_total",
		Help:      "Transactions skipped or failed during extraction, by reason.",
	}, []string{"reason"})

	LookupFetches = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "lookup_table_fetches_total",
		Help:      "Address lookup table fetches, by layer and result.",
	}, []string{"layer", "result"})

	ProcessedBlocks = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "processed_blocks_total",
		Help:      "Blocks processed, by source.",
	}, []string{"source"})

	GapSlots = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "gap_slots_total",
		Help:      "Slots skipped by the block stream, by check result.",
	}, []string{"result"})

	LastProcessedSlot = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "last_processed_slot",
		Help:      "Slot of the most recently processed block, by source.",
	}, []string{"source"})
)

// Server 暴露 /metrics，实现 go-zero service.Service
type Server struct {
	srv *http.Server
}

func NewServer(addr string) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return &Server{srv: &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}}
}

func (s *Server) Start() {
	logger.Infof("[Metrics] 监听地址: %s", s.srv.Addr)
	if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Errorf("[Metrics] 服务异常退出: %v", err)
	}
}

func (s *Server) Stop() {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.srv.Shutdown(ctx); err != nil {
		logger.Warnf("[Metrics] 关闭失败: %v", err)
	}
}
