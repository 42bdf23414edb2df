package grpc

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"drift-indexer-sol/internal/config"
	"drift-indexer-sol/internal/consts"
	"drift-indexer-sol/internal/pkg/logger"

	pb "github.com/rpcpool/yellowstone-grpc/examples/golang/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/metadata"
)

// GapFunc 流中跳过的 slot 区间回调，闭区间 [from, to]
type GapFunc func(from, to uint64)

type GrpcStreamManager struct {
	mu                    sync.Mutex                    // 保护连接状态
	conn                  *grpc.ClientConn              // gRPC 连接对象
	client                pb.GeyserClient               // gRPC 客户端
	stream                pb.Geyser_SubscribeClient     // 当前订阅流
	stopped               bool                          // 是否已经停止
	reconnectAttempts     int                           // 已重连次数
	reconnectInterval     time.Duration                 // 重连基础间隔
	xToken                string                        // 认证用的 x-token
	streamPingIntervalSec int                           // Stream 心跳间隔（秒）
	blockChan             chan *pb.SubscribeUpdateBlock // 区块数据通道
	connCtx               context.Context               // 当前连接的 context
	connCancel            context.CancelFunc            // 当前连接的 cancel 函数
	blockRecvTimeoutSec   int                           // block 接收超时（秒）
	sendTimeoutSec        int                           // 发送超时（秒）
	tracker               *slotTracker                  // 跨重连追踪 slot 连续性
}

func NewGrpcStreamManager(c config.GrpcConfig, blockChan chan *pb.SubscribeUpdateBlock, onGap GapFunc) (*GrpcStreamManager, error) {
	if c.Endpoint == "" {
		return nil, errors.New("grpc endpoint is empty")
	}

	dialCtx, cancel := context.WithTimeout(context.Background(), time.Duration(c.ConnectTimeoutSec)*time.Second)
	defer cancel()

	conn, err := grpc.DialContext(
		dialCtx,
		c.Endpoint,
		grpc.WithTransportCredentials(credentials.NewTLS(&tls.Config{InsecureSkipVerify: true})),
		grpc.WithInitialWindowSize(c.InitialWindowSize),
		grpc.WithInitialConnWindowSize(c.InitialConnWindowSize),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallSendMsgSize(c.MaxCallSendMsgSize),
			grpc.MaxCallRecvMsgSize(c.MaxCallRecvMsgSize),
		),
		grpc.WithBlock(),
		grpc.WithKeepaliveParams(keepalive.ClientParameters{
			Time:                time.Duration(c.KeepalivePingIntervalSec) * time.Second,
			Timeout:             time.Duration(c.KeepalivePingTimeoutSec) * time.Second,
			PermitWithoutStream: true,
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect: %w", err)
	}

	return &GrpcStreamManager{
		conn:                  conn,
		client:                pb.NewGeyserClient(conn),
		reconnectInterval:     time.Duration(c.ReconnectIntervalSec) * time.Second,
		xToken:                c.XToken,
		streamPingIntervalSec: c.StreamPingIntervalSec,
		blockChan:             blockChan,
		blockRecvTimeoutSec:   c.BlockRecvTimeoutSec,
		sendTimeoutSec:        c.SendTimeoutSec,
		tracker:               newSlotTracker(onGap),
	}, nil
}

func (m *GrpcStreamManager) Start() {
	m.mustConnect()
}

func (m *GrpcStreamManager) Stop() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.stopped = true
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			logger.Warnf("[GrpcStream:Stop] 关闭连接失败: %v", err)
		}
	}
}

// 循环直到连接成功或已停止
func (m *GrpcStreamManager) mustConnect() {
	for {
		m.mu.Lock()
		if m.stopped {
			m.mu.Unlock()
			return
		}
		m.mu.Unlock()

		if m.reconnectAttempts > 0 {
			if m.reconnectAttempts > 3 {
				time.Sleep(m.reconnectInterval * 2)
			} else {
				time.Sleep(m.reconnectInterval)
			}
		}
		logger.Infof("[GrpcStream:Connect] 第 %d 次连接", m.reconnectAttempts+1)
		m.reconnectAttempts++
		err := m.connect()
		if err == nil {
			return
		}
		logger.Warnf("[GrpcStream:Connect] 连接失败: %v, 稍后重试", err)
	}
}

// 只订阅涉及 Drift 程序的区块
func buildSubscribeRequest() *pb.SubscribeRequest {
	blocks := make(map[string]*pb.SubscribeRequestFilterBlocks)
	blocks["drift"] = &pb.SubscribeRequestFilterBlocks{
		AccountInclude:      consts.GrpcAccountInclude,
		IncludeTransactions: boolPtr(true),
		IncludeAccounts:     boolPtr(false),
		IncludeEntries:      boolPtr(false),
	}
	commitment := pb.CommitmentLevel_CONFIRMED
	return &pb.SubscribeRequest{
		Blocks:     blocks,
		Commitment: &commitment,
	}
}

// connect 只尝试一次
func (m *GrpcStreamManager) connect() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stopped {
		return errors.New("manager is stopped")
	}

	// 先取消旧连接，让旧 goroutine 退出
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	m.connCtx, m.connCancel = context.WithCancel(context.Background())

	metaCtx := metadata.NewOutgoingContext(
		m.connCtx,
		metadata.New(map[string]string{"x-token": m.xToken}),
	)
	stream, err := m.client.Subscribe(metaCtx)
	if err != nil {
		return fmt.Errorf("subscribe: %w", err)
	}

	req := buildSubscribeRequest()
	if err := sendWithTimeout(m.connCtx, stream.Send, req, time.Duration(m.sendTimeoutSec)*time.Second); err != nil {
		return fmt.Errorf("send subscribe request: %w", err)
	}

	m.stream = stream
	m.reconnectAttempts = 0
	logger.Infof("[GrpcStream:Connect] 订阅成功, lastSlot=%d", m.tracker.Last())

	go m.pingLoop(m.connCtx, stream)
	go m.blockRecvLoop(m.connCtx, stream)

	return nil
}

func (m *GrpcStreamManager) blockRecvLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	last := time.Now()
	blockTimeout := time.Duration(m.blockRecvTimeoutSec) * time.Second
	for {
		if ctx.Err() != nil {
			return
		}

		update, err := stream.Recv()
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			if errors.Is(err, io.EOF) {
				logger.Warnf("[GrpcStream:Recv] 服务端关闭流, 准备重连")
				m.reconnect()
				return
			}
			logger.Warnf("[GrpcStream:Recv] 接收失败: %v", err)
			if m.reconnectIfBlockTimeout(last, blockTimeout) {
				return
			}
			time.Sleep(100 * time.Millisecond)
			continue
		}

		if u, ok := update.GetUpdateOneof().(*pb.SubscribeUpdate_Block); ok {
			last = time.Now()
			block := u.Block
			if block.BlockTime != nil {
				logger.Debugf("[GrpcStream:Recv] slot=%d, 延迟=%dms", block.Slot, last.UnixMilli()-block.BlockTime.Timestamp*1000)
			}
			m.tracker.Observe(block.Slot)

			select {
			case m.blockChan <- block:
			case <-ctx.Done():
				return
			}
		}

		if m.reconnectIfBlockTimeout(last, blockTimeout) {
			return
		}
	}
}

// 带超时的 Send
func sendWithTimeout[T any](ctx context.Context, sendFunc func(T) error, req T, timeout time.Duration) error {
	timeoutCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- sendFunc(req)
	}()

	select {
	case <-timeoutCtx.Done():
		return timeoutCtx.Err()
	case err := <-done:
		return err
	}
}

// 心跳
func (m *GrpcStreamManager) pingLoop(ctx context.Context, stream pb.Geyser_SubscribeClient) {
	ticker := time.NewTicker(time.Duration(m.streamPingIntervalSec) * time.Second)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingReq := &pb.SubscribeRequest{
				Ping: &pb.SubscribeRequestPing{Id: 1},
			}
			// 只记录，不触发重连
			if err := sendWithTimeout(ctx, stream.Send, pingReq, time.Duration(m.sendTimeoutSec)*time.Second); err != nil {
				logger.Warnf("[GrpcStream:Ping] 发送失败: %v", err)
			}
		}
	}
}

func (m *GrpcStreamManager) reconnectIfBlockTimeout(last time.Time, timeout time.Duration) bool {
	if time.Since(last) > timeout {
		logger.Warnf("[GrpcStream:Recv] %v 未收到 block, 触发重连", timeout)
		m.reconnect()
		return true
	}
	return false
}

func (m *GrpcStreamManager) reconnect() {
	m.mu.Lock()
	if m.stopped {
		m.mu.Unlock()
		return
	}
	if m.connCancel != nil {
		m.connCancel()
		m.connCancel = nil
	}
	m.mu.Unlock()

	go m.mustConnect()
}

func boolPtr(b bool) *bool {
	return &b
}
