package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"time"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/rpc"
	"github.com/ogurasousui/workforce/internal/platform/logging"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/status"
)

// Handlers はサーバーに登録する各サービスの実装です。
type Handlers struct {
	Employee     rpc.EmployeeServiceServer
	Project      rpc.ProjectServiceServer
	Staffing     rpc.StaffingServiceServer
	Notification rpc.NotificationServiceServer
}

// Server は gRPC サーバーのライフサイクルを管理します。
type Server struct {
	listenAddr string
	grpcServer *grpc.Server
	health     *health.Server
	logger     logrus.FieldLogger
}

// New は指定されたアドレスで待ち受ける gRPC サーバーを構築します。
// nil のハンドラーは登録されません。
func New(listenAddr string, handlers Handlers, logger logrus.FieldLogger, opts ...grpc.ServerOption) *Server {
	if logger == nil {
		logger = logging.Discard()
	}

	opts = append([]grpc.ServerOption{grpc.ChainUnaryInterceptor(loggingInterceptor(logger))}, opts...)
	srv := grpc.NewServer(opts...)
	healthSrv := health.NewServer()
	healthpb.RegisterHealthServer(srv, healthSrv)

	var services []string
	if handlers.Employee != nil {
		rpc.RegisterEmployeeServiceServer(srv, handlers.Employee)
		services = append(services, rpc.EmployeeServiceName)
	}
	if handlers.Project != nil {
		rpc.RegisterProjectServiceServer(srv, handlers.Project)
		services = append(services, rpc.ProjectServiceName)
	}
	if handlers.Staffing != nil {
		rpc.RegisterStaffingServiceServer(srv, handlers.Staffing)
		services = append(services, rpc.StaffingServiceName)
	}
	if handlers.Notification != nil {
		rpc.RegisterNotificationServiceServer(srv, handlers.Notification)
		services = append(services, rpc.NotificationServiceName)
	}
	for _, name := range services {
		healthSrv.SetServingStatus(name, healthpb.HealthCheckResponse_SERVING)
	}

	return &Server{
		listenAddr: listenAddr,
		grpcServer: srv,
		health:     healthSrv,
		logger:     logger,
	}
}

// Run はサーバーを起動し、コンテキストがキャンセルされると GracefulStop します。
func (s *Server) Run(ctx context.Context) error {
	lis, err := net.Listen("tcp", s.listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.listenAddr, err)
	}
	return s.Serve(ctx, lis)
}

// Serve は与えられたリスナーで待ち受けます。
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			s.GracefulStop()
		case <-done:
		}
	}()

	s.logger.WithField("addr", lis.Addr().String()).Info("gRPC server listening")
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("serve gRPC: %w", err)
	}

	return nil
}

// GracefulStop はヘルスチェックを NOT_SERVING にしてからサーバーを安全に停止します。
func (s *Server) GracefulStop() {
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}

func loggingInterceptor(logger logrus.FieldLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		start := time.Now()
		resp, err := handler(ctx, req)

		entry := logger.WithFields(logrus.Fields{
			"method":   info.FullMethod,
			"code":     status.Code(err).String(),
			"duration": time.Since(start),
		})
		if err != nil {
			entry.WithError(err).Warn("rpc failed")
		} else {
			entry.Debug("rpc handled")
		}
		return resp, err
	}
}
