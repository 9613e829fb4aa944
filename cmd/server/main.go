package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ogurasousui/workforce/internal/adapters/grpc/handler"
	memrepo "github.com/ogurasousui/workforce/internal/adapters/repository/memory"
	"github.com/ogurasousui/workforce/internal/core/change"
	"github.com/ogurasousui/workforce/internal/core/employee"
	"github.com/ogurasousui/workforce/internal/core/notification"
	"github.com/ogurasousui/workforce/internal/core/project"
	"github.com/ogurasousui/workforce/internal/core/staffing"
	"github.com/ogurasousui/workforce/internal/platform/config"
	memtx "github.com/ogurasousui/workforce/internal/platform/db/memory"
	"github.com/ogurasousui/workforce/internal/platform/logging"
	"github.com/ogurasousui/workforce/internal/platform/server"
	"github.com/ogurasousui/workforce/internal/seed"
	"github.com/sirupsen/logrus"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "assets/local.yaml"
	}

	cfg, err := config.Load(cfgPath)
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		logrus.Fatalf("failed to initialize logger: %v", err)
	}
	defer closer.Close()

	feed := change.NewFeed()
	feed.Subscribe(func(e change.Event) {
		logger.WithFields(logrus.Fields{
			"entity":    e.Entity,
			"operation": e.Operation,
			"id":        e.ID,
			"parent_id": e.ParentID,
		}).Debug("state changed")
	})

	registry := notification.NewRegistry(nil, feed, logger)
	tx := memtx.NewTransactionManager()

	employeeSvc := employee.NewService(memrepo.NewEmployeeRepository(), registry, nil, tx, feed, logger)
	projectSvc := project.NewService(memrepo.NewProjectRepository(), nil, tx, feed, logger)
	staffingSvc := staffing.NewService(employeeSvc, projectSvc, tx, logger)

	if cfg.Seed.SampleData {
		roster, err := seed.Roster()
		if err != nil {
			logger.Fatalf("failed to parse sample roster: %v", err)
		}
		if _, err := employeeSvc.LoadSampleData(ctx, roster); err != nil {
			logger.Fatalf("failed to load sample data: %v", err)
		}
	}
	if cfg.Seed.SampleNotifications {
		registry.LoadSampleNotifications(ctx)
	}

	grpcServer := server.New(cfg.Server.ListenAddr, server.Handlers{
		Employee:     handler.NewEmployeeGrpcHandler(employeeSvc),
		Project:      handler.NewProjectGrpcHandler(projectSvc),
		Staffing:     handler.NewStaffingGrpcHandler(staffingSvc),
		Notification: handler.NewNotificationGrpcHandler(registry),
	}, logger)

	if err := grpcServer.Run(ctx); err != nil {
		logger.Fatalf("server stopped with error: %v", err)
	}
}
