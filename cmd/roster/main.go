package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	memrepo "github.com/ogurasousui/workforce/internal/adapters/repository/memory"
	"github.com/ogurasousui/workforce/internal/core/employee"
	"github.com/ogurasousui/workforce/internal/platform/config"
	"github.com/ogurasousui/workforce/internal/platform/logging"
	"github.com/ogurasousui/workforce/internal/seed"
	"github.com/sirupsen/logrus"
)

func main() {
	var (
		configPath = flag.String("config", "", "path to config file (defaults to CONFIG_PATH env or assets/local.yaml)")
		rosterPath = flag.String("file", "", "roster YAML file (defaults to the embedded sample roster)")
	)
	flag.Parse()

	action := "validate"
	if flag.NArg() > 0 {
		action = flag.Arg(0)
	}

	cfg, err := config.Load(effectiveConfigPath(*configPath))
	if err != nil {
		logrus.Fatalf("failed to load config: %v", err)
	}

	logger, closer, err := logging.New(cfg.Log)
	if err != nil {
		logrus.Fatalf("failed to initialize logger: %v", err)
	}
	defer closer.Close()

	roster, err := loadRoster(*rosterPath)
	if err != nil {
		logger.Fatalf("failed to read roster: %v", err)
	}

	if err := run(context.Background(), action, roster, logger); err != nil {
		logger.Fatalf("roster %s failed: %v", action, err)
	}
}

func effectiveConfigPath(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "assets/local.yaml"
}

func loadRoster(path string) ([]employee.CreateEmployeeInput, error) {
	if path == "" {
		return seed.Roster()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return seed.Parse(data)
}

func run(ctx context.Context, action string, roster []employee.CreateEmployeeInput, logger logrus.FieldLogger) error {
	svc := employee.NewService(memrepo.NewEmployeeRepository(), nil, nil, nil, nil, logger)
	loaded, err := svc.LoadSampleData(ctx, roster)
	if err != nil {
		return err
	}

	switch action {
	case "validate":
		logger.WithField("employees", len(loaded)).Info("roster is valid")
		return nil
	case "stats":
		stats, err := svc.DepartmentStats(ctx)
		if err != nil {
			return err
		}
		for _, s := range stats {
			fmt.Printf("%s\t%d\n", s.Department, s.Count)
		}
		summary, err := svc.PerformanceSummary(ctx)
		if err != nil {
			return err
		}
		fmt.Printf("average=%.2f high=%d medium=%d low=%d total=%d\n", summary.Average, summary.High, summary.Medium, summary.Low, summary.Total)
		return nil
	default:
		return fmt.Errorf("unsupported action %q", action)
	}
}
