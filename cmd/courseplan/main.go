package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/courseplan/internal/cli"
	"github.com/alexanderramin/courseplan/internal/config"
	"github.com/alexanderramin/courseplan/internal/khan"
	"github.com/alexanderramin/courseplan/internal/logger"
	"github.com/alexanderramin/courseplan/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("")
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.Log.Mode, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer log.Sync()

	// Wire the content API client
	apiCfg := khan.DefaultConfig()
	apiCfg.Endpoint = cfg.API.Endpoint
	apiCfg.TimeoutMs = cfg.API.TimeoutMs
	apiCfg.RequestDelayMs = cfg.API.RequestDelayMs
	client := khan.NewClient(apiCfg, khan.NewLogObserver(log))

	var observers []service.UseCaseObserver
	if cfg.Log.UseCases {
		observers = append(observers, service.NewLogUseCaseObserver(log))
	}

	app := &cli.App{
		Config: cfg,
		Plans:  service.NewPlanService(log, observers...),
		Log:    log,
		Courses: func(dataFile string) service.CourseService {
			return service.NewCourseService(client, service.CourseSettings{
				Path:       cfg.Course.Path,
				Region:     cfg.Course.Region,
				DataFile:   dataFile,
				MaxVideos:  cfg.Course.MaxVideos,
				StaleAfter: time.Duration(cfg.Course.StaleAfterDays) * 24 * time.Hour,
			}, log, observers...)
		},
	}

	// Detect terminals for the wizard, the browser and the spinner.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}
	app.ShowProgress = func() bool {
		return isatty.IsTerminal(os.Stderr.Fd())
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}
