package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"spacecake-server/internal/agent"
	"spacecake-server/internal/engine"
	"spacecake-server/internal/server"
	"spacecake-server/internal/version"
	"spacecake-server/pkg/logger"

	"golang.org/x/sync/errgroup"
)

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var seed int64
	var tickRate int
	var port string
	var envFile string
	var withBot bool
	// -seed 0 значит взять сид из SC_SEED или сгенерировать случайно
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for SC_SEED or random)")
	flag.IntVar(&tickRate, "tick-rate", 0, "Ticks per second (0 for config default)")
	flag.StringVar(&port, "port", "", "HTTP port (default SC_PORT or 8080)")
	flag.StringVar(&envFile, "env", ".env", "Path to .env file")
	flag.BoolVar(&withBot, "bot", false, "Attach an autopilot session")
	flag.Parse()

	logger.Log.Info("Starting Spacecake...")
	logger.Log.Info(version.String())

	cfg, err := engine.LoadConfig(envFile)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load config")
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit master seed: %d", seed)
	} else {
		logger.Log.Infof("Using master seed: %d", cfg.Seed)
	}
	if tickRate > 0 {
		cfg.TickRate = tickRate
	}

	if port == "" {
		port = os.Getenv("SC_PORT")
	}
	if port == "" {
		port = "8080"
	}

	// 2. Инициализация ядра с конфигом
	gameService, err := engine.NewService(cfg)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to start game service")
	}

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Запуск цикла и сервера
	srv := server.New(gameService, port)
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return gameService.Run(ctx) })
	g.Go(func() error { return srv.Run(ctx) })
	if withBot {
		bot := agent.NewBot("autopilot", gameService)
		g.Go(func() error {
			bot.Run(ctx)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		logger.Log.WithError(err).Error("Server stopped with error")
		os.Exit(1)
	}
	logger.Log.Info("Done.")
}
