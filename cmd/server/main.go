package main

import (
	"context"
	"errors"
	"flag"
	"new-haven-server/internal/abilities"
	"new-haven-server/internal/agent"
	"new-haven-server/internal/domain"
	"new-haven-server/internal/engine"
	"new-haven-server/internal/infrastructure/storage"
	"new-haven-server/internal/network"
	"new-haven-server/internal/server"
	"new-haven-server/internal/version"
	"new-haven-server/pkg/logger"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"
)

const profileName = "default"

func init() {
	logger.Init()
}

func main() {
	// 1. Парсинг конфигурации
	var (
		configPath string
		seed       int64
		level      int
		withBot    bool
	)
	flag.StringVar(&configPath, "config", "", "Path to YAML engine config")
	// По умолчанию 0 (значит сгенерировать случайно)
	flag.Int64Var(&seed, "seed", 0, "Master seed (0 for random)")
	flag.IntVar(&level, "level", 0, "Start level 1..100 (0 keeps config value)")
	flag.BoolVar(&withBot, "bot", false, "Run the autopilot player")
	flag.Parse()

	logger.Log.Info("Starting New Haven...")
	logger.Log.Info(version.String())

	cfg := engine.NewConfig()
	if configPath != "" {
		var err error
		if cfg, err = engine.LoadConfigFile(configPath); err != nil {
			logger.Log.WithError(err).Fatal("Failed to load config")
		}
	}
	if seed != 0 {
		cfg.Seed = seed
		logger.Log.Infof("Using explicit Master Seed: %d", seed)
	} else {
		logger.Log.Infof("Using Master Seed: %d", cfg.Seed)
	}
	if level != 0 {
		cfg.StartLevel = level
	}
	if err := cfg.Validate(); err != nil {
		logger.Log.WithError(err).Fatal("Invalid config")
	}

	port := os.Getenv("NH_PORT")
	if port == "" {
		port = "8080"
	}
	appName := os.Getenv("NH_PROFILE_APP")
	if appName == "" {
		appName = "new_haven"
	}

	// 2. Ядро
	catalog, err := abilities.DefaultCatalog()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to load ability catalog")
	}
	m := engine.NewManager(cfg, catalog)

	// 3. Профиль игрока. Без каталога данных играем без сохранений.
	var backend storage.Backend
	if gm, err := storage.OpenBackend(appName); err != nil {
		logger.Log.WithError(err).Warn("Profile storage unavailable, progress will not be saved")
	} else {
		backend = gm
	}
	profiles := storage.NewProfileStore(backend)

	if rec, err := profiles.Load(profileName); err == nil {
		m.SetPlayerStats(rec.Stats)
	} else if !errors.Is(err, storage.ErrProfileNotFound) {
		logger.Log.WithError(err).Warn("Failed to load profile, starting fresh")
	}

	save := func() {
		rec := storage.ProfileRecord{
			Seed:    cfg.Seed,
			LevelID: m.State().LevelID,
			Stats:   m.PlayerStats(),
		}
		if err := profiles.Save(profileName, rec); err != nil {
			logger.Log.WithError(err).Error("Failed to save profile")
		}
	}
	// Слушатель шины работает на горутине цикла, чтение профиля безопасно
	m.Events().Subscribe(domain.EventLevelUp, func(domain.Event) { save() })
	m.Events().Subscribe(domain.EventLevelComplete, func(domain.Event) { save() })

	// 4. Транспорт
	hub := network.NewBroadcaster()
	pub := network.NewPublisher(hub, network.DefaultSnapshotRate)
	pub.Attach(m)
	srv := server.New(m, hub, pub, port)

	// Graceful Shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return m.Run(gctx) })
	g.Go(func() error { return srv.Run(gctx) })
	if withBot {
		bot := agent.NewBot(m, hub)
		g.Go(func() error { return bot.Run(gctx) })
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Log.WithError(err).Error("Server stopped with error")
	}

	logger.Log.Info("Shutting down...")
	// Цикл уже остановлен: профиль читаем без гонок
	save()
	logger.Log.Info("Done.")
}
