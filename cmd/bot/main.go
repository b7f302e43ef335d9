package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/weeklyping/reminder-bot/internal/calendar"
	"github.com/weeklyping/reminder-bot/internal/config"
	"github.com/weeklyping/reminder-bot/internal/database"
	"github.com/weeklyping/reminder-bot/internal/domain/contract"
	"github.com/weeklyping/reminder-bot/internal/notify"
	"github.com/weeklyping/reminder-bot/internal/scheduler"
	"github.com/weeklyping/reminder-bot/internal/tenancy"
	"github.com/weeklyping/reminder-bot/migrator/sqlite"
)

func main() {
	logger := logrus.New()

	if err := godotenv.Load(); err != nil {
		logger.Warn(".env file not found")
	}

	cfg := config.Load()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		logger.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	logger.Info("Running migrations...")
	if err := sqlite.Migrate(db.DB()); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}

	cal, err := calendar.Load()
	if err != nil {
		logger.Fatalf("Failed to load workday calendar: %v", err)
	}

	var source contract.SubscriberSource
	switch cfg.Mode {
	case config.ModeHosted:
		source = tenancy.NewHosted(database.NewSubscriberStore(db))
	default:
		source, err = tenancy.NewLocal(logger, cfg.ReminderConfigPath, cfg.SubscriberName)
		if err != nil {
			logger.Fatalf("Failed to load local reminder config: %v", err)
		}
	}

	sched := scheduler.New(logger, scheduler.Options{
		Source:          source,
		Activity:        database.NewActivityStore(db),
		Calendar:        cal,
		Dispatchers:     notify.NewRegistry(logger, cfg.DispatchTimeout),
		EntryURL:        cfg.EntryURL,
		DispatchTimeout: cfg.DispatchTimeout,
	})

	sched.Start()
	defer sched.Stop()

	logger.WithField("mode", cfg.Mode).Info("reminder bot running")

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP)

	for sig := range sigs {
		// SIGHUP re-reads the local config without restarting the process.
		if sig == syscall.SIGHUP {
			if err := sched.Reload(); err != nil {
				logger.Errorf("Failed to reload scheduler: %v", err)
			}
			continue
		}
		logger.WithField("signal", sig.String()).Info("shutting down")
		return
	}
}
