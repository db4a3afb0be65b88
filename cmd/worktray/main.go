package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"worktray/internal/config"
	"worktray/internal/notify"
	"worktray/internal/repository"
	"worktray/internal/service"
	"worktray/internal/tray"
	"worktray/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := repository.NewDB(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("db: %v", err)
	}
	sqlDB, err := db.DB()
	if err == nil {
		defer sqlDB.Close()
	}

	userRepo := repository.NewUserRepository(db)
	lastUserRepo := repository.NewLastUserRepository(db)

	var backends []notify.Notifier
	if cfg.Quiet {
		backends = append(backends, notify.LogNotifier{})
	} else {
		backends = append(backends, &notify.DesktopNotifier{})
	}
	if cfg.TelegramToken != "" && cfg.TelegramChatID != 0 {
		tg, err := notify.NewTelegramNotifier(cfg.TelegramToken, cfg.TelegramChatID)
		if err != nil {
			log.Fatalf("telegram: %v", err)
		}
		backends = append(backends, tg)
	}

	scheduler := service.NewScheduler(time.Local)
	scheduler.Start()
	defer scheduler.Stop()

	tracker := service.NewSessionTracker(
		lastUserRepo,
		userRepo,
		scheduler,
		notify.NewFanout(backends...),
		notify.AfplaySound{Path: cfg.SoundPath},
		cfg.EndOfDay,
	)

	resumed, err := tracker.Resume(ctx)
	if err != nil {
		log.Fatalf("resume session: %v", err)
	}
	if resumed {
		if st, err := tracker.Status(); err == nil {
			log.Printf("[info] resumed session for %s", st.User.Label())
		}
	}

	log.Println("[info] time tracker started")
	tray.New(tracker, ui.Osascript{}).Run(ctx)
	log.Println("Shutdown complete.")
}
