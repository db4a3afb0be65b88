package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config keeps runtime settings for the tracker.
type Config struct {
	DatabasePath   string
	EndOfDay       Clock
	SoundPath      string
	Quiet          bool
	TelegramToken  string
	TelegramChatID int64
}

// Load reads configuration from environment variables with sane defaults.
func Load() (Config, error) {
	cfg := Config{
		DatabasePath:  strings.TrimSpace(os.Getenv("WORKTRAY_DB")),
		SoundPath:     strings.TrimSpace(os.Getenv("WORKTRAY_SOUND")),
		Quiet:         parseBool(strings.TrimSpace(os.Getenv("WORKTRAY_QUIET"))),
		TelegramToken: strings.TrimSpace(os.Getenv("TELEGRAM_TOKEN")),
	}

	if cfg.DatabasePath == "" {
		cfg.DatabasePath = "users.db"
	}

	if cfg.SoundPath == "" {
		cfg.SoundPath = "/System/Library/Sounds/Ping.aiff"
	}

	endOfDay := strings.TrimSpace(os.Getenv("WORKTRAY_END_OF_DAY"))
	if endOfDay == "" {
		endOfDay = "17:30"
	}
	clock, err := ParseClock(endOfDay)
	if err != nil {
		return cfg, fmt.Errorf("WORKTRAY_END_OF_DAY: %w", err)
	}
	cfg.EndOfDay = clock

	if raw := strings.TrimSpace(os.Getenv("TELEGRAM_CHAT_ID")); raw != "" {
		chatID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("TELEGRAM_CHAT_ID must be numeric: %w", err)
		}
		cfg.TelegramChatID = chatID
	}

	return cfg, nil
}

func parseBool(raw string) bool {
	switch strings.ToLower(raw) {
	case "true", "1", "yes":
		return true
	}
	return false
}
