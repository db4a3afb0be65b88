package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORKTRAY_DB", "")
	t.Setenv("WORKTRAY_END_OF_DAY", "")
	t.Setenv("WORKTRAY_SOUND", "")
	t.Setenv("WORKTRAY_QUIET", "")
	t.Setenv("TELEGRAM_TOKEN", "")
	t.Setenv("TELEGRAM_CHAT_ID", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "users.db", cfg.DatabasePath)
	assert.Equal(t, Clock{Hour: 17, Minute: 30}, cfg.EndOfDay)
	assert.Equal(t, "/System/Library/Sounds/Ping.aiff", cfg.SoundPath)
	assert.False(t, cfg.Quiet)
	assert.Empty(t, cfg.TelegramToken)
	assert.Zero(t, cfg.TelegramChatID)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("WORKTRAY_DB", "/tmp/tracker/users.db")
	t.Setenv("WORKTRAY_END_OF_DAY", "18:00")
	t.Setenv("WORKTRAY_SOUND", "/System/Library/Sounds/Glass.aiff")
	t.Setenv("WORKTRAY_QUIET", "true")
	t.Setenv("TELEGRAM_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/tracker/users.db", cfg.DatabasePath)
	assert.Equal(t, Clock{Hour: 18, Minute: 0}, cfg.EndOfDay)
	assert.Equal(t, "/System/Library/Sounds/Glass.aiff", cfg.SoundPath)
	assert.True(t, cfg.Quiet)
	assert.Equal(t, "123:abc", cfg.TelegramToken)
	assert.Equal(t, int64(42), cfg.TelegramChatID)
}

func TestLoadRejectsBadEndOfDay(t *testing.T) {
	t.Setenv("WORKTRAY_END_OF_DAY", "25:00")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadRejectsBadChatID(t *testing.T) {
	t.Setenv("WORKTRAY_END_OF_DAY", "")
	t.Setenv("TELEGRAM_CHAT_ID", "not-a-number")

	_, err := Load()
	require.Error(t, err)
}
