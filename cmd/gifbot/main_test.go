package main

import (
	"bytes"
	"path/filepath"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flw-cn/go-gifbot/internal/config"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestInitThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gifbot.yml")
	t.Setenv("CHAT_BOT_TOKEN", "xoxb-test")

	out, err := execute(t, "--config", path, "init")
	require.NoError(t, err)
	assert.Contains(t, out, "Wrote "+path)

	_, err = execute(t, "--config", path, "init")
	assert.Error(t, err)

	out, err = execute(t, "--config", path, "check")
	require.NoError(t, err)
	assert.Contains(t, out, "erlich: 25 responses")
	assert.Contains(t, out, "config ok")
}

func TestCheckMissingToken(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CHAT_BOT_TOKEN", "")
	t.Setenv("CHAT_BOT_TOKEN_FILE", filepath.Join(dir, "token.txt"))

	_, err := execute(t, "--config", filepath.Join(dir, "gifbot.yml"), "check")
	assert.Error(t, err)
}

func TestNewLoggerLevel(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.LogLevel = "warn"
	assert.Equal(t, log.WarnLevel, newLogger(cfg).GetLevel())

	cfg.Debug = true
	assert.Equal(t, log.DebugLevel, newLogger(cfg).GetLevel())

	cfg.Debug = false
	cfg.LogLevel = "nonsense"
	assert.Equal(t, log.InfoLevel, newLogger(cfg).GetLevel())
}
