package main

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"banter-cli/internal/bot"
	"banter-cli/internal/chat"
	"banter-cli/internal/config"
	"banter-cli/internal/history"
	"banter-cli/internal/logger"
	"banter-cli/internal/tui"
)

const version = "v0.3.0"

func main() {
	fs, cli := newFlagSet("banter")
	if err := fs.Parse(os.Args[1:]); err != nil {
		logger.Fatalf("parse args: %v", err)
	}
	if cli.version {
		fmt.Println("banter " + version)
		return
	}

	cfg, err := config.Load(cli.cfgPath)
	if err != nil {
		logger.Fatalf("load config: %v", err)
	}
	// Flags trump config and env.
	if cli.echoDelay != "" {
		cfg.EchoDelay = cli.echoDelay
	}
	if cli.botInterval != "" {
		cfg.BotInterval = cli.botInterval
	}

	logger.Configure()
	if logFile, path, err := logger.SetupFile(cfg.LogPath); err != nil {
		// Stdout belongs to the TUI; without a file, stay quiet.
		logger.Root().SetOutput(os.Stderr)
		logger.Warnf("log file unavailable: %v", err)
	} else {
		defer logFile.Close()
		logger.Named("main").WithField("path", path).Info("banter starting")
	}

	echoDelay, err := cfg.EchoDelayDuration()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}
	botInterval, err := cfg.BotIntervalDuration()
	if err != nil {
		logger.Fatalf("config: %v", err)
	}

	store := chat.NewStore()
	for _, msg := range chat.Seed(time.Now()) {
		store.Append(msg)
	}

	picker := bot.NewPicker(bot.DefaultPool, rand.New(rand.NewSource(time.Now().UnixNano())))
	responder := bot.NewResponder(picker, echoDelay, botInterval)

	histStore, err := historyStore(cfg)
	if err != nil {
		logger.Warnf("input history disabled: %v", err)
	}

	if err := tui.Run(tui.Options{
		Store:       store,
		Responder:   responder,
		History:     histStore,
		UserName:    cfg.UserName,
		BotName:     cfg.BotName,
		BotDisabled: cli.noBot,
	}); err != nil {
		logger.Fatalf("tui: %v", err)
	}
}

func historyStore(cfg config.Config) (*history.Store, error) {
	if cfg.HistoryPath != "" {
		return &history.Store{Path: cfg.HistoryPath}, nil
	}
	return history.NewDefault()
}
