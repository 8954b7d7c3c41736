package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	_ "github.com/mattn/go-sqlite3"

	authservice "volunteerhub/auth/service"
	authsqlite "volunteerhub/auth/storage/sqlite"
	botsqlite "volunteerhub/bot/botstorage/sqlite"
	"volunteerhub/bot/tgbot"
	"volunteerhub/internal/backend"
	"volunteerhub/internal/cache/mem"
	"volunteerhub/internal/config"
	"volunteerhub/internal/dashboard"
	"volunteerhub/internal/logger"
	"volunteerhub/internal/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func run() error {
	serverConfigPath := flag.String("server-config", "configs/server.toml", "path to server config file")
	botConfigPath := flag.String("bot-config", "configs/bot.toml", "path to bot config file")
	flag.Parse()

	// .env is optional, it only carries local secret overrides
	_ = godotenv.Load()

	cfg, err := config.New(*serverConfigPath, *botConfigPath)
	if err != nil {
		return err
	}

	log := logger.New(cfg.Server.Debug)

	client := backend.New(cfg.Server.Backend.BaseURL, log)

	sessionStorage, err := authsqlite.New(log, cfg.Server)
	if err != nil {
		return err
	}
	auth := authservice.New(cfg.Server.Auth, client, sessionStorage, log)

	dashboards := dashboard.New(client, mem.New(), log)

	server, err := web.New(cfg.Server, auth, dashboards, client, log)
	if err != nil {
		return err
	}

	if cfg.Server.TgBotEnabled {
		botStorage, err := botsqlite.New(log, cfg.TgBot)
		if err != nil {
			return err
		}
		bot, err := tgbot.New(client, botStorage, cfg, log)
		if err != nil {
			return err
		}
		go bot.Run()
		defer bot.Stop()
	}

	return server.Serve()
}
