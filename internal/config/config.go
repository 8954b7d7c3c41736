package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Backend struct {
	// BaseURL of the volunteer-management backend. Empty falls back to the
	// hardcoded team deployment.
	BaseURL string `toml:"base_url"`
}

type Auth struct {
	SqliteFile string `toml:"sqlite_file"`
	Token      string `toml:"token"`
	Expiration string `toml:"expiration"`
	Rules      []Rule `toml:"rules"`
}

// Rule is one access rule: regex path, allowed methods and roles. Evaluated
// in file order, first path+method match wins.
type Rule struct {
	Name   string   `toml:"name"`
	Path   string   `toml:"path"`
	Method []string `toml:"method"`
	Allow  []string `toml:"allow"`
}

type Server struct {
	Host         string  `toml:"host"`
	Port         int     `toml:"port"`
	Debug        bool    `toml:"debug_mode"`
	TgBotEnabled bool    `toml:"tg_bot_enabled"`
	Backend      Backend `toml:"backend"`
	Auth         Auth    `toml:"auth"`
}

type TgBot struct {
	TelegramAPIToken string `toml:"telegram_apitoken"`
	SqliteFile       string `toml:"sqlite_file"`
	PollInterval     string `toml:"poll_interval"`
}

type Config struct {
	Server Server
	TgBot  TgBot
}

func New(serverPath, botPath string) (Config, error) {
	var serverCfg Server
	_, err := toml.DecodeFile(serverPath, &serverCfg)
	if err != nil {
		return Config{}, err
	}
	if url := os.Getenv("BACKEND_BASE_URL"); url != "" {
		serverCfg.Backend.BaseURL = url
	}

	var tgBotCfg TgBot
	_, err = toml.DecodeFile(botPath, &tgBotCfg)
	if err != nil {
		return Config{}, err
	}
	if token := os.Getenv("TELEGRAM_APITOKEN"); token != "" {
		tgBotCfg.TelegramAPIToken = token
	}

	return Config{
		Server: serverCfg,
		TgBot:  tgBotCfg,
	}, nil
}
