package main

import (
	"fmt"
	"log"
	"time"

	"github.com/m3rciful/cotabot/bot"
	"github.com/m3rciful/cotabot/core/bootstrap"
	corecmd "github.com/m3rciful/cotabot/core/cmd"
	coreconfig "github.com/m3rciful/cotabot/core/config"
	"github.com/m3rciful/cotabot/exchange"
	"github.com/m3rciful/cotabot/session"
)

func main() {
	err := corecmd.Run(corecmd.Options{
		DefaultConfigPath: "config.yaml",
		LoadConfig: func(path string) (corecmd.ConfigCarrier, error) {
			cfg, err := coreconfig.Load(path)
			if err != nil {
				return nil, err
			}
			return &bot.Config{Core: cfg}, nil
		},
		Bootstrap: func(carrier corecmd.ConfigCarrier) (corecmd.TelegramApp, error) {
			cfg := carrier.CoreConfig()
			if err := bootstrap.Run(bootstrap.Options{Config: cfg}); err != nil {
				return nil, err
			}

			quotes := exchange.NewClient(exchange.Options{
				BaseURL: cfg.Quotes.BaseURL,
				Timeout: time.Duration(cfg.Quotes.TimeoutSeconds) * time.Second,
			})
			store := session.NewMemoryStore()

			return bot.NewApp(cfg, store, quotes), nil
		},
	})
	if err != nil {
		log.Fatal(fmt.Errorf("cotabot: %w", err))
	}
}
