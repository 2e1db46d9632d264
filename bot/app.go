// Package bot wires the conversation controller onto the Telegram core.
package bot

import (
	"context"
	"sync/atomic"
	"time"

	coreconfig "github.com/m3rciful/cotabot/core/config"
	coretelegram "github.com/m3rciful/cotabot/core/telegram"
	"github.com/m3rciful/cotabot/core/telegram/commands"
	"github.com/m3rciful/cotabot/core/telegram/router"
	tgsender "github.com/m3rciful/cotabot/core/telegram/sender"
	"github.com/m3rciful/cotabot/core/telegram/state"
	"github.com/m3rciful/cotabot/core/telegram/ui"
	"github.com/m3rciful/cotabot/exchange"
	"github.com/m3rciful/cotabot/session"
)

// Quoter fetches a bid rate for an ordered currency pair.
type Quoter interface {
	Bid(ctx context.Context, src, dst exchange.Code) (float64, error)
}

// Config carries the application configuration into the generic runner.
type Config struct {
	Core *coreconfig.Config
}

// CoreConfig exposes the embedded core configuration.
func (c *Config) CoreConfig() *coreconfig.Config {
	return c.Core
}

// App is the conversation controller plus its Telegram wiring.
type App struct {
	cfg    *coreconfig.Config
	store  session.Store
	quotes Quoter
	states state.Manager

	startedAt  time.Time
	dispatcher atomic.Pointer[tgsender.Dispatcher]
}

// NewApp builds the controller and registers its FSM handlers.
func NewApp(cfg *coreconfig.Config, store session.Store, quotes Quoter) *App {
	a := &App{
		cfg:       cfg,
		store:     store,
		quotes:    quotes,
		states:    state.NewMemoryManager(),
		startedAt: time.Now(),
	}
	// Free text in any conversation step lands on the amount handler;
	// its session guard rejects input while the currency pair is incomplete.
	state.RegisterHandler(StateAwaitingSource, a.handleAmount)
	state.RegisterHandler(StateAwaitingDestination, a.handleAmount)
	state.RegisterHandler(StateAwaitingAmount, a.handleAmount)
	return a
}

// TelegramRunOptions assembles registry, routes, and middlewares for RunTelegram.
func (a *App) TelegramRunOptions() (coretelegram.RunOptions, error) {
	reg := coretelegram.NewRegistry()

	reg.RegisterCommand("/start", commands.Command{
		Handler:     a.handleStart,
		Description: "Iniciar uma conversão de moedas",
	})
	reg.RegisterCommand("/status", commands.Command{
		Handler:     a.handleStatus,
		Description: "Estado do bot",
		AdminOnly:   true,
		Hidden:      true,
	})

	if err := reg.RegisterCallback(cbSource, a.handleSourceSelected); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbDestination, a.handleDestinationSelected); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbNewConversion, a.handleNewConversion); err != nil {
		return coretelegram.RunOptions{}, err
	}
	if err := reg.RegisterCallback(cbEnd, a.handleEnd); err != nil {
		return coretelegram.RunOptions{}, err
	}
	var fallbacks ui.FallbackProvider = a
	reg.SetCallbackNotFound(fallbacks.UnknownCallback())

	routes := router.CommandRoutes(reg, router.CommandRouteOptions{
		AdminID: a.cfg.Telegram.AdminID,
	})
	routes = append(routes, router.CallbackRoute(reg, router.CallbackOptions{}))
	routes = append(routes, router.TextRoutes(a.states, reg, router.TextOptions{
		UnknownText:     fallbacks.UnknownText(),
		UnknownDocument: fallbacks.UnknownDocument(),
	})...)

	return coretelegram.RunOptions{
		Config:      a.cfg,
		Registry:    reg,
		Middlewares: coretelegram.DefaultMiddlewares(a.cfg, nil),
		Routes:      routes,
		OnStart: func(ctx context.Context, rt coretelegram.Runtime) error {
			a.dispatcher.Store(rt.Dispatcher)
			return nil
		},
	}, nil
}
