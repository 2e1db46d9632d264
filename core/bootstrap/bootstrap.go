package bootstrap

import (
	"fmt"

	coreconfig "github.com/m3rciful/cotabot/core/config"
	"github.com/m3rciful/cotabot/core/logger"
)

// Options control the generic bootstrap pipeline shared between bots.
type Options struct {
	Config *coreconfig.Config

	LoggerInit func(*coreconfig.Config) error
}

// Run initializes the structured logger and validates the provided configuration.
func Run(opts Options) error {
	if opts.Config == nil {
		return fmt.Errorf("bootstrap: nil config provided")
	}

	loggerInit := opts.LoggerInit
	if loggerInit == nil {
		loggerInit = logger.InitLogger
	}
	if err := loggerInit(opts.Config); err != nil {
		return fmt.Errorf("bootstrap: logger init failed: %w", err)
	}

	return nil
}
