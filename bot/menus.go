package bot

import (
	"github.com/m3rciful/cotabot/core/telegram/keyboard"
	"github.com/m3rciful/cotabot/exchange"

	tele "gopkg.in/telebot.v4"
)

// Callback keys routed through the registry.
const (
	cbSource        = "origem"
	cbDestination   = "destino"
	cbNewConversion = "NOVA_CONVERSAO"
	cbEnd           = "ENCERRAR"
)

func currencyMenu(key string) *tele.ReplyMarkup {
	btns := make([]keyboard.InlineBtn, 0, len(exchange.All()))
	for _, code := range exchange.All() {
		btns = append(btns, keyboard.InlineBtn{
			Text:   code.Label(),
			Unique: key,
			Data:   string(code),
		})
	}
	return keyboard.InlineButtons(btns)
}

func sourceMenu() *tele.ReplyMarkup {
	return currencyMenu(cbSource)
}

func destinationMenu() *tele.ReplyMarkup {
	return currencyMenu(cbDestination)
}

func resultMenu() *tele.ReplyMarkup {
	return keyboard.InlineButtons([]keyboard.InlineBtn{
		{Text: btnNewConversion, Unique: cbNewConversion},
		{Text: btnEnd, Unique: cbEnd},
	})
}
