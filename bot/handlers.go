package bot

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m3rciful/cotabot/core/buildinfo"
	"github.com/m3rciful/cotabot/core/logger"
	"github.com/m3rciful/cotabot/core/telegram/callbacks"
	"github.com/m3rciful/cotabot/core/telegram/format"
	tghelpers "github.com/m3rciful/cotabot/core/telegram/helpers"
	"github.com/m3rciful/cotabot/exchange"
	"github.com/m3rciful/cotabot/session"
	"log/slog"

	tele "gopkg.in/telebot.v4"
)

// handleStart opens a conversion by offering the source-currency menu.
// The selection store is only touched once a currency is picked.
func (a *App) handleStart(c tele.Context) error {
	a.states.SetState(c.Sender().ID, StateAwaitingSource)
	return tghelpers.SendText(c, msgSelectSource, &tele.SendOptions{ReplyMarkup: sourceMenu()})
}

// handleSourceSelected records the chosen source and swaps the menu in place
// for the destination choice.
func (a *App) handleSourceSelected(c tele.Context) error {
	userID := c.Sender().ID
	code, ok := exchange.Parse(callbacks.CallbackPayload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: noticeUnknownAction})
	}

	a.store.SetSource(userID, code)
	a.states.SetState(userID, StateAwaitingDestination)

	_ = c.Respond()
	return tghelpers.EditMD(c, fmt.Sprintf(msgSourceChosen, code), destinationMenu())
}

// handleDestinationSelected completes the pair and asks for the amount.
// Picking a destination without a source answers the click with a transient
// notice and drops the conversation back to idle.
func (a *App) handleDestinationSelected(c tele.Context) error {
	userID := c.Sender().ID
	code, ok := exchange.Parse(callbacks.CallbackPayload(c))
	if !ok {
		return c.Respond(&tele.CallbackResponse{Text: noticeUnknownAction})
	}

	if err := a.store.SetDestination(userID, code); err != nil {
		if errors.Is(err, session.ErrNoSourceSelected) {
			a.states.ClearState(userID)
			return c.Respond(&tele.CallbackResponse{Text: errSourceFirst})
		}
		return err
	}

	a.states.SetState(userID, StateAwaitingAmount)

	_ = c.Respond()
	return tghelpers.EditMD(c, fmt.Sprintf(msgDestinationChosen, code))
}

// handleAmount converts the free-text amount using a fresh bid quote.
// It runs via the FSM text routing while the user is in StateAwaitingAmount.
func (a *App) handleAmount(c tele.Context) error {
	userID := c.Sender().ID
	ctx := tghelpers.BuildContext(c)

	sel, ok := a.store.Get(userID)
	if !ok || sel.Destination == "" {
		a.states.ClearState(userID)
		return tghelpers.SendText(c, errCurrenciesFirst)
	}

	reply, done := a.convert(ctx, sel, c.Text())
	if done {
		a.states.ClearState(userID)
	}
	return tghelpers.SendText(c, reply, &tele.SendOptions{ReplyMarkup: resultMenu()})
}

// convert resolves the reply for an amount message against a fresh bid quote.
// done reports whether the conversion completed and the conversation is over.
func (a *App) convert(ctx context.Context, sel session.Selection, text string) (reply string, done bool) {
	pair := string(sel.Source) + string(sel.Destination)

	// The quote is requested before the amount is parsed; a bad amount
	// discards the fetched rate.
	rate, rateErr := a.quotes.Bid(ctx, sel.Source, sel.Destination)

	amount, parseErr := parseAmount(text)
	if parseErr != nil {
		return errInvalidNumber, false
	}
	if rateErr != nil {
		logger.Warn(ctx, "service.convert", "convert.rate_missing",
			slog.String("status", "fail"),
			slog.String("pair", pair),
			slog.String("err", rateErr.Error()),
		)
		return errQuoteFailed, false
	}

	converted := amount * rate
	logger.Info(ctx, "service.convert", "convert.done",
		slog.String("status", "ok"),
		slog.String("pair", pair),
		slog.Float64("rate", rate),
		slog.Float64("amount", amount),
		slog.Float64("converted", converted),
	)
	return conversionReply(sel, amount, converted), true
}

// conversionReply renders the equivalence sentence with two decimal places on
// both values.
func conversionReply(sel session.Selection, amount, converted float64) string {
	return fmt.Sprintf(msgConversionResult,
		format.Money(amount), sel.Source, format.Money(converted), sel.Destination)
}

// handleNewConversion wipes the previous selection and starts over in place.
func (a *App) handleNewConversion(c tele.Context) error {
	userID := c.Sender().ID
	a.store.Clear(userID)
	a.states.SetState(userID, StateAwaitingSource)

	_ = c.Respond()
	return tghelpers.EditMD(c, msgSelectSource, sourceMenu())
}

// handleEnd closes the conversation. The selection is left as-is; a later
// /start overwrites it.
func (a *App) handleEnd(c tele.Context) error {
	a.states.ClearState(c.Sender().ID)

	_ = c.Respond()
	return tghelpers.EditMD(c, msgGoodbye)
}

// handleStatus reports runtime health to the admin.
func (a *App) handleStatus(c tele.Context) error {
	var sendFailures uint64
	if d := a.dispatcher.Load(); d != nil {
		sendFailures = d.ErrorCount()
	}
	text := fmt.Sprintf(
		"cotabot %s (%s)\nuptime: %s\nseleções ativas: %d\nfalhas de envio: %d",
		buildinfo.Version,
		buildinfo.Commit,
		time.Since(a.startedAt).Round(time.Second),
		a.store.Len(),
		sendFailures,
	)
	return tghelpers.SendText(c, text)
}

// UnknownText hints at /start when text arrives outside a conversation.
func (a *App) UnknownText() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, hintUnknownText)
	}
}

// UnknownDocument rejects non-text updates.
func (a *App) UnknownDocument() tele.HandlerFunc {
	return func(c tele.Context) error {
		return tghelpers.SendText(c, hintUnknownDocument)
	}
}

// UnknownCallback answers clicks on stale or foreign buttons.
func (a *App) UnknownCallback() tele.HandlerFunc {
	return func(c tele.Context) error {
		return c.Respond(&tele.CallbackResponse{Text: noticeUnknownAction})
	}
}
