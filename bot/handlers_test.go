package bot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coreconfig "github.com/m3rciful/cotabot/core/config"
	"github.com/m3rciful/cotabot/exchange"
	"github.com/m3rciful/cotabot/session"

	tele "gopkg.in/telebot.v4"
)

type stubQuoter struct {
	rate  float64
	err   error
	calls int
}

func (s *stubQuoter) Bid(_ context.Context, _, _ exchange.Code) (float64, error) {
	s.calls++
	return s.rate, s.err
}

func newTestApp(q Quoter) *App {
	return NewApp(&coreconfig.Config{}, session.NewMemoryStore(), q)
}

func TestParseAmount(t *testing.T) {
	cases := map[string]float64{
		"10":     10,
		"10.5":   10.5,
		"10,5":   10.5,
		" 7 ":    7,
		"0.01":   0.01,
		"1234,0": 1234,
	}
	for input, want := range cases {
		got, err := parseAmount(input)
		require.NoError(t, err, "input %q", input)
		assert.InDelta(t, want, got, 1e-9, "input %q", input)
	}

	for _, input := range []string{"", "abc", "10,0,0", "1.2.3", "dez"} {
		_, err := parseAmount(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestConversionReplyFormatting(t *testing.T) {
	sel := session.Selection{Source: exchange.BRL, Destination: exchange.USD}
	assert.Equal(t, "10.00 BRL equivale a 50.00 USD.", conversionReply(sel, 10, 50))

	sel = session.Selection{Source: exchange.EUR, Destination: exchange.JPY}
	assert.Equal(t, "1.50 EUR equivale a 263.49 JPY.", conversionReply(sel, 1.5, 263.489))
}

func TestConvertSuccess(t *testing.T) {
	quoter := &stubQuoter{rate: 5}
	app := newTestApp(quoter)
	sel := session.Selection{Source: exchange.BRL, Destination: exchange.USD}

	reply, done := app.convert(context.Background(), sel, "10")
	assert.True(t, done)
	assert.Equal(t, "10.00 BRL equivale a 50.00 USD.", reply)
	assert.Equal(t, 1, quoter.calls)
}

func TestConvertInvalidNumber(t *testing.T) {
	quoter := &stubQuoter{rate: 5}
	app := newTestApp(quoter)
	sel := session.Selection{Source: exchange.BRL, Destination: exchange.USD}

	reply, done := app.convert(context.Background(), sel, "abc")
	assert.False(t, done)
	assert.Equal(t, "Erro: Insira um número válido.", reply)
	// The rate is still fetched before parsing; it just gets discarded.
	assert.Equal(t, 1, quoter.calls)
}

func TestConvertParseFailureWinsOverQuoteFailure(t *testing.T) {
	quoter := &stubQuoter{err: exchange.ErrQuoteUnavailable}
	app := newTestApp(quoter)
	sel := session.Selection{Source: exchange.BRL, Destination: exchange.USD}

	reply, done := app.convert(context.Background(), sel, "abc")
	assert.False(t, done)
	assert.Equal(t, errInvalidNumber, reply)
}

func TestConvertQuoteUnavailable(t *testing.T) {
	for _, quoteErr := range []error{exchange.ErrQuoteUnavailable, exchange.ErrPairNotFound} {
		app := newTestApp(&stubQuoter{err: quoteErr})
		sel := session.Selection{Source: exchange.USD, Destination: exchange.USD}

		reply, done := app.convert(context.Background(), sel, "10")
		assert.False(t, done)
		assert.Equal(t, errQuoteFailed, reply, "never a numeric reply from a missing rate")
	}
}

func TestCurrencyMenus(t *testing.T) {
	src := sourceMenu()
	require.Len(t, src.InlineKeyboard, len(exchange.All()))
	assert.Equal(t, "Real (BRL)", src.InlineKeyboard[0][0].Text)
	assert.Equal(t, "origem", src.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "BRL", src.InlineKeyboard[0][0].Data)

	dst := destinationMenu()
	require.Len(t, dst.InlineKeyboard, len(exchange.All()))
	assert.Equal(t, "destino", dst.InlineKeyboard[4][0].Unique)
	assert.Equal(t, "JPY", dst.InlineKeyboard[4][0].Data)

	res := resultMenu()
	require.Len(t, res.InlineKeyboard, 2)
	assert.Equal(t, "Nova conversão", res.InlineKeyboard[0][0].Text)
	assert.Equal(t, "NOVA_CONVERSAO", res.InlineKeyboard[0][0].Unique)
	assert.Equal(t, "Encerrar", res.InlineKeyboard[1][0].Text)
	assert.Equal(t, "ENCERRAR", res.InlineKeyboard[1][0].Unique)
}

func TestTelegramRunOptionsWiring(t *testing.T) {
	app := newTestApp(&stubQuoter{rate: 1})
	opts, err := app.TelegramRunOptions()
	require.NoError(t, err)

	require.NotNil(t, opts.Registry)
	for _, key := range []string{cbSource, cbDestination, cbNewConversion, cbEnd} {
		_, ok := opts.Registry.GetCallback(key)
		assert.True(t, ok, "callback %s must be registered", key)
	}

	_, cmd, ok := opts.Registry.LookupCommand("/start")
	require.True(t, ok)
	assert.NotNil(t, cmd.Handler)
	assert.False(t, cmd.AdminOnly)

	_, status, ok := opts.Registry.LookupCommand("/status")
	require.True(t, ok)
	assert.True(t, status.AdminOnly)
	assert.True(t, status.Hidden)

	assert.NotNil(t, opts.Registry.CallbackNotFound(), "unknown-callback fallback must be wired")

	// /start command menu, callback route, text and document routes.
	assert.GreaterOrEqual(t, len(opts.Routes), 4)
	assert.NotEmpty(t, opts.Middlewares)
}

// textMessageContext is a minimal text-update context for driving the FSM
// router without a live bot.
type textMessageContext struct {
	tele.Context

	user *tele.User
	text string

	kv   map[string]interface{}
	sent []string
}

func (c *textMessageContext) Sender() *tele.User  { return c.user }
func (c *textMessageContext) Chat() *tele.Chat    { return &tele.Chat{ID: c.user.ID} }
func (c *textMessageContext) Update() tele.Update { return tele.Update{} }
func (c *textMessageContext) Text() string        { return c.text }

func (c *textMessageContext) Get(key string) interface{} { return c.kv[key] }

func (c *textMessageContext) Set(key string, v interface{}) {
	if c.kv == nil {
		c.kv = map[string]interface{}{}
	}
	c.kv[key] = v
}

func (c *textMessageContext) Send(what interface{}, _ ...interface{}) error {
	if s, ok := what.(string); ok {
		c.sent = append(c.sent, s)
	}
	return nil
}

func TestTextBeforePairCompleteAsksForCurrencies(t *testing.T) {
	q := &stubQuoter{rate: 5}
	store := session.NewMemoryStore()
	app := NewApp(&coreconfig.Config{}, store, q)

	const userID int64 = 42

	// Source menu is showing and no selection exists yet.
	app.states.SetState(userID, StateAwaitingSource)
	c := &textMessageContext{user: &tele.User{ID: userID}, text: "10"}
	require.NoError(t, app.states.ManagerHandler(c))
	require.Equal(t, []string{errCurrenciesFirst}, c.sent)
	assert.False(t, app.states.InProgress(userID))

	// Source chosen, destination still pending.
	store.SetSource(userID, exchange.BRL)
	app.states.SetState(userID, StateAwaitingDestination)
	c = &textMessageContext{user: &tele.User{ID: userID}, text: "10"}
	require.NoError(t, app.states.ManagerHandler(c))
	require.Equal(t, []string{errCurrenciesFirst}, c.sent)
	assert.False(t, app.states.InProgress(userID))

	assert.Zero(t, q.calls, "no quote may be fetched before the pair is complete")
}
