package bot

import "github.com/m3rciful/cotabot/core/telegram/state"

// Conversation steps of a currency conversion, driven by the FSM manager.
const (
	StateAwaitingSource      state.State = "awaiting_source"
	StateAwaitingDestination state.State = "awaiting_destination"
	StateAwaitingAmount      state.State = "awaiting_amount"
)
