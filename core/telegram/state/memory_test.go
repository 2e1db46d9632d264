package state

import "testing"

func TestStateLifecycle(t *testing.T) {
	mgr := NewMemoryManager()
	const userID int64 = 7

	if mgr.HasState(userID) {
		t.Fatal("fresh manager must report no state")
	}
	if got := mgr.GetState(userID); got != StateIdle {
		t.Fatalf("GetState = %q, want %q", got, StateIdle)
	}

	mgr.SetState(userID, State("awaiting_amount"))
	if !mgr.InProgress(userID) {
		t.Fatal("expected InProgress after SetState")
	}
	if got := mgr.GetState(userID); got != State("awaiting_amount") {
		t.Fatalf("GetState = %q", got)
	}

	mgr.ClearState(userID)
	if mgr.InProgress(userID) {
		t.Fatal("ClearState must reset to idle")
	}

	mgr.SetState(userID, StateIdle)
	if mgr.InProgress(userID) {
		t.Fatal("explicit idle must not count as in progress")
	}
}
