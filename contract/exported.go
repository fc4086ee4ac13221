package main

// Exported entry points. Each wraps an *Impl function so tests can drive
// the same logic through a fake chain.

func main() {}

// ---------- Admin ----------

//go:wasmexport a_setup
func Setup(payload *string) *string {
	return setupImpl(payload, RealSDK{})
}

// ---------- Ticket ledger ----------

//go:wasmexport t_buy
func BuyTicket(payload *string) *string {
	return buyTicketImpl(payload, RealSDK{})
}

//go:wasmexport t_owner
func TicketOwner(payload *string) *string {
	return ticketOwnerImpl(payload, RealSDK{})
}

//go:wasmexport t_of
func TicketOf(payload *string) *string {
	return ticketOfImpl(payload, RealSDK{})
}

//go:wasmexport t_count
func TicketCount(payload *string) *string {
	return ticketCountImpl(payload, RealSDK{})
}

// ---------- Order initialization ----------

//go:wasmexport o_request
func RequestDraw(payload *string) *string {
	return requestDrawImpl(payload, RealSDK{})
}

//go:wasmexport o_complete
func CompleteDraw(payload *string) *string {
	return completeDrawImpl(payload, RealSDK{})
}

//go:wasmexport o_phase
func DrawPhase(payload *string) *string {
	return drawPhaseImpl(payload, RealSDK{})
}

//go:wasmexport o_order
func TurnOrder(payload *string) *string {
	return turnOrderImpl(payload, RealSDK{})
}

// ---------- Turn engine ----------

//go:wasmexport g_claim
func ClaimTurn(payload *string) *string {
	return claimTurnImpl(payload, RealSDK{})
}

//go:wasmexport g_state
func GameState(payload *string) *string {
	return gameStateImpl(payload, RealSDK{})
}

// ---------- Prize custody ----------

//go:wasmexport d_allow
func AllowDepositor(payload *string) *string {
	return allowDepositorImpl(payload, RealSDK{})
}

//go:wasmexport d_deposit
func DepositPrize(payload *string) *string {
	return depositPrizeImpl(payload, RealSDK{})
}

//go:wasmexport d_is_allowed
func IsDepositor(payload *string) *string {
	return isDepositorImpl(payload, RealSDK{})
}

//go:wasmexport d_prizes
func Prizes(payload *string) *string {
	return prizesImpl(payload, RealSDK{})
}
