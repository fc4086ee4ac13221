package main

// Event represents the common structure for all emitted events.
// Each event has a type and a set of key/value attributes.
type Event struct {
	Type       string            `json:"type"`
	Attributes map[string]string `json:"attributes"`
}

// emitEvent constructs an Event object with the given type and attributes,
// and logs it as JSON for off-chain consumers (the oracle watches
// randomnessRequested, indexers watch the rest).
func emitEvent(eventType string, attributes map[string]string, chain SDKInterface) {
	event := Event{
		Type:       eventType,
		Attributes: attributes,
	}
	chain.Log(ToJSON(event, eventType+" event data", chain))
}

// EmitTicketBought emits an event when an identity registers a ticket.
func EmitTicketBought(number uint64, buyer string, chain SDKInterface) {
	emitEvent("ticketBought", map[string]string{
		"number": UInt64ToString(number),
		"buyer":  buyer,
	}, chain)
}

// EmitRandomnessRequested signals the oracle that a draw is outstanding.
func EmitRandomnessRequested(handle string, chain SDKInterface) {
	emitEvent("randomnessRequested", map[string]string{
		"handle": handle,
	}, chain)
}

// EmitOrderFinalized emits an event when the turn order is locked in.
func EmitOrderFinalized(players uint64, at uint64, chain SDKInterface) {
	emitEvent("orderFinalized", map[string]string{
		"players": UInt64ToString(players),
		"at":      UInt64ToString(at),
	}, chain)
}

// EmitTurnClaimed emits an event when a turn claim is accepted.
func EmitTurnClaimed(number uint64, claimant string, skipped uint64, chain SDKInterface) {
	emitEvent("turnClaimed", map[string]string{
		"ticket":  UInt64ToString(number),
		"by":      claimant,
		"skipped": UInt64ToString(skipped),
	}, chain)
}

// EmitGauntletFinished emits an event when the roster is exhausted.
func EmitGauntletFinished(number uint64, lastActor string, chain SDKInterface) {
	emitEvent("gauntletFinished", map[string]string{
		"lastTicket": UInt64ToString(number),
		"lastActor":  lastActor,
	}, chain)
}

// EmitDepositorAllowed emits an event when the owner approves a depositor.
func EmitDepositorAllowed(identity string, chain SDKInterface) {
	emitEvent("depositorAllowed", map[string]string{
		"identity": identity,
	}, chain)
}

// EmitPrizeDeposited emits an event when a prize is staged.
func EmitPrizeDeposited(index uint64, depositor, ref string, chain SDKInterface) {
	emitEvent("prizeDeposited", map[string]string{
		"index":     UInt64ToString(index),
		"depositor": depositor,
		"ref":       ref,
	}, chain)
}
