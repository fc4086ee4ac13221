package main

import "vsc-gauntlet/sdk"

// ---------- Types & Constants ----------

// InitPhase tracks the turn-order initialization state machine.
type InitPhase uint8

const (
	// Pending is the phase before the start gate opens: tickets sell,
	// prizes stage, no order exists yet.
	Pending InitPhase = 0
	// AwaitingRandomness means the draw was requested and the oracle
	// callback is outstanding.
	AwaitingRandomness InitPhase = 1
	// Finalized means the turn order is written and play has begun.
	Finalized InitPhase = 2
)

const (
	// ticketPrice is the exact entry fee per ticket, fixed-point 3
	// (1000 = 1.000 units of ticketAsset).
	ticketPrice uint64 = 1000

	// skipPeriod is the inactivity window in seconds after which the
	// player at the cursor forfeits their turn.
	skipPeriod uint64 = 21600 // 6 hours

	// maxPlayers bounds the turn order; ticket numbers fit in one byte.
	maxPlayers uint64 = 255
)

// ticketAsset is the token tickets are paid in.
var ticketAsset = sdk.AssetHive

// ---------- Error messages ----------
//
// Abort messages double as the error taxonomy; clients match on them to
// decide between retrying, waiting, or giving up.
const (
	errNotStarted          = "not started"
	errAlreadyRegistered   = "already registered"
	errInsufficientPayment = "insufficient payment"
	errAlreadyFinalized    = "already finalized"
	errNoRequestPending    = "no request pending"
	errSkipCountMismatch   = "skip count mismatch"
	errNotYourTurn         = "not your turn"
	errNoSuchPlayer        = "no such player"
)
