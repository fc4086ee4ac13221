package main

//
// Turn engine: skip-verified sequential turn claims.
//
// The contract never walks the roster to find whose turn it is. Instead
// the caller states how many full skip periods have elapsed since the last
// accepted action, the contract recomputes that number from block time,
// and only an exact match may advance the cursor. The identity check then
// binds the claim to the one player whose slot the cursor lands on.
//

func cursorKey() string { return "g:cursor" }

const cursorCodecVersion uint8 = 1

// turnCursor is the engine's progress marker: the next order position to
// act and the block time of the last accepted claim.
type turnCursor struct {
	Position   uint16
	LastAction uint64 // unix seconds
}

func saveCursor(c *turnCursor, chain SDKInterface) {
	out := make([]byte, 0, 11)
	out = append(out, cursorCodecVersion)
	out = appendU16BE(out, c.Position)
	out = appendU64BE(out, c.LastAction)
	chain.StateSetObject(cursorKey(), string(out))
}

func loadCursor(chain SDKInterface) *turnCursor {
	ptr := chain.StateGetObject(cursorKey())
	require(ptr != nil && *ptr != "", "cursor missing", chain)
	r := &rd{b: []byte(*ptr), chain: chain}
	require(r.u8() == cursorCodecVersion, "unsupported cursor version", chain)
	c := &turnCursor{}
	c.Position = r.u16()
	c.LastAction = r.u64()
	r.mustEnd()
	return c
}

// initCursor arms the engine at position 0 with the finalization time as
// the first reference point. Called exactly once by the initializer.
func initCursor(chain SDKInterface, now uint64) {
	saveCursor(&turnCursor{Position: 0, LastAction: now}, chain)
}

// claimTurnImpl handles "skipCount".
//
// Order of checks matters: the skip-count claim is verified against block
// time before identity is consulted, so callers get a separable signal for
// "your timing math is wrong" versus "this is not your slot".
func claimTurnImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	skipStr := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(skipStr != "", "skip count is mandatory", chain)

	require(loadPhase(chain) == Finalized, errNotStarted, chain)

	c := loadCursor(chain)
	now := blockNow(chain)
	require(now >= c.LastAction, "invalid block time", chain)

	claimed := parseU64Fast(skipStr)
	actual := (now - c.LastAction) / skipPeriod
	require(claimed == actual, errSkipCountMismatch, chain)

	target := uint64(c.Position) + claimed
	require(target < maxPlayers, errNoSuchPlayer, chain)

	number := orderAt(chain, target)
	require(number != 0, errNoSuchPlayer, chain)

	claimant := sender(chain)
	expected := ticketOwner(chain, number)
	require(expected != "" && claimant == expected, errNotYourTurn, chain)

	c.Position = uint16(target + 1)
	c.LastAction = now
	saveCursor(c, chain)

	EmitTurnClaimed(number, claimant, claimed, chain)
	if orderAt(chain, uint64(c.Position)) == 0 {
		// roster exhausted; the player who just acted closed the gauntlet
		EmitGauntletFinished(number, claimant, chain)
	}

	ret := UInt64ToString(number)
	return &ret
}

// ---------- Queries ----------

// gameStateImpl returns "phase|position|lastAction|tickets|remaining".
func gameStateImpl(payload *string, chain SDKInterface) *string {
	phase := loadPhase(chain)

	var pos, last, remaining uint64
	if phase == Finalized {
		c := loadCursor(chain)
		pos = uint64(c.Position)
		last = c.LastAction
		if total := uint64(len(loadOrder(chain))); pos < total {
			remaining = total - pos
		}
	}

	out := make([]byte, 0, 48)
	out = appendU64(out, uint64(phase))
	out = append(out, '|')
	out = appendU64(out, pos)
	out = append(out, '|')
	out = appendU64(out, last)
	out = append(out, '|')
	out = appendU64(out, getTicketCount(chain))
	out = append(out, '|')
	out = appendU64(out, remaining)

	s := string(out)
	return &s
}
