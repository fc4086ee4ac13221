package main

//
// Randomized turn-order initialization.
//
// Three-phase gate: Pending until the start timestamp, AwaitingRandomness
// while the oracle callback is outstanding, Finalized once the shuffled
// order is written. The order is written exactly once and never mutated;
// the turn engine only ever reads it.
//

func phaseKey() string   { return "o:phase" }
func requestKey() string { return "o:req" }
func orderKey() string   { return "o:order" }

const orderCodecVersion uint8 = 1

// loadPhase reads the initializer state; missing state means Pending.
func loadPhase(chain SDKInterface) InitPhase {
	ptr := chain.StateGetObject(phaseKey())
	if ptr == nil || *ptr == "" {
		return Pending
	}
	return InitPhase((*ptr)[0])
}

func setPhase(chain SDKInterface, p InitPhase) {
	chain.StateSetObject(phaseKey(), string([]byte{byte(p)}))
}

// requestDrawImpl opens the draw once the start gate has passed. The tx id
// becomes the opaque request handle the oracle must echo back.
func requestDrawImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	require(in == "", "too many arguments", chain)

	cfg := mustLoadConfig(chain)

	switch loadPhase(chain) {
	case AwaitingRandomness:
		chain.Abort("draw already requested")
	case Finalized:
		chain.Abort(errAlreadyFinalized)
	}

	now := blockNow(chain)
	require(now >= cfg.StartTime, errNotStarted, chain)
	require(getTicketCount(chain) >= 1, "no tickets sold", chain)

	handle := chain.GetEnv().TxId
	require(handle != "", "missing tx id", chain)

	chain.StateSetObject(requestKey(), handle)
	setPhase(chain, AwaitingRandomness)
	EmitRandomnessRequested(handle, chain)

	return &handle
}

// completeDrawImpl is the oracle callback: "handle|seed". Expands the seed
// into the permutation of [1..N], freezes it, and arms the turn cursor.
func completeDrawImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	handle := nextField(&in)
	seed := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(seed != "", "empty seed", chain)

	cfg := mustLoadConfig(chain)

	switch loadPhase(chain) {
	case Pending:
		// mirrors the request gate so no path bypasses it
		chain.Abort(errNotStarted)
	case Finalized:
		chain.Abort(errAlreadyFinalized)
	}

	require(sender(chain) == cfg.Oracle, "only the oracle can deliver randomness", chain)

	outstanding := chain.StateGetObject(requestKey())
	require(outstanding != nil && *outstanding != "" && *outstanding == handle,
		errNoRequestPending, chain)

	count := getTicketCount(chain)
	require(count >= 1 && count <= maxPlayers, "invalid player count", chain)

	order := shuffledTickets(count, seed)
	out := make([]byte, 0, 2+len(order))
	out = append(out, orderCodecVersion, byte(count))
	out = append(out, order...)
	chain.StateSetObject(orderKey(), string(out))

	now := blockNow(chain)
	initCursor(chain, now)
	chain.StateSetObject(requestKey(), "")
	setPhase(chain, Finalized)

	EmitOrderFinalized(count, now, chain)
	return nil
}

// loadOrder returns the finalized ticket order, nil before finalization.
func loadOrder(chain SDKInterface) []byte {
	ptr := chain.StateGetObject(orderKey())
	if ptr == nil || *ptr == "" {
		return nil
	}
	r := &rd{b: []byte(*ptr), chain: chain}
	require(r.u8() == orderCodecVersion, "unsupported order version", chain)
	n := int(r.u8())
	order := r.bytes(n)
	r.mustEnd()
	return order
}

// orderAt resolves a zero-based position to a ticket number. Positions at
// or past the roster end hold the sentinel 0.
func orderAt(chain SDKInterface, pos uint64) uint64 {
	order := loadOrder(chain)
	if pos >= uint64(len(order)) {
		return 0
	}
	return uint64(order[pos])
}

// ---------- Queries ----------

func drawPhaseImpl(payload *string, chain SDKInterface) *string {
	ret := UInt64ToString(uint64(loadPhase(chain)))
	return &ret
}

func turnOrderImpl(payload *string, chain SDKInterface) *string {
	order := loadOrder(chain)
	out := make([]byte, 0, len(order)*4)
	for i, n := range order {
		if i > 0 {
			out = append(out, '|')
		}
		out = appendU64(out, uint64(n))
	}
	s := string(out)
	return &s
}
