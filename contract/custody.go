package main

//
// Prize custody: allow-listed depositors stage collectibles before the
// gauntlet starts. Setup plumbing only; nothing here touches ordering or
// turn logic, and payout of staged prizes happens off this contract.
//

func depositorKey(a string) string { return "d:a:" + a }
func prizeCountKey() string { return "d:count" }
func prizeKey(i uint64) string { return "d:p:" + UInt64ToString(i) }

// isApprovedDepositor reports whether the identity may stage prizes.
func isApprovedDepositor(chain SDKInterface, identity string) bool {
	ptr := chain.StateGetObject(depositorKey(identity))
	return ptr != nil && *ptr == "1"
}

// allowDepositorImpl handles "identity". Owner-only allow-list mutation.
func allowDepositorImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	identity := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(identity != "", "identity is mandatory", chain)

	cfg := mustLoadConfig(chain)
	require(sender(chain) == cfg.Owner, "only the owner can approve depositors", chain)

	chain.StateSetObject(depositorKey(identity), "1")
	EmitDepositorAllowed(identity, chain)
	return nil
}

func getPrizeCount(chain SDKInterface) uint64 {
	ptr := chain.StateGetObject(prizeCountKey())
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64Fast(*ptr)
}

// depositPrizeImpl handles "prizeRef", an external collectible reference.
// Only approved depositors, only before the start gate.
// An attached transfer.allow intent is drawn into the pot alongside.
func depositPrizeImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	ref := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(ref != "", "prize reference is mandatory", chain)

	cfg := mustLoadConfig(chain)
	depositor := sender(chain)
	require(isApprovedDepositor(chain, depositor), "not an approved depositor", chain)
	require(blockNow(chain) < cfg.StartTime, "deposits closed", chain)

	for _, intent := range chain.GetEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		require(intent.Args["token"] == ticketAsset.String(), "invalid prize token", chain)
		amount := parseFixedPoint3(intent.Args["limit"], chain)
		if amount > 0 {
			chain.HiveDraw(int64(amount), ticketAsset)
		}
		break
	}

	index := getPrizeCount(chain)
	chain.StateSetObject(prizeKey(index), depositor+"|"+ref)
	chain.StateSetObject(prizeCountKey(), UInt64ToString(index+1))

	EmitPrizeDeposited(index, depositor, ref, chain)

	ret := UInt64ToString(index)
	return &ret
}

// ---------- Queries ----------

func isDepositorImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	identity := nextField(&in)
	require(in == "", "too many arguments", chain)

	ret := "0"
	if isApprovedDepositor(chain, identity) {
		ret = "1"
	}
	return &ret
}

// prizesImpl returns one "depositor|ref" row per staged prize, newline
// separated.
func prizesImpl(payload *string, chain SDKInterface) *string {
	count := getPrizeCount(chain)
	out := make([]byte, 0, count*32)
	for i := uint64(0); i < count; i++ {
		ptr := chain.StateGetObject(prizeKey(i))
		if ptr == nil {
			continue
		}
		if len(out) > 0 {
			out = append(out, '\n')
		}
		out = append(out, *ptr...)
	}
	s := string(out)
	return &s
}
