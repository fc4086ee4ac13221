package main

import "vsc-gauntlet/sdk"

//
// Ticket ledger: one entry per identity, numbered 1..N in sale order.
//
// Both directions of the mapping persist so turn resolution can go from
// ticket number to identity without scanning, and double registration is
// a single key lookup. Numbers are never reused or revoked.
//

func ticketCountKey() string { return "t:count" }
func ticketOwnerKey(n uint64) string { return "t:o:" + UInt64ToString(n) }
func ticketNumberKey(a string) string { return "t:a:" + a }

// getTicketCount returns how many tickets have been sold.
func getTicketCount(chain SDKInterface) uint64 {
	ptr := chain.StateGetObject(ticketCountKey())
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64Fast(*ptr)
}

func setTicketCount(chain SDKInterface, n uint64) {
	chain.StateSetObject(ticketCountKey(), UInt64ToString(n))
}

// ticketOwner resolves a ticket number to its holder. Empty string for
// unassigned numbers; callers treat that as "no player", never an abort.
func ticketOwner(chain SDKInterface, n uint64) string {
	if n == 0 {
		return ""
	}
	ptr := chain.StateGetObject(ticketOwnerKey(n))
	if ptr == nil {
		return ""
	}
	return *ptr
}

// ticketOf resolves an identity to its ticket number, 0 for none.
func ticketOf(chain SDKInterface, identity string) uint64 {
	ptr := chain.StateGetObject(ticketNumberKey(identity))
	if ptr == nil || *ptr == "" {
		return 0
	}
	return parseU64Fast(*ptr)
}

// assertTicketPayment finds the transfer.allow intent covering exactly
// the ticket price and returns its token. Anything else aborts.
func assertTicketPayment(chain SDKInterface) sdk.Asset {
	for _, intent := range chain.GetEnv().Intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		require(intent.Args["token"] == ticketAsset.String(), errInsufficientPayment, chain)
		limit := parseFixedPoint3(intent.Args["limit"], chain)
		require(limit == ticketPrice, errInsufficientPayment, chain)
		return ticketAsset
	}
	chain.Abort(errInsufficientPayment)
	return ""
}

// buyTicketImpl sells the next sequential ticket to the sender.
// Sales close for good once the draw has been requested so the player
// count is frozen before the shuffle.
func buyTicketImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	require(in == "", "too many arguments", chain)

	mustLoadConfig(chain)
	require(loadPhase(chain) == Pending, "registration closed", chain)

	buyer := sender(chain)
	require(ticketOf(chain, buyer) == 0, errAlreadyRegistered, chain)

	count := getTicketCount(chain)
	require(count < maxPlayers, "sold out", chain)

	token := assertTicketPayment(chain)
	chain.HiveDraw(int64(ticketPrice), token)

	number := count + 1
	chain.StateSetObject(ticketOwnerKey(number), buyer)
	chain.StateSetObject(ticketNumberKey(buyer), UInt64ToString(number))
	setTicketCount(chain, number)

	EmitTicketBought(number, buyer, chain)

	ret := UInt64ToString(number)
	return &ret
}

// ---------- Queries ----------

func ticketOwnerImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	number := parseU64Fast(nextField(&in))
	require(in == "", "too many arguments", chain)

	owner := ticketOwner(chain, number)
	return &owner
}

func ticketOfImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	identity := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(identity != "", "identity is mandatory", chain)

	ret := UInt64ToString(ticketOf(chain, identity))
	return &ret
}

func ticketCountImpl(payload *string, chain SDKInterface) *string {
	ret := UInt64ToString(getTicketCount(chain))
	return &ret
}
