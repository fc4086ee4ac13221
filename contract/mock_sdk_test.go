package main

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	req "github.com/stretchr/testify/require"

	"vsc-gauntlet/sdk"
)

// fake chain for testing

type FakeSDK struct {
	state     map[string]string
	env       SDKInterfaceEnv
	aborted   bool
	abortMsg  string
	draws     []string
	transfers []string
	logs      []string
}

func NewFakeSDK(senderAddr string) *FakeSDK {
	f := &FakeSDK{state: make(map[string]string)}
	f.env.Timestamp = isoAt(testStart - 3600)
	f.as(senderAddr)
	return f
}

// as switches the transaction sender and starts a fresh tx (new id, no
// intents, abort flags cleared).
func (f *FakeSDK) as(senderAddr string) *FakeSDK {
	f.env.Sender.Address = sdk.Address(senderAddr)
	f.env.TxId = uuid.NewString()
	f.env.Intents = nil
	f.aborted = false
	f.abortMsg = ""
	return f
}

// at moves block time to the given unix second.
func (f *FakeSDK) at(unix uint64) *FakeSDK {
	f.env.Timestamp = isoAt(unix)
	return f
}

// paying attaches a transfer.allow intent for the given hive amount.
func (f *FakeSDK) paying(limit string) *FakeSDK {
	f.env.Intents = []sdk.Intent{
		{
			Type: "transfer.allow",
			Args: map[string]string{
				"token": "hive",
				"limit": limit,
			},
		},
	}
	return f
}

func (f *FakeSDK) StateSetObject(key, value string) {
	f.state[key] = value
}

func (f *FakeSDK) StateGetObject(key string) *string {
	val, ok := f.state[key]
	if !ok {
		return nil
	}
	return &val
}

func (f *FakeSDK) Abort(msg string) {
	f.aborted = true
	f.abortMsg = msg
	panic(fmt.Sprintf("abort: %s", msg))
}

func (f *FakeSDK) Log(msg string) {
	f.logs = append(f.logs, msg)
}

func (f *FakeSDK) GetEnv() SDKInterfaceEnv {
	return f.env
}

func (f *FakeSDK) HiveDraw(amount int64, asset sdk.Asset) {
	f.draws = append(f.draws, fmt.Sprintf("%d|%s|%s", amount, asset, f.env.Sender.Address))
}

func (f *FakeSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	f.transfers = append(f.transfers, fmt.Sprintf("%d|%s|%s", amount, asset, to))
}

// expectAbort runs fn and checks it reverts with exactly the given message.
func expectAbort(t *testing.T, chain *FakeSDK, expectedMsg string, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		req.NotNil(t, r, "expected abort, call committed instead")
		req.True(t, chain.aborted, "panic was not an sdk abort: %v", r)
		req.Equal(t, expectedMsg, chain.abortMsg)
	}()
	fn()
}

// ---------- shared fixtures ----------

const (
	ownerAddr  = "hive:gauntlet-owner"
	oracleAddr = "hive:rng-oracle"
)

// testStart is the configured start gate for all fixtures.
var testStart = uint64(time.Date(2026, time.March, 1, 0, 0, 0, 0, time.UTC).Unix())

func isoAt(unix uint64) string {
	return time.Unix(int64(unix), 0).UTC().Format("2006-01-02T15:04:05")
}

// configured sets up the contract with the standard owner/oracle/start gate.
func configured(t *testing.T, chain *FakeSDK) {
	t.Helper()
	payload := UInt64ToString(testStart) + "|" + oracleAddr
	setupImpl(&payload, chain.as(ownerAddr))
}

// buyAll sells one ticket to each player, in order, before the gate opens.
func buyAll(t *testing.T, chain *FakeSDK, players ...string) {
	t.Helper()
	empty := ""
	for _, p := range players {
		buyTicketImpl(&empty, chain.as(p).paying("1.000"))
	}
}

// finalized runs the whole pre-game flow and returns the shuffled order.
// Block time ends up at exactly the start gate.
func finalized(t *testing.T, chain *FakeSDK, seed string, players ...string) []byte {
	t.Helper()
	configured(t, chain)
	buyAll(t, chain, players...)

	empty := ""
	handle := requestDrawImpl(&empty, chain.as(ownerAddr).at(testStart))
	req.NotNil(t, handle)

	payload := *handle + "|" + seed
	completeDrawImpl(&payload, chain.as(oracleAddr).at(testStart))

	order := loadOrder(chain)
	req.Len(t, order, len(players))
	return order
}

// ownerOfSlot maps a zero-based order position to the player identity.
func ownerOfSlot(chain *FakeSDK, order []byte, pos int) string {
	return ticketOwner(chain, uint64(order[pos]))
}
