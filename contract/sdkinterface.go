package main

import (
	"vsc-gauntlet/sdk"
)

// --- SDK interface abstraction ---

// SDKInterfaceEnv mirrors the host transaction environment so contract
// logic never reads ambient state directly.
type SDKInterfaceEnv struct {
	Sender struct {
		Address sdk.Address
	}
	TxId      string
	Timestamp string // block.timestamp, ISO8601 UTC
	Intents   []sdk.Intent
}

type SDKInterface interface {
	StateSetObject(key, value string)
	StateGetObject(key string) *string
	Abort(msg string)
	Log(msg string)
	GetEnv() SDKInterfaceEnv
	HiveDraw(amount int64, asset sdk.Asset)
	HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset)
}

// RealSDK forwards to the wasm host bindings in vsc-gauntlet/sdk.
type RealSDK struct{}

func (RealSDK) StateSetObject(key, value string)  { sdk.StateSetObject(key, value) }
func (RealSDK) StateGetObject(key string) *string { return sdk.StateGetObject(key) }
func (RealSDK) Abort(msg string)                  { sdk.Abort(msg) }
func (RealSDK) Log(msg string)                    { sdk.Log(msg) }
func (RealSDK) GetEnv() SDKInterfaceEnv {
	e := sdk.GetEnv()
	env := SDKInterfaceEnv{
		TxId:    e.TxId,
		Intents: e.Intents,
	}
	env.Sender.Address = e.Sender.Address
	if ts := sdk.GetEnvKey("block.timestamp"); ts != nil {
		env.Timestamp = *ts
	}
	return env
}
func (RealSDK) HiveDraw(amount int64, asset sdk.Asset) {
	sdk.HiveDraw(amount, asset)
}
func (RealSDK) HiveTransfer(to sdk.Address, amount int64, asset sdk.Asset) {
	sdk.HiveTransfer(to, amount, asset)
}

// sender returns the transaction signer as a plain string.
func sender(chain SDKInterface) string {
	return string(chain.GetEnv().Sender.Address)
}

// blockNow returns the current block time in unix seconds.
func blockNow(chain SDKInterface) uint64 {
	ts := chain.GetEnv().Timestamp
	require(len(ts) >= 19, "missing block timestamp", chain)
	return parseISO8601ToUnix(ts)
}
