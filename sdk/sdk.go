//go:build !test
// +build !test

package sdk

import (
	"strings"
	"unsafe"
)

// Host bindings for the VSC wasm runtime. Strings cross the boundary as
// pointer+length pairs into linear memory; host-produced strings come back
// packed as ptr<<32|len referencing memory the host wrote via contract_alloc.

//go:wasmimport sdk state.setObject
func hostStateSetObject(keyPtr unsafe.Pointer, keyLen uint32, valPtr unsafe.Pointer, valLen uint32)

//go:wasmimport sdk state.getObject
func hostStateGetObject(keyPtr unsafe.Pointer, keyLen uint32) uint64

//go:wasmimport sdk abort
func hostAbort(msgPtr unsafe.Pointer, msgLen uint32)

//go:wasmimport sdk log
func hostLog(msgPtr unsafe.Pointer, msgLen uint32)

//go:wasmimport sdk env.get
func hostEnvGet(keyPtr unsafe.Pointer, keyLen uint32) uint64

//go:wasmimport sdk env.intents
func hostEnvIntents() uint64

//go:wasmimport sdk hive.draw
func hostHiveDraw(amount int64, assetPtr unsafe.Pointer, assetLen uint32)

//go:wasmimport sdk hive.transfer
func hostHiveTransfer(toPtr unsafe.Pointer, toLen uint32, amount int64, assetPtr unsafe.Pointer, assetLen uint32)

//go:wasmexport contract_alloc
func contractAlloc(size uint32) unsafe.Pointer {
	buf := make([]byte, size)
	return unsafe.Pointer(unsafe.SliceData(buf))
}

func strArgs(s string) (unsafe.Pointer, uint32) {
	if len(s) == 0 {
		return nil, 0
	}
	return unsafe.Pointer(unsafe.StringData(s)), uint32(len(s))
}

func unpackString(packed uint64) *string {
	if packed == 0 {
		return nil
	}
	ptr := uintptr(packed >> 32)
	length := uint32(packed & 0xffffffff)
	s := unsafe.String((*byte)(unsafe.Pointer(ptr)), int(length))
	return &s
}

func StateSetObject(key, value string) {
	kp, kl := strArgs(key)
	vp, vl := strArgs(value)
	hostStateSetObject(kp, kl, vp, vl)
}

func StateGetObject(key string) *string {
	kp, kl := strArgs(key)
	return unpackString(hostStateGetObject(kp, kl))
}

func Abort(msg string) {
	mp, ml := strArgs(msg)
	hostAbort(mp, ml)
	panic(msg) // unreachable, host traps first
}

func Log(msg string) {
	mp, ml := strArgs(msg)
	hostLog(mp, ml)
}

// GetEnvKey reads a single environment value like "msg.sender" or
// "block.timestamp". Nil when the host does not define the key.
func GetEnvKey(key string) *string {
	kp, kl := strArgs(key)
	return unpackString(hostEnvGet(kp, kl))
}

// GetEnv assembles the full transaction environment from host queries.
func GetEnv() Env {
	var e Env
	if s := GetEnvKey("msg.sender"); s != nil {
		e.Sender.Address = Address(*s)
	}
	if tx := GetEnvKey("tx.id"); tx != nil {
		e.TxId = *tx
	}
	e.Intents = decodeIntents(unpackString(hostEnvIntents()))
	return e
}

// decodeIntents parses the host's intent list, one intent per line as
// "type|k=v|k=v".
func decodeIntents(raw *string) []Intent {
	if raw == nil || *raw == "" {
		return nil
	}
	var out []Intent
	for _, line := range strings.Split(*raw, "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(line, "|")
		in := Intent{Type: fields[0], Args: map[string]string{}}
		for _, f := range fields[1:] {
			if k, v, ok := strings.Cut(f, "="); ok {
				in.Args[k] = v
			}
		}
		out = append(out, in)
	}
	return out
}

func HiveDraw(amount int64, asset Asset) {
	ap, al := strArgs(string(asset))
	hostHiveDraw(amount, ap, al)
}

func HiveTransfer(to Address, amount int64, asset Asset) {
	tp, tl := strArgs(string(to))
	ap, al := strArgs(string(asset))
	hostHiveTransfer(tp, tl, amount, ap, al)
}
