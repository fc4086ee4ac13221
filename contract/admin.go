package main

//
// One-shot contract configuration.
//
// The first caller of a_setup becomes the contract owner and fixes the
// start gate timestamp plus the oracle identity allowed to deliver the
// draw seed. Ticket price, skip period and capacity are compile-time
// constants; everything that must be known before the first ticket sale
// lives here.
//

const configKey = "cfg"

const configCodecVersion uint8 = 1

type gauntletConfig struct {
	Owner     string
	StartTime uint64 // unix seconds; the gate for o_request
	Oracle    string // identity allowed to call o_complete
}

func saveConfig(c *gauntletConfig, chain SDKInterface) {
	out := make([]byte, 0, 32+len(c.Owner)+len(c.Oracle))
	out = append(out, configCodecVersion)
	out = appendString16(out, c.Owner, chain)
	out = appendU64BE(out, c.StartTime)
	out = appendString16(out, c.Oracle, chain)
	chain.StateSetObject(configKey, string(out))
}

func loadConfig(chain SDKInterface) *gauntletConfig {
	ptr := chain.StateGetObject(configKey)
	if ptr == nil || *ptr == "" {
		return nil
	}
	r := &rd{b: []byte(*ptr), chain: chain}
	require(r.u8() == configCodecVersion, "unsupported config version", chain)
	c := &gauntletConfig{}
	c.Owner = r.str()
	c.StartTime = r.u64()
	c.Oracle = r.str()
	r.mustEnd()
	return c
}

func mustLoadConfig(chain SDKInterface) *gauntletConfig {
	c := loadConfig(chain)
	require(c != nil, "not configured", chain)
	return c
}

// setupImpl handles "startTs|oracle". Callable once; the sender becomes
// the owner.
func setupImpl(payload *string, chain SDKInterface) *string {
	in := *payload
	startStr := nextField(&in)
	oracle := nextField(&in)
	require(in == "", "too many arguments", chain)
	require(startStr != "", "start time is mandatory", chain)
	require(oracle != "", "oracle identity is mandatory", chain)

	require(loadConfig(chain) == nil, "already configured", chain)

	cfg := &gauntletConfig{
		Owner:     sender(chain),
		StartTime: parseU64Fast(startStr),
		Oracle:    oracle,
	}
	saveConfig(cfg, chain)

	chain.Log("gauntlet configured by " + cfg.Owner)
	return nil
}
