package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	req "github.com/stretchr/testify/require"
)

func TestSetup_OnlyOnce(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)
	configured(t, chain)

	cfg := loadConfig(chain)
	req.NotNil(t, cfg)
	assert.Equal(t, ownerAddr, cfg.Owner)
	assert.Equal(t, oracleAddr, cfg.Oracle)
	assert.Equal(t, testStart, cfg.StartTime)

	payload := UInt64ToString(testStart) + "|" + oracleAddr
	expectAbort(t, chain, "already configured", func() {
		setupImpl(&payload, chain.as("hive:usurper"))
	})

	// the failed re-setup must not replace the owner
	assert.Equal(t, ownerAddr, loadConfig(chain).Owner)
}

func TestSetup_ValidatesArgs(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)

	payload := "|" + oracleAddr
	expectAbort(t, chain, "start time is mandatory", func() {
		setupImpl(&payload, chain)
	})

	payload = UInt64ToString(testStart) + "|"
	expectAbort(t, chain, "oracle identity is mandatory", func() {
		setupImpl(&payload, chain)
	})
}

func TestAllowDepositor_OwnerOnly(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)
	configured(t, chain)

	payload := "hive:museum"
	expectAbort(t, chain, "only the owner can approve depositors", func() {
		allowDepositorImpl(&payload, chain.as("hive:museum"))
	})
	assert.False(t, isApprovedDepositor(chain, "hive:museum"))

	allowDepositorImpl(&payload, chain.as(ownerAddr))
	assert.True(t, isApprovedDepositor(chain, "hive:museum"))

	q := "hive:museum"
	got := isDepositorImpl(&q, chain)
	req.NotNil(t, got)
	assert.Equal(t, "1", *got)

	q = "hive:nobody"
	got = isDepositorImpl(&q, chain)
	req.NotNil(t, got)
	assert.Equal(t, "0", *got)
}

func TestDepositPrize(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)
	configured(t, chain)

	payload := "hive:museum"
	allowDepositorImpl(&payload, chain.as(ownerAddr))

	ref := "relic:trophy:42"
	got := depositPrizeImpl(&ref, chain.as("hive:museum"))
	req.NotNil(t, got)
	assert.Equal(t, "0", *got)

	ref = "relic:trophy:43"
	got = depositPrizeImpl(&ref, chain.as("hive:museum").paying("5.000"))
	req.NotNil(t, got)
	assert.Equal(t, "1", *got)

	// the attached wager was drawn into the pot
	req.Len(t, chain.draws, 1)
	assert.Equal(t, "5000|hive|hive:museum", chain.draws[0])

	empty := ""
	rows := prizesImpl(&empty, chain)
	req.NotNil(t, rows)
	assert.Equal(t, "hive:museum|relic:trophy:42\nhive:museum|relic:trophy:43", *rows)
}

func TestDepositPrize_RequiresApproval(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)
	configured(t, chain)

	ref := "relic:trophy:1"
	expectAbort(t, chain, "not an approved depositor", func() {
		depositPrizeImpl(&ref, chain.as("hive:stranger"))
	})
	assert.Equal(t, uint64(0), getPrizeCount(chain))
}

func TestDepositPrize_ClosedAtGate(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)
	configured(t, chain)

	payload := "hive:museum"
	allowDepositorImpl(&payload, chain.as(ownerAddr))

	// deposits close at the gate timestamp itself, even while no draw
	// has been requested yet
	ref := "relic:trophy:7"
	expectAbort(t, chain, "deposits closed", func() {
		depositPrizeImpl(&ref, chain.as("hive:museum").at(testStart))
	})
	assert.Equal(t, uint64(0), getPrizeCount(chain))

	// one second before the gate is still fine
	got := depositPrizeImpl(&ref, chain.as("hive:museum").at(testStart-1))
	req.NotNil(t, got)
	assert.Equal(t, "0", *got)
}

func TestDepositPrize_ClosedAfterGate(t *testing.T) {
	chain := NewFakeSDK(ownerAddr)
	configured(t, chain)
	buyAll(t, chain, "hive:alice")

	payload := "hive:museum"
	allowDepositorImpl(&payload, chain.as(ownerAddr))

	empty := ""
	requestDrawImpl(&empty, chain.as("hive:alice").at(testStart))

	ref := "relic:trophy:9"
	expectAbort(t, chain, "deposits closed", func() {
		depositPrizeImpl(&ref, chain.as("hive:museum"))
	})
}
