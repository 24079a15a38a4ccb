package contract

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circularchain/host"
)

// meterFixture drives the meter with a hand-controlled usage counter.
type meterFixture struct {
	usage uint64
	meter storageMeter
}

func newMeterFixture(initial uint64) *meterFixture {
	f := &meterFixture{usage: initial}
	f.meter = storageMeter{usage: func() uint64 { return f.usage }}
	return f
}

func TestSettleChargesGrowthAndRefundsExcess(t *testing.T) {
	f := newMeterFixture(10)
	env := host.NewMockEnv("alice.testnet", 50)
	env.ByteCost = 2

	initial := f.meter.snapshot()
	f.usage = 30 // Mutation grew usage by 20 bytes; cost 40.

	require.NoError(t, f.meter.settle(env, initial, "alice.testnet"))
	require.Len(t, env.Transfers, 1)
	assert.Equal(t, uint64(10), env.Transfers[0].Amount)
	assert.Equal(t, "alice.testnet", env.Transfers[0].Recipient)
}

func TestSettleExactDepositTriggersNoTransfer(t *testing.T) {
	f := newMeterFixture(10)
	env := host.NewMockEnv("alice.testnet", 40)
	env.ByteCost = 2

	initial := f.meter.snapshot()
	f.usage = 30

	require.NoError(t, f.meter.settle(env, initial, "alice.testnet"))
	assert.Empty(t, env.Transfers)
}

func TestSettleInsufficientDeposit(t *testing.T) {
	f := newMeterFixture(10)
	env := host.NewMockEnv("alice.testnet", 39)
	env.ByteCost = 2

	initial := f.meter.snapshot()
	f.usage = 30

	err := f.meter.settle(env, initial, "alice.testnet")
	assert.ErrorIs(t, err, ErrInsufficientDeposit)
	assert.Empty(t, env.Transfers)
}

func TestSettlePricingOverflowIsFatal(t *testing.T) {
	f := newMeterFixture(0)
	env := host.NewMockEnv("alice.testnet", math.MaxUint64)
	env.ByteCost = math.MaxUint64

	initial := f.meter.snapshot()
	f.usage = 2

	err := f.meter.settle(env, initial, "alice.testnet")
	assert.ErrorIs(t, err, ErrStorageCostOverflow)
	assert.Empty(t, env.Transfers)
}

func TestSettleShrinkRefundsFreedValuePlusDeposit(t *testing.T) {
	f := newMeterFixture(30)
	env := host.NewMockEnv("alice.testnet", 7)
	env.ByteCost = 2

	initial := f.meter.snapshot()
	f.usage = 10 // Mutation freed 20 bytes worth 40.

	require.NoError(t, f.meter.settle(env, initial, "alice.testnet"))
	require.Len(t, env.Transfers, 1)
	assert.Equal(t, uint64(47), env.Transfers[0].Amount)
}

func TestRefundPaysForFreedBytes(t *testing.T) {
	f := newMeterFixture(30)
	env := host.NewMockEnv("alice.testnet", 0)
	env.ByteCost = 2

	initial := f.meter.snapshot()
	f.usage = 10

	require.NoError(t, f.meter.refund(env, initial, "alice.testnet"))
	require.Len(t, env.Transfers, 1)
	assert.Equal(t, uint64(40), env.Transfers[0].Amount)
}

func TestRefundZeroFreedTriggersNoTransfer(t *testing.T) {
	f := newMeterFixture(30)
	env := host.NewMockEnv("alice.testnet", 0)

	require.NoError(t, f.meter.refund(env, f.meter.snapshot(), "alice.testnet"))
	assert.Empty(t, env.Transfers)
}

func TestRefundRejectsGrowthOnReleasePath(t *testing.T) {
	f := newMeterFixture(10)
	env := host.NewMockEnv("alice.testnet", 0)

	initial := f.meter.snapshot()
	f.usage = 20

	err := f.meter.refund(env, initial, "alice.testnet")
	assert.ErrorIs(t, err, ErrStorageCostOverflow)
}

func TestTransferFailureIsAFault(t *testing.T) {
	f := newMeterFixture(10)
	env := host.NewMockEnv("alice.testnet", 50)
	env.ByteCost = 2
	env.FailTransfers = true

	initial := f.meter.snapshot()
	f.usage = 30

	err := f.meter.settle(env, initial, "alice.testnet")
	assert.ErrorIs(t, err, ErrTransferFailed)
}
