package contract

import (
	"fmt"
	"math/bits"

	"circularchain/host"
)

// storageMeter wraps every mutating operation: it snapshots byte usage
// immediately before the mutation, measures the delta immediately after,
// prices it, and settles against the caller's prepaid deposit. The usage
// capability is injected so it is read within the call, never cached
// across calls.
type storageMeter struct {
	usage func() uint64
}

// snapshot records current byte usage before a mutation.
func (m storageMeter) snapshot() uint64 {
	return m.usage()
}

// price converts a byte delta into a cost in the smallest currency unit,
// faulting instead of wrapping on overflow.
func price(deltaBytes, byteCost uint64) (uint64, error) {
	hi, lo := bits.Mul64(deltaBytes, byteCost)
	if hi != 0 {
		return 0, fmt.Errorf("%w: %d bytes at unit price %d", ErrStorageCostOverflow, deltaBytes, byteCost)
	}
	return lo, nil
}

// settle charges the caller for storage growth since the snapshot, or
// refunds freed value if the mutation shrank usage. On growth the deposit
// must cover the cost exactly or more; the excess is transferred back, so
// deposit == cost + refunded excess always holds. A zero excess triggers
// no transfer.
//
// Settle is called after the mutation; on error the caller must undo the
// mutation so that it and its payment succeed or fail together.
func (m storageMeter) settle(env host.Env, initial uint64, payee string) error {
	current := m.usage()
	deposit := env.AttachedDeposit()

	if current < initial {
		// The mutation freed bytes; refund their value along with the
		// entire deposit.
		freed, err := price(initial-current, env.StorageByteCost())
		if err != nil {
			return err
		}
		refund, carry := bits.Add64(freed, deposit, 0)
		if carry != 0 {
			return fmt.Errorf("%w: refund of %d freed value plus %d deposit", ErrStorageCostOverflow, freed, deposit)
		}
		return m.payOut(env, refund, payee)
	}

	cost, err := price(current-initial, env.StorageByteCost())
	if err != nil {
		return err
	}
	if deposit < cost {
		return fmt.Errorf("%w: need %d, attached %d", ErrInsufficientDeposit, cost, deposit)
	}
	return m.payOut(env, deposit-cost, payee)
}

// refund settles the delete path: no deposit is required, and the value of
// every freed byte is transferred back to the payee.
func (m storageMeter) refund(env host.Env, initial uint64, payee string) error {
	current := m.usage()
	if current > initial {
		// A delete path must not grow storage.
		return fmt.Errorf("%w: usage grew from %d to %d on a release path", ErrStorageCostOverflow, initial, current)
	}
	amount, err := price(initial-current, env.StorageByteCost())
	if err != nil {
		return err
	}
	return m.payOut(env, amount, payee)
}

func (m storageMeter) payOut(env host.Env, amount uint64, payee string) error {
	if amount == 0 {
		return nil
	}
	if err := env.Transfer(amount, payee); err != nil {
		return fmt.Errorf("%w: paying %d to '%s': %v", ErrTransferFailed, amount, payee, err)
	}
	return nil
}
