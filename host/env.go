// Package host defines the capability surface the hosting runtime supplies
// to every contract call. The host has already validated signatures and
// resolved the caller's account before a call reaches the contract, so the
// contract consumes these values as plain inputs.
package host

// Env carries the per-call host inputs: who is calling, how much they
// prepaid for storage, what a byte of storage costs, and the capability to
// move funds back to an account.
type Env interface {
	// Caller returns the resolved account identity invoking the call.
	Caller() string

	// AttachedDeposit returns the prepaid amount attached to the call, in
	// the smallest currency unit. The storage meter settles against it.
	AttachedDeposit() uint64

	// StorageByteCost returns the unit price of one persisted byte, in the
	// smallest currency unit.
	StorageByteCost() uint64

	// Transfer moves amount to the recipient account. A failed transfer is
	// a fault for the settlement step, never silently ignored.
	Transfer(amount uint64, recipient string) error
}
