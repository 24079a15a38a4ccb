package host

import (
	"errors"

	"github.com/google/uuid"
)

// TransferRecord is one executed transfer, kept by MockEnv so tests can
// verify settlement conservation.
type TransferRecord struct {
	ReceiptID string
	Amount    uint64
	Recipient string
}

// MockEnv is an in-memory Env for tests and the demo CLI.
type MockEnv struct {
	CallerID  string
	Deposit   uint64
	ByteCost  uint64
	Transfers []TransferRecord

	// FailTransfers makes every Transfer call fail, for exercising the
	// settlement rollback path.
	FailTransfers bool
}

// NewMockEnv returns a MockEnv with a unit byte cost of 1.
func NewMockEnv(caller string, deposit uint64) *MockEnv {
	return &MockEnv{CallerID: caller, Deposit: deposit, ByteCost: 1}
}

func (m *MockEnv) Caller() string          { return m.CallerID }
func (m *MockEnv) AttachedDeposit() uint64 { return m.Deposit }
func (m *MockEnv) StorageByteCost() uint64 { return m.ByteCost }

func (m *MockEnv) Transfer(amount uint64, recipient string) error {
	if m.FailTransfers {
		return errors.New("mock transfer failure")
	}
	m.Transfers = append(m.Transfers, TransferRecord{
		ReceiptID: uuid.NewString(),
		Amount:    amount,
		Recipient: recipient,
	})
	return nil
}

// TotalTransferredTo sums every transfer executed to the given recipient.
func (m *MockEnv) TotalTransferredTo(recipient string) uint64 {
	var total uint64
	for _, t := range m.Transfers {
		if t.Recipient == recipient {
			total += t.Amount
		}
	}
	return total
}
