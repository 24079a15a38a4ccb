// Package contract implements the CircularChain supply-chain contract:
// brands publish products, stakeholders append provenance stages, and every
// mutation settles its exact storage delta against the caller's prepaid
// deposit.
package contract

import (
	"circularchain/store"

	"github.com/hyperledger/fabric/common/flogging"
)

var logger = flogging.MustGetLogger("circularchain.contract")

// Constants for input validation and limits.
const (
	maxStringInputLength = 256
	maxDescriptionLength = 1024
	maxArrayElements     = 50 // Limit for arrays like Ingredients and Stakeholders.
)

// CircularChain is the contract facade. The host serializes calls: one
// call completes fully, including storage measurement and settlement,
// before the next begins, so the facade holds no locks.
type CircularChain struct {
	// AdminID is the account that instantiated the contract.
	AdminID string

	state *store.Ledger
	meter storageMeter
}

// New returns a contract with an empty ledger, owned by adminID.
func New(adminID string) *CircularChain {
	c := &CircularChain{
		AdminID: adminID,
		state:   store.NewLedger(),
	}
	c.meter = storageMeter{usage: c.state.Usage}
	logger.Infof("CircularChain instantiated by '%s'", adminID)
	return c
}
