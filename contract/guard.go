package contract

import (
	"fmt"

	mapset "github.com/deckarep/golang-set/v2"

	"circularchain/model"
)

// Authorization guards. Every guard runs strictly before any state
// mutation or storage measurement side effect, so a failed check leaves
// nothing to roll back.

// requirePublisher enforces the single-owner policy: only the publisher
// identity captured at creation may update or delete the record.
func requirePublisher(publisher, caller, what string) error {
	if publisher != caller {
		return fmt.Errorf("%w: caller '%s' is not the publisher of %s", ErrUnauthorized, caller, what)
	}
	return nil
}

// requireStakeholder enforces the set-membership policy: the caller must
// be an element of the product's stakeholder set.
func requireStakeholder(p *model.Product, caller string) error {
	stakeholders := mapset.NewThreadUnsafeSet(p.Stakeholders...)
	if !stakeholders.Contains(caller) {
		return fmt.Errorf("%w: caller '%s' is not a stakeholder of product '%s'", ErrUnauthorized, caller, p.ProductID)
	}
	return nil
}

// requireAdministrator restricts ESG score recomputation to the identity
// that created the product.
func requireAdministrator(p *model.Product, caller string) error {
	if p.Administrator != caller {
		return fmt.Errorf("%w: caller '%s' is not the administrator of product '%s'", ErrUnauthorized, caller, p.ProductID)
	}
	return nil
}
