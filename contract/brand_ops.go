package contract

import (
	"fmt"

	"circularchain/host"
	"circularchain/model"
)

// --- Brand operations ---

// CreateOrUpdateBrand creates the brand when brandID is absent, otherwise
// updates it. Updates are allowed only for the original publisher; the
// publisher field itself is immutable after creation. The caller's
// attached deposit settles the storage delta either way.
func (c *CircularChain) CreateOrUpdateBrand(env host.Env, brandID, image, title, summary, industry, region string) error {
	if err := validateRequiredString(brandID, "brandID", maxStringInputLength); err != nil {
		return err
	}
	if err := validateRequiredString(title, "title", maxStringInputLength); err != nil {
		return err
	}
	if err := validateOptionalString(image, "image", maxStringInputLength*2); err != nil {
		return err
	}
	if err := validateOptionalString(summary, "summary", maxDescriptionLength); err != nil {
		return err
	}
	if err := validateOptionalString(industry, "industry", maxStringInputLength); err != nil {
		return err
	}
	if err := validateOptionalString(region, "region", maxStringInputLength); err != nil {
		return err
	}

	caller := env.Caller()

	prev, existed := c.state.GetBrand(brandID)
	if existed {
		if err := requirePublisher(prev.Publisher, caller, fmt.Sprintf("brand '%s'", brandID)); err != nil {
			return err
		}
	}

	publisher := caller
	if existed {
		publisher = prev.Publisher
	}
	brand := model.NewBrand(image, title, summary, industry, region, publisher)

	initial := c.meter.snapshot()
	if err := c.state.PutBrand(brandID, brand); err != nil {
		return fmt.Errorf("CreateOrUpdateBrand: failed to store brand '%s': %w", brandID, err)
	}
	if err := c.meter.settle(env, initial, caller); err != nil {
		// Mutation and payment succeed or fail together.
		if existed {
			_ = c.state.PutBrand(brandID, prev)
		} else {
			c.state.RemoveBrand(brandID)
		}
		return fmt.Errorf("CreateOrUpdateBrand: settlement for brand '%s': %w", brandID, err)
	}

	if existed {
		logger.Infof("Brand '%s' updated by '%s'", brandID, caller)
	} else {
		logger.Infof("Brand '%s' created by '%s'", brandID, caller)
	}
	return nil
}

// DeleteBrand removes the brand and refunds the value of the freed bytes
// to the caller. A missing brand is not a fault; it returns nil, nil.
func (c *CircularChain) DeleteBrand(env host.Env, brandID string) (*model.Brand, error) {
	caller := env.Caller()

	brand, ok := c.state.GetBrand(brandID)
	if !ok {
		logger.Debugf("DeleteBrand: brand '%s' not found", brandID)
		return nil, nil
	}
	if err := requirePublisher(brand.Publisher, caller, fmt.Sprintf("brand '%s'", brandID)); err != nil {
		return nil, err
	}

	initial := c.meter.snapshot()
	c.state.RemoveBrand(brandID)
	if err := c.meter.refund(env, initial, caller); err != nil {
		_ = c.state.PutBrand(brandID, brand)
		return nil, fmt.Errorf("DeleteBrand: settlement for brand '%s': %w", brandID, err)
	}

	logger.Infof("Brand '%s' deleted by '%s'", brandID, caller)
	return &brand, nil
}

// ReadBrand returns the brand for brandID, or false if absent.
func (c *CircularChain) ReadBrand(env host.Env, brandID string) (*model.Brand, bool) {
	brand, ok := c.state.GetBrand(brandID)
	if !ok {
		return nil, false
	}
	return &brand, true
}

// ReadBrands returns a snapshot of the full brand mapping.
func (c *CircularChain) ReadBrands(env host.Env) map[string]model.Brand {
	brands := c.state.Brands()
	logger.Debugf("ReadBrands: returning %d brands", len(brands))
	return brands
}
