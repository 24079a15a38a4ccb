package contract

import (
	"fmt"

	"circularchain/host"
	"circularchain/model"
)

// --- Product operations ---

func validateProductArgs(productID, image, title, summary, category, brandID string, stakeholders []string) error {
	if err := validateRequiredString(productID, "productID", maxStringInputLength); err != nil {
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
	if err := validateOptionalString(category, "category", maxStringInputLength); err != nil {
		return err
	}
	if err := validateRequiredString(brandID, "brandID", maxStringInputLength); err != nil {
		return err
	}
	return validateStringArray(stakeholders, "stakeholders", maxArrayElements, maxStringInputLength)
}

// CreateProduct appends a new product to the product sequence. The caller
// becomes its publisher and administrator.
func (c *CircularChain) CreateProduct(env host.Env, productID, image, title, summary, category, brandID string,
	date uint64, rating uint8, stakeholders []string, stages []model.Stage) error {

	if err := validateProductArgs(productID, image, title, summary, category, brandID, stakeholders); err != nil {
		return err
	}

	caller := env.Caller()
	product := model.NewProduct(productID, image, title, summary, category, brandID,
		date, rating, stakeholders, stages, caller)

	initial := c.meter.snapshot()
	if err := c.state.AppendProduct(product); err != nil {
		return fmt.Errorf("CreateProduct: failed to store product '%s': %w", productID, err)
	}
	if err := c.meter.settle(env, initial, caller); err != nil {
		c.state.RemoveProduct(c.state.ProductCount() - 1)
		return fmt.Errorf("CreateProduct: settlement for product '%s': %w", productID, err)
	}

	logger.Infof("Product '%s' created by '%s' with %d stakeholders and %d stages",
		productID, caller, len(product.Stakeholders), len(product.Stages))
	return nil
}

// ReadProducts returns a snapshot of the full product sequence.
func (c *CircularChain) ReadProducts(env host.Env) []model.Product {
	products := c.state.Products()
	logger.Debugf("ReadProducts: returning %d products", len(products))
	return products
}

// ReadProduct returns the product at the given position, or false if the
// index is past the end of the sequence.
func (c *CircularChain) ReadProduct(env host.Env, index uint64) (*model.Product, bool) {
	product, ok := c.state.GetProduct(index)
	if !ok {
		logger.Debugf("ReadProduct: no product at index %d", index)
		return nil, false
	}
	return &product, true
}

// UpdateProduct replaces every caller-editable field of the product at
// index. The caller must be in the stored product's stakeholder set; the
// publisher and administrator captured at creation are preserved.
func (c *CircularChain) UpdateProduct(env host.Env, index uint64, productID, image, title, summary, category, brandID string,
	date uint64, rating uint8, stakeholders []string, stages []model.Stage) error {

	if err := validateProductArgs(productID, image, title, summary, category, brandID, stakeholders); err != nil {
		return err
	}

	caller := env.Caller()

	prev, ok := c.state.GetProduct(index)
	if !ok {
		return fmt.Errorf("%w: no product at index %d", ErrNotFound, index)
	}
	if err := requireStakeholder(&prev, caller); err != nil {
		return err
	}

	updated := model.NewProduct(productID, image, title, summary, category, brandID,
		date, rating, stakeholders, stages, prev.Publisher)
	updated.Administrator = prev.Administrator
	updated.EsgScore = prev.EsgScore

	initial := c.meter.snapshot()
	if err := c.state.ReplaceProduct(index, updated); err != nil {
		return fmt.Errorf("UpdateProduct: failed to store product at index %d: %w", index, err)
	}
	if err := c.meter.settle(env, initial, caller); err != nil {
		_ = c.state.ReplaceProduct(index, prev)
		return fmt.Errorf("UpdateProduct: settlement for product '%s': %w", productID, err)
	}

	logger.Infof("Product '%s' at index %d updated by '%s'", productID, index, caller)
	return nil
}

// DeleteProduct removes the product at index and refunds the value of the
// freed bytes to the caller. Only the publisher may delete. A missing
// index is not a fault; it returns nil, nil.
func (c *CircularChain) DeleteProduct(env host.Env, index uint64) (*model.Product, error) {
	caller := env.Caller()

	product, ok := c.state.GetProduct(index)
	if !ok {
		logger.Debugf("DeleteProduct: no product at index %d", index)
		return nil, nil
	}
	if err := requirePublisher(product.Publisher, caller, fmt.Sprintf("product '%s'", product.ProductID)); err != nil {
		return nil, err
	}

	initial := c.meter.snapshot()
	c.state.RemoveProduct(index)
	if err := c.meter.refund(env, initial, caller); err != nil {
		_ = c.state.InsertProduct(index, product)
		return nil, fmt.Errorf("DeleteProduct: settlement for product '%s': %w", product.ProductID, err)
	}

	logger.Infof("Product '%s' at index %d deleted by '%s'", product.ProductID, index, caller)
	return &product, nil
}
