package contract

import (
	"errors"
	"fmt"

	"circularchain/host"
	"circularchain/model"
)

// --- Stage operations ---

// CreateStage appends a provenance stage to the tail of the product's
// stage sequence. The caller must be in the product's stakeholder set.
// A missing product index is not a fault; it is logged and ignored, as a
// read of a missing key would be.
func (c *CircularChain) CreateStage(env host.Env, productIndex uint64,
	stageID, title, description, location string, latitude, longitude float64,
	publisher string, date uint64, ingredients []string,
	climate, community, nature, waste, workers uint8) error {

	if err := validateRequiredString(stageID, "stageID", maxStringInputLength); err != nil {
		return err
	}
	if err := validateRequiredString(title, "title", maxStringInputLength); err != nil {
		return err
	}
	if err := validateOptionalString(description, "description", maxDescriptionLength); err != nil {
		return err
	}
	if err := validateOptionalString(location, "location", maxStringInputLength); err != nil {
		return err
	}
	if err := validateCoordinates(latitude, longitude, "stage"); err != nil {
		return err
	}
	if err := validateStringArray(ingredients, "ingredients", maxArrayElements, maxStringInputLength); err != nil {
		return err
	}

	caller := env.Caller()

	product, ok := c.state.GetProduct(productIndex)
	if !ok {
		logger.Warningf("CreateStage: no product at index %d", productIndex)
		return nil
	}
	if err := requireStakeholder(&product, caller); err != nil {
		return err
	}

	prev := product.Clone()
	stage := model.NewStage(stageID, title, description, location, latitude, longitude,
		publisher, date, ingredients, climate, community, nature, waste, workers)
	product.AppendStage(stage)

	initial := c.meter.snapshot()
	if err := c.state.ReplaceProduct(productIndex, product); err != nil {
		return fmt.Errorf("CreateStage: failed to store product at index %d: %w", productIndex, err)
	}
	if err := c.meter.settle(env, initial, caller); err != nil {
		_ = c.state.ReplaceProduct(productIndex, prev)
		return fmt.Errorf("CreateStage: settlement for stage '%s': %w", stageID, err)
	}

	logger.Infof("Stage '%s' appended to product '%s' by '%s'", stageID, product.ProductID, caller)
	return nil
}

// ReadStages returns up to limit stages of the product at productIndex,
// beginning at offset start. The second return is false when the product
// itself is absent; an offset past the end of an existing product yields
// an empty slice.
func (c *CircularChain) ReadStages(env host.Env, productIndex uint64, start, limit uint32) ([]model.Stage, bool) {
	product, ok := c.state.GetProduct(productIndex)
	if !ok {
		logger.Debugf("ReadStages: no product at index %d", productIndex)
		return nil, false
	}
	return product.FetchStages(start, limit), true
}

// DeleteStage removes the stage at position stageIndex from the product at
// productIndex and refunds the freed-byte value to the caller. Removal is
// positional: every stage after the removed one shifts down by one index,
// so callers must not reuse indices cached before a prior removal. An
// invalid stage index is a fault (ErrOutOfRange); a missing product is
// not, and returns nil, nil.
func (c *CircularChain) DeleteStage(env host.Env, stageIndex, productIndex uint64) (*model.Stage, error) {
	caller := env.Caller()

	product, ok := c.state.GetProduct(productIndex)
	if !ok {
		logger.Debugf("DeleteStage: no product at index %d", productIndex)
		return nil, nil
	}
	if err := requireStakeholder(&product, caller); err != nil {
		return nil, err
	}

	prev := product.Clone()
	removed, err := product.RemoveStageAt(stageIndex)
	if err != nil {
		if errors.Is(err, model.ErrStageOutOfRange) {
			return nil, fmt.Errorf("%w: stage %d of product '%s'", ErrOutOfRange, stageIndex, product.ProductID)
		}
		return nil, err
	}

	initial := c.meter.snapshot()
	if err := c.state.ReplaceProduct(productIndex, product); err != nil {
		return nil, fmt.Errorf("DeleteStage: failed to store product at index %d: %w", productIndex, err)
	}
	if err := c.meter.refund(env, initial, caller); err != nil {
		_ = c.state.ReplaceProduct(productIndex, prev)
		return nil, fmt.Errorf("DeleteStage: settlement for stage '%s': %w", removed.StageID, err)
	}

	logger.Infof("Stage '%s' removed from product '%s' by '%s'", removed.StageID, product.ProductID, caller)
	return &removed, nil
}

// DeleteStageByID removes the stage carrying stageID from the product at
// productIndex. It is the identity-based alternative to positional
// DeleteStage and is immune to index shifting. A missing product or stage
// is not a fault; it returns nil, nil.
func (c *CircularChain) DeleteStageByID(env host.Env, productIndex uint64, stageID string) (*model.Stage, error) {
	product, ok := c.state.GetProduct(productIndex)
	if !ok {
		logger.Debugf("DeleteStageByID: no product at index %d", productIndex)
		return nil, nil
	}
	index, found := product.StageIndexByID(stageID)
	if !found {
		logger.Debugf("DeleteStageByID: product '%s' has no stage '%s'", product.ProductID, stageID)
		return nil, nil
	}
	return c.DeleteStage(env, index, productIndex)
}
