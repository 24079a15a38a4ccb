package contract

import (
	"fmt"

	"circularchain/host"
	"circularchain/model"
)

// --- ESG aggregation ---

// aggregateEsgScore computes the composite sustainability score: the mean
// across stages of the mean of each stage's climate, community and nature
// sub-scores. The stage set must be non-empty.
func aggregateEsgScore(stages []model.Stage) float64 {
	var sum float64
	for _, s := range stages {
		sum += (float64(s.Climate) + float64(s.Community) + float64(s.Nature)) / 3
	}
	return sum / float64(len(stages))
}

// UpdateEsgScore recomputes and stores the composite ESG score of the
// product with the given ProductID, returning the new score. Only the
// administrator (the product's creator) may trigger recomputation. A
// product with zero stages faults with ErrEmptyStageSet rather than
// dividing by the empty stage count; the previously cached score is left
// untouched.
func (c *CircularChain) UpdateEsgScore(env host.Env, productID string) (float64, error) {
	caller := env.Caller()

	index, ok := c.state.FindProductByID(productID)
	if !ok {
		return 0, fmt.Errorf("%w: product '%s'", ErrNotFound, productID)
	}
	product, _ := c.state.GetProduct(index)

	if err := requireAdministrator(&product, caller); err != nil {
		return 0, err
	}
	if len(product.Stages) == 0 {
		return 0, fmt.Errorf("%w: product '%s'", ErrEmptyStageSet, productID)
	}

	prev := product.Clone()
	product.EsgScore = aggregateEsgScore(product.Stages)

	initial := c.meter.snapshot()
	if err := c.state.ReplaceProduct(index, product); err != nil {
		return 0, fmt.Errorf("UpdateEsgScore: failed to store product '%s': %w", productID, err)
	}
	if err := c.meter.settle(env, initial, caller); err != nil {
		_ = c.state.ReplaceProduct(index, prev)
		return 0, fmt.Errorf("UpdateEsgScore: settlement for product '%s': %w", productID, err)
	}

	logger.Infof("ESG score of product '%s' recomputed to %.2f by '%s'", productID, product.EsgScore, caller)
	return product.EsgScore, nil
}
