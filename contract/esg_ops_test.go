package contract_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"circularchain/contract"
	"circularchain/host"
)

func TestUpdateEsgScoreMeanOfMeans(t *testing.T) {
	c := contract.New(stakeholderOne)
	env := host.NewMockEnv(stakeholderOne, 1_000_000)
	createPalmOil(t, c, env)
	appendStage(t, c, env, "harvest", 6, 6, 6)
	appendStage(t, c, env, "milling", 3, 3, 3)
	appendStage(t, c, env, "refining", 0, 0, 0)

	score, err := c.UpdateEsgScore(env, "palm-oil-0164b")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, score, 1e-9)

	product, ok := c.ReadProduct(env, 0)
	require.True(t, ok)
	assert.InDelta(t, 3.0, product.EsgScore, 1e-9) // Cached on the product.
}

func TestUpdateEsgScoreAdministratorOnly(t *testing.T) {
	c := contract.New(stakeholderOne)
	env := host.NewMockEnv(stakeholderOne, 1_000_000)
	createPalmOil(t, c, env)
	appendStage(t, c, env, "harvest", 6, 6, 6)

	// Stakeholder membership is not enough; only the creator may trigger
	// recomputation, so first grant s2 stakeholder status and verify it
	// still cannot recompute.
	product, _ := c.ReadProduct(env, 0)
	require.NoError(t, c.UpdateProduct(env, 0, product.ProductID, product.Image,
		product.Title, product.Summary, product.Category, product.BrandID,
		product.Date, product.Rating, []string{stakeholderOne, stakeholderTwo}, product.Stages))

	outsider := host.NewMockEnv(stakeholderTwo, 1_000_000)
	_, err := c.UpdateEsgScore(outsider, "palm-oil-0164b")
	assert.ErrorIs(t, err, contract.ErrUnauthorized)

	after, _ := c.ReadProduct(env, 0)
	assert.Zero(t, after.EsgScore) // Untouched by the rejected call.
}

func TestUpdateEsgScoreEmptyStageSet(t *testing.T) {
	c := contract.New(stakeholderOne)
	env := host.NewMockEnv(stakeholderOne, 1_000_000)
	createPalmOil(t, c, env)

	_, err := c.UpdateEsgScore(env, "palm-oil-0164b")
	assert.ErrorIs(t, err, contract.ErrEmptyStageSet)
}

func TestUpdateEsgScoreMissingProduct(t *testing.T) {
	c := contract.New(stakeholderOne)
	env := host.NewMockEnv(stakeholderOne, 1_000_000)

	_, err := c.UpdateEsgScore(env, "no-such-product")
	assert.ErrorIs(t, err, contract.ErrNotFound)
}

func TestUpdateEsgScoreStaleUntilRecomputed(t *testing.T) {
	c := contract.New(stakeholderOne)
	env := host.NewMockEnv(stakeholderOne, 1_000_000)
	createPalmOil(t, c, env)
	appendStage(t, c, env, "harvest", 6, 6, 6)

	score, err := c.UpdateEsgScore(env, "palm-oil-0164b")
	require.NoError(t, err)
	assert.InDelta(t, 6.0, score, 1e-9)

	// Appending a stage does not invalidate the cache.
	appendStage(t, c, env, "refining", 0, 0, 0)
	product, _ := c.ReadProduct(env, 0)
	assert.InDelta(t, 6.0, product.EsgScore, 1e-9)

	score, err = c.UpdateEsgScore(env, "palm-oil-0164b")
	require.NoError(t, err)
	assert.InDelta(t, 3.0, score, 1e-9)
}
