package model

import (
	"errors"
	"fmt"
)

// ErrStageOutOfRange is returned by positional stage removal when the
// stage sequence is empty or the index is past its end.
var ErrStageOutOfRange = errors.New("stage index out of range")

// Product is a traced consumer good. It owns its stage sequence
// exclusively; stages are only ever reached through their parent product.
type Product struct {
	ProductID     string   `json:"productId"`
	Image         string   `json:"image"`
	Title         string   `json:"title"`
	Summary       string   `json:"summary"`
	Category      string   `json:"category"`
	BrandID       string   `json:"brandId"`
	Date          uint64   `json:"date"`
	Rating        uint8    `json:"rating"`
	Publisher     string   `json:"publisher"`     // Guards product deletion.
	Administrator string   `json:"administrator"` // Guards ESG score recomputation.
	Stakeholders  []string `json:"stakeholders"`  // Sole authorization set for stage mutation and product update.
	Stages        []Stage  `json:"stages"`
	EsgScore      float64  `json:"esgScore"` // Cached composite score; stale until the next recomputation.
}

// NewProduct constructs a Product. The creating identity becomes both
// publisher and administrator.
func NewProduct(productID, image, title, summary, category, brandID string,
	date uint64, rating uint8, stakeholders []string, stages []Stage, creator string) Product {

	if stakeholders == nil {
		stakeholders = []string{}
	}
	if stages == nil {
		stages = []Stage{}
	}
	return Product{
		ProductID:     productID,
		Image:         image,
		Title:         title,
		Summary:       summary,
		Category:      category,
		BrandID:       brandID,
		Date:          date,
		Rating:        rating,
		Publisher:     creator,
		Administrator: creator,
		Stakeholders:  stakeholders,
		Stages:        stages,
	}
}

// AppendStage inserts a stage at the tail of the sequence, preserving
// insertion order.
func (p *Product) AppendStage(stage Stage) {
	p.Stages = append(p.Stages, stage)
}

// FetchStages returns up to limit stages beginning at offset start, in
// insertion order. Offsets at or beyond the sequence length yield an
// empty slice, not an error.
func (p *Product) FetchStages(start, limit uint32) []Stage {
	n := uint32(len(p.Stages))
	if start >= n {
		return []Stage{}
	}
	end := n
	if limit < n-start {
		end = start + limit
	}
	out := make([]Stage, end-start)
	copy(out, p.Stages[start:end])
	return out
}

// RemoveStageAt removes and returns the stage at the given position.
// Every stage after it shifts down by one index.
func (p *Product) RemoveStageAt(index uint64) (Stage, error) {
	size := uint64(len(p.Stages))
	if size == 0 || index >= size {
		return Stage{}, fmt.Errorf("%w: index %d, length %d", ErrStageOutOfRange, index, size)
	}
	removed := p.Stages[index]
	p.Stages = append(p.Stages[:index], p.Stages[index+1:]...)
	return removed, nil
}

// StageIndexByID returns the position of the first stage with the given
// StageID, or false if no stage carries it.
func (p *Product) StageIndexByID(stageID string) (uint64, bool) {
	for i := range p.Stages {
		if p.Stages[i].StageID == stageID {
			return uint64(i), true
		}
	}
	return 0, false
}

// Clone returns a copy of the product that shares no slice storage with
// the receiver. The contract hands clones across call boundaries so no
// caller can alias the stored state.
func (p Product) Clone() Product {
	out := p
	out.Stakeholders = append([]string(nil), p.Stakeholders...)
	out.Stages = make([]Stage, len(p.Stages))
	for i, s := range p.Stages {
		out.Stages[i] = s
		out.Stages[i].Ingredients = append([]string(nil), s.Ingredients...)
	}
	return out
}
