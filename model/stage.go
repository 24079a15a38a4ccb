package model

// Stage is a timestamped provenance event in a product's supply chain,
// carrying five normalized sustainability sub-scores (0-255).
type Stage struct {
	StageID     string   `json:"stageId"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Location    string   `json:"location"`
	Latitude    float64  `json:"latitude"`
	Longitude   float64  `json:"longitude"`
	Publisher   string   `json:"publisher"`
	Date        uint64   `json:"date"`
	Ingredients []string `json:"ingredients"`
	Climate     uint8    `json:"climate"`
	Community   uint8    `json:"community"`
	Nature      uint8    `json:"nature"`
	Waste       uint8    `json:"waste"`
	Workers     uint8    `json:"workers"`
}

// NewStage constructs a Stage record.
func NewStage(stageID, title, description, location string, latitude, longitude float64,
	publisher string, date uint64, ingredients []string,
	climate, community, nature, waste, workers uint8) Stage {

	if ingredients == nil {
		ingredients = []string{}
	}
	return Stage{
		StageID:     stageID,
		Title:       title,
		Description: description,
		Location:    location,
		Latitude:    latitude,
		Longitude:   longitude,
		Publisher:   publisher,
		Date:        date,
		Ingredients: ingredients,
		Climate:     climate,
		Community:   community,
		Nature:      nature,
		Waste:       waste,
		Workers:     workers,
	}
}

// Equal reports identity by StageID only, not full structural equality.
func (s Stage) Equal(other Stage) bool {
	return s.StageID == other.StageID
}
