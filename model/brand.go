package model

// Brand is a publishing organization whose products are traced on the chain.
type Brand struct {
	Image     string `json:"image"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Industry  string `json:"industry"`
	Region    string `json:"region"`
	Publisher string `json:"publisher"` // Immutable after creation; the only identity allowed to update or delete.
}

// NewBrand constructs a Brand with the publisher captured at creation time.
func NewBrand(image, title, summary, industry, region, publisher string) Brand {
	return Brand{
		Image:     image,
		Title:     title,
		Summary:   summary,
		Industry:  industry,
		Region:    region,
		Publisher: publisher,
	}
}

// Equal reports whether two brands refer to the same brand for
// caller-facing dedup checks. Only the title participates; callers must
// not rely on structural equality for anything else.
func (b Brand) Equal(other Brand) bool {
	return b.Title == other.Title
}
