package models

// ItemProjection is the flattened read model for an item: the row joined
// with its brand and category labels. Integration events and API responses
// are built from this, never from raw foreign keys.
type ItemProjection struct {
	ID                int64
	Name              string
	Slug              string
	Description       string
	BrandID           int64
	BrandLabel        string
	CategoryID        int64
	CategoryLabel     string
	Price             float64
	AvailableStock    int
	MaxStockThreshold int
}
