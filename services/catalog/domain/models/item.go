package models

// Item is the core aggregate for the catalog bounded context.
// ID is a store-assigned surrogate key: zero until first persisted,
// immutable afterwards. Slug is always Slugify(Name) as of the last write
// and is unique across all items.
type Item struct {
	ID                int64
	Name              string
	Description       string
	Price             float64
	AvailableStock    int
	MaxStockThreshold int
	Slug              string
	BrandID           int64
	CategoryID        int64
}

// NewItem is the factory for catalog items. It fixes name, description,
// threshold, brand, category and the derived slug; price is the optional
// starting price (pass 0 for the default). Stock starts at zero.
func NewItem(name, description string, maxStockThreshold int, brandID, categoryID int64, price float64) *Item {
	return &Item{
		Name:              name,
		Description:       description,
		Price:             price,
		MaxStockThreshold: maxStockThreshold,
		Slug:              Slugify(name),
		BrandID:           brandID,
		CategoryID:        categoryID,
	}
}

// Update rewrites the mutable attributes of an item and recomputes the slug.
// Identity, price and stock fields are untouched.
func (i *Item) Update(name, description string, brandID, categoryID int64) {
	i.Name = name
	i.Description = description
	i.BrandID = brandID
	i.CategoryID = categoryID
	i.Slug = Slugify(name)
}

// SetMaxStockThreshold replaces the business-configurable stock ceiling.
func (i *Item) SetMaxStockThreshold(threshold int) {
	i.MaxStockThreshold = threshold
}
