package handlers

import (
	"github.com/ghuser/gocatalog/services/catalog/domain/models"
)

// ItemResponse is the flattened item read model returned by every item
// endpoint.
type ItemResponse struct {
	ID                int64   `json:"id"                example:"1"`
	Name              string  `json:"name"              example:"Alpine Peak Jacket"`
	Slug              string  `json:"slug"              example:"alpine-peak-jacket"`
	Description       string  `json:"description"       example:"Waterproof shell jacket"`
	BrandID           int64   `json:"brandId"           example:"2"`
	BrandLabel        string  `json:"brandLabel"        example:"Daybird"`
	CategoryID        int64   `json:"categoryId"        example:"3"`
	CategoryLabel     string  `json:"categoryLabel"     example:"Jackets"`
	Price             float64 `json:"price"             example:"199.99"`
	AvailableStock    int     `json:"availableStock"    example:"0"`
	MaxStockThreshold int     `json:"maxStockThreshold" example:"100"`
} // @name ItemResponse

// ErrorResponse is returned on all error responses.
type ErrorResponse struct {
	Error string `json:"error" example:"item not found"`
} // @name ErrorResponse

// NewItemResponse maps a domain projection to the API shape.
func NewItemResponse(p *models.ItemProjection) ItemResponse {
	return ItemResponse{
		ID:                p.ID,
		Name:              p.Name,
		Slug:              p.Slug,
		Description:       p.Description,
		BrandID:           p.BrandID,
		BrandLabel:        p.BrandLabel,
		CategoryID:        p.CategoryID,
		CategoryLabel:     p.CategoryLabel,
		Price:             p.Price,
		AvailableStock:    p.AvailableStock,
		MaxStockThreshold: p.MaxStockThreshold,
	}
}
