package model

import (
	"encoding/json"
)

// Product is a catalog product as returned by the Agrive API.
type Product struct {
	ID               string    `json:"_id"`
	Name             string    `json:"name"`
	Brand            string    `json:"brand,omitempty"`
	Description      string    `json:"description,omitempty"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Category         string    `json:"category"`
	Subcategory      string    `json:"subcategory,omitempty"`
	GST              Number    `json:"gst"`
	IsLive           bool      `json:"isLive"`
	Variants         []Variant `json:"variants"`
	CreatedAt        string    `json:"createdAt,omitempty"`
}

// UnmarshalJSON decodes a product without failing when "variants" is
// missing or not an array. Such products simply have no variants.
// Elements that cannot be decoded become zero-valued variants so the
// variant count is preserved.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	var raw struct {
		alias
		Variants json.RawMessage `json:"variants"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*p = Product(raw.alias)
	p.Variants = nil

	var elems []json.RawMessage
	if len(raw.Variants) == 0 || json.Unmarshal(raw.Variants, &elems) != nil {
		return nil
	}

	p.Variants = make([]Variant, len(elems))
	for i, elem := range elems {
		var v Variant
		if err := json.Unmarshal(elem, &v); err == nil {
			p.Variants[i] = v
		}
	}
	return nil
}

// Variant is a sellable pack size of a product.
type Variant struct {
	ID             string           `json:"_id,omitempty"`
	Price          Number           `json:"price"`
	MRP            Number           `json:"mrp"`
	Discount       Number           `json:"discount"`
	Quantity       Number           `json:"quantity"`
	Unit           string           `json:"unit,omitempty"`
	WarehouseStock []WarehouseStock `json:"warehouseStock,omitempty"`
	// Stock is the single stock figure used by older API revisions that
	// predate per-warehouse stock.
	Stock         *Number `json:"stock,omitempty"`
	ImageURL      string  `json:"imageUrl,omitempty"`
	LocalImageURL string  `json:"localImageUrl,omitempty"`
}

// WarehouseStock is the stock of one variant held in one warehouse.
type WarehouseStock struct {
	WarehouseID string `json:"warehouseId,omitempty"`
	ID          string `json:"_id,omitempty"`
	Location    string `json:"location,omitempty"`
	Pincode     string `json:"pincode,omitempty"`
	Stock       Number `json:"stock"`
}

// ProductPage is the paginated product envelope.
type ProductPage struct {
	Products   []Product `json:"products"`
	TotalPages int       `json:"totalPages"`
}

// VariantRow is one flattened (product, variant) pair as shown in the
// catalog table.
type VariantRow struct {
	ID               string           `json:"id"`
	ProductID        string           `json:"productId"`
	VariantID        string           `json:"variantId,omitempty"`
	VariantIndex     int              `json:"variantIndex"`
	Name             string           `json:"name"`
	Brand            string           `json:"brand"`
	Description      string           `json:"description"`
	ShortDescription string           `json:"shortDescription"`
	Category         string           `json:"category"`
	Subcategory      string           `json:"subcategory"`
	GST              float64          `json:"gst"`
	IsLive           bool             `json:"isLive"`
	CreatedAt        string           `json:"createdAt,omitempty"`
	Price            float64          `json:"price"`
	MRP              float64          `json:"mrp"`
	Discount         float64          `json:"discount"`
	Quantity         float64          `json:"quantity"`
	Unit             string           `json:"unit"`
	QuantityDisplay  string           `json:"quantityDisplay"`
	WarehouseStock   []WarehouseStock `json:"warehouseStock"`
	HasStockEntries  bool             `json:"hasStockEntries"`
	TotalStock       int              `json:"totalStock"`
	OutOfStock       bool             `json:"outOfStock"`
	StockDisplay     string           `json:"stockDisplay"`
	ImageURL         string           `json:"imageUrl"`
}

// ProductInput is the payload for creating a product.
type ProductInput struct {
	Name             string         `json:"name"`
	Brand            string         `json:"brand,omitempty"`
	Description      string         `json:"description,omitempty"`
	ShortDescription string         `json:"shortDescription,omitempty"`
	Category         string         `json:"category"`
	Subcategory      string         `json:"subcategory,omitempty"`
	GST              float64        `json:"gst"`
	IsLive           bool           `json:"isLive"`
	Variants         []VariantInput `json:"variants"`
}

// VariantInput is the editable part of a variant. Price is not accepted
// from callers; it is always derived from MRP and discount.
type VariantInput struct {
	MRP            float64          `json:"mrp"`
	Discount       float64          `json:"discount"`
	Quantity       float64          `json:"quantity"`
	Unit           string           `json:"unit"`
	WarehouseStock []WarehouseStock `json:"warehouseStock,omitempty"`
	ImageURL       string           `json:"imageUrl,omitempty"`
}

// Upload types for variant edits.
const (
	UploadTypeURL  = "url"
	UploadTypeFile = "file"
)

// VariantPatch is a partial variant edit. Nil fields keep the stored value.
type VariantPatch struct {
	MRP            *float64         `json:"mrp,omitempty"`
	Discount       *float64         `json:"discount,omitempty"`
	Quantity       *float64         `json:"quantity,omitempty"`
	Unit           *string          `json:"unit,omitempty"`
	WarehouseStock []WarehouseStock `json:"warehouseStock,omitempty"`
	ImageURL       string           `json:"imageUrl,omitempty"`
}

// VariantEdit is an edit of one variant from the catalog screen.
type VariantEdit struct {
	Name        *string      `json:"name,omitempty"`
	Brand       *string      `json:"brand,omitempty"`
	Description *string      `json:"description,omitempty"`
	Category    *string      `json:"category,omitempty"`
	Subcategory *string      `json:"subcategory,omitempty"`
	Variant     VariantPatch `json:"variant"`
	UploadType  string       `json:"uploadType"`
}

// FileUpload is an image or sheet passed through to the Agrive API.
type FileUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}
