package catalog

import (
	"net/url"
	"path"
	"strings"

	"agrive-admin/internal/model"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// DerivePrice returns mrp - mrp*discount/100 rounded to 2 decimals.
// Price is never edited directly; every write path goes through here.
func DerivePrice(mrp, discount float64) float64 {
	m := decimal.NewFromFloat(mrp)
	off := m.Mul(decimal.NewFromFloat(discount)).Div(hundred)
	price, _ := m.Sub(off).Round(2).Float64()
	return price
}

// ValidateVariant checks the pricing and unit fields of a variant form.
func ValidateVariant(v model.VariantInput) error {
	if v.MRP < 0 {
		return model.Validation("mrp must not be negative")
	}
	if v.Discount < 0 || v.Discount > 100 {
		return model.Validation("discount must be between 0 and 100")
	}
	if v.Quantity < 0 {
		return model.Validation("quantity must not be negative")
	}
	if v.Unit != "" && !IsUnit(v.Unit) {
		return model.Validation("unknown unit: " + v.Unit)
	}
	for _, ws := range v.WarehouseStock {
		if ws.Stock < 0 {
			return model.Validation("warehouse stock must not be negative")
		}
	}
	if v.ImageURL != "" && !IsImageURL(v.ImageURL) {
		return model.Validation("imageUrl must be an http(s) link to a .jpg, .jpeg, .png or .gif image")
	}
	return nil
}

var imageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
}

// IsImageURL reports whether raw is an absolute http(s) URL whose path
// ends in a known image extension.
func IsImageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil || u.Host == "" {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return imageExtensions[strings.ToLower(path.Ext(u.Path))]
}
