package service

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"agrive-admin/internal/model"
)

var (
	phonePattern   = regexp.MustCompile(`^\d{10}$`)
	pincodePattern = regexp.MustCompile(`^\d{6}$`)
)

// Accepted coupon expiry formats.
var expiryLayouts = []string{"2006-01-02", time.RFC3339}

func normalizeDeliveryPerson(p model.DeliveryPerson, create bool) (model.DeliveryPerson, error) {
	p.Name = strings.TrimSpace(p.Name)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)

	if p.Name == "" {
		return p, model.Validation("name is required")
	}
	if p.Phone == "" {
		return p, model.Validation("phone is required")
	}
	if !phonePattern.MatchString(p.Phone) {
		return p, model.Validation("phone must be exactly 10 digits")
	}
	if create && p.Password == "" {
		return p, model.Validation("password is required")
	}
	return p, nil
}

func normalizeCoupon(c model.Coupon) (model.Coupon, error) {
	c.Code = strings.ToUpper(strings.TrimSpace(c.Code))
	c.ExpiryDate = strings.TrimSpace(c.ExpiryDate)

	if c.Code == "" {
		return c, model.Validation("code is required")
	}
	if c.Discount <= 0 {
		return c, model.Validation("discount must be greater than 0")
	}
	if c.IsPercentage && c.Discount > 100 {
		return c, model.Validation("percentage discount cannot exceed 100")
	}
	if c.ExpiryDate != "" && !parsesAsExpiry(c.ExpiryDate) {
		return c, model.Validation(fmt.Sprintf("invalid expiryDate %q: use YYYY-MM-DD", c.ExpiryDate))
	}
	return c, nil
}

func parsesAsExpiry(s string) bool {
	for _, layout := range expiryLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}

func normalizeWarehouse(w model.Warehouse) (model.Warehouse, error) {
	w.Name = strings.TrimSpace(w.Name)
	w.Location = strings.TrimSpace(w.Location)
	w.Pincode = strings.TrimSpace(w.Pincode)

	if w.Name == "" {
		return w, model.Validation("name is required")
	}
	if w.Location == "" {
		return w, model.Validation("location is required")
	}
	if !pincodePattern.MatchString(w.Pincode) {
		return w, model.Validation("pincode must be exactly 6 digits")
	}
	return w, nil
}

func validateImages(images []model.FileUpload) error {
	if len(images) == 0 {
		return model.Validation("at least one image is required")
	}
	for _, img := range images {
		if len(img.Data) == 0 {
			return model.Validation(fmt.Sprintf("image %q is empty", img.FileName))
		}
		if img.ContentType != "" && !strings.HasPrefix(img.ContentType, "image/") {
			return model.Validation(fmt.Sprintf("file %q is not an image", img.FileName))
		}
	}
	return nil
}
