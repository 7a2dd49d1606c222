package model

// DeliveryPerson is a rider that orders can be assigned to.
type DeliveryPerson struct {
	UserID   string `json:"userId,omitempty"`
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Email    string `json:"email,omitempty"`
	Vehicle  string `json:"vehicle,omitempty"`
	Password string `json:"password,omitempty"`
}

// Coupon is a promotional discount code.
type Coupon struct {
	ID           string `json:"_id,omitempty"`
	Code         string `json:"code"`
	Discount     Number `json:"discount"`
	IsPercentage bool   `json:"isPercentage"`
	ExpiryDate   string `json:"expiryDate,omitempty"`
}

// Warehouse is a stocking location.
type Warehouse struct {
	ID       string `json:"_id,omitempty"`
	Name     string `json:"name"`
	Pincode  string `json:"pincode"`
	Location string `json:"location"`
}

// AppUser is a customer account of the shopping app.
type AppUser struct {
	ID    string `json:"_id,omitempty"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

// MediaImage is a banner, deal, or product image.
type MediaImage struct {
	ID            string `json:"_id"`
	ImageURL      string `json:"imageUrl,omitempty"`
	LocalImageURL string `json:"localImageUrl,omitempty"`
	VariantID     string `json:"variantId,omitempty"`
}

// BulkUploadResult is returned by the bulk product endpoint.
type BulkUploadResult struct {
	Message string `json:"message"`
	Count   int    `json:"count"`
	// Rows is the locally previewed data row count, -1 when unknown.
	Rows int `json:"rows"`
}

// LoginRequest carries admin credentials.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SessionStatus reports the admin session state.
type SessionStatus struct {
	Authenticated bool   `json:"authenticated"`
	ExpiresAt     *int64 `json:"expiresAt,omitempty"`
}

// DashboardSummary holds the dashboard counters.
type DashboardSummary struct {
	TotalProducts   int      `json:"totalProducts"`
	TotalVariants   int      `json:"totalVariants"`
	OutOfStock      int      `json:"outOfStock"`
	AppUsers        int      `json:"appUsers"`
	TotalOrders     int      `json:"totalOrders"`
	TodaysOrders    int      `json:"todaysOrders"`
	PendingOrders   int      `json:"pendingOrders"`
	DeliveredOrders int      `json:"deliveredOrders"`
	TodayDelivered  int      `json:"todayDelivered"`
	DeliveryPersons int      `json:"deliveryPersons"`
	Coupons         int      `json:"coupons"`
	Warehouses      int      `json:"warehouses"`
	Unavailable     []string `json:"unavailable"`
}
