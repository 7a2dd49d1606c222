package model

// Order is a customer order as returned by /api/delivery/orders.
type Order struct {
	OrderID        string          `json:"orderId"`
	Status         string          `json:"status"`
	Amount         Number          `json:"amount"`
	Address        *Address        `json:"address,omitempty"`
	DeliveryPerson *AssignedPerson `json:"deliveryPerson,omitempty"`
	Items          []OrderItem     `json:"items"`
	CreatedAt      string          `json:"createdAt,omitempty"`
}

// Address is the delivery address captured with an order.
type Address struct {
	UserID       string `json:"userId"`
	FullName     string `json:"fullName"`
	PhoneNumber  string `json:"phoneNumber"`
	State        string `json:"state"`
	Pincode      string `json:"pincode"`
	HouseDetails string `json:"houseDetails"`
	RoadDetails  string `json:"roadDetails"`
}

// AssignedPerson is the delivery person attached to an order.
type AssignedPerson struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// OrderItem is a line of an order.
type OrderItem struct {
	Name     string `json:"name"`
	Quantity Number `json:"quantity"`
	Unit     string `json:"unit"`
	ImageURL string `json:"imageUrl,omitempty"`
	Image    string `json:"image,omitempty"`
}

// OrderRow is a flattened order as shown in the order tables.
type OrderRow struct {
	OrderID             string         `json:"orderId"`
	Status              string         `json:"status"`
	Amount              float64        `json:"amount"`
	UserID              string         `json:"userId"`
	UserName            string         `json:"userName"`
	UserPhoneNumber     string         `json:"userPhoneNumber"`
	State               string         `json:"state"`
	Pincode             string         `json:"pincode"`
	HouseDetails        string         `json:"houseDetails"`
	RoadDetails         string         `json:"roadDetails"`
	DeliveryPersonID    string         `json:"deliveryPersonId"`
	DeliveryPersonName  string         `json:"deliveryPersonName"`
	DeliveryPersonPhone string         `json:"deliveryPersonPhone"`
	CreatedAt           *int64         `json:"createdAt"`
	CreatedAtFormatted  string         `json:"createdAtFormatted"`
	Items               []OrderRowItem `json:"items"`
	Actions             OrderActions   `json:"actions"`

	// Source is the order as received, kept for invoice generation.
	Source Order `json:"-"`
}

// OrderRowItem is a normalised order line.
type OrderRowItem struct {
	Name     string  `json:"name"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Image    string  `json:"image"`
}

// OrderActions lists the controls offered for an order row.
type OrderActions struct {
	Accept       bool `json:"accept"`
	UpdateStatus bool `json:"updateStatus"`
}

// AcceptOrderRequest assigns a delivery person to a pending order.
type AcceptOrderRequest struct {
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// UpdateStatusRequest moves an order to a new status.
type UpdateStatusRequest struct {
	Status           string `json:"status"`
	OrderID          string `json:"orderId"`
	DeliveryPersonID string `json:"deliveryPersonId"`
}

// MessageResponse is the {message} body most Agrive write endpoints return.
type MessageResponse struct {
	Message string `json:"message"`
}
