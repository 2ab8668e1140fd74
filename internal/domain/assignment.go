package domain

// Assignment - result of pairing an order with a partner.
// PreviousPartnerID is empty unless the order moved away from another partner.
type Assignment struct {
	OrderID           string
	PartnerID         string
	PreviousPartnerID string
}

// Reassigned reports whether the order was taken from a different partner.
func (a Assignment) Reassigned() bool {
	return a.PreviousPartnerID != "" && a.PreviousPartnerID != a.PartnerID
}

// PartnerRemoval - result of deleting a partner.
type PartnerRemoval struct {
	PartnerID      string
	ReleasedOrders int
}

// OrderRemoval - result of deleting an order.
// PartnerID is empty if the order was unassigned.
type OrderRemoval struct {
	OrderID   string
	PartnerID string
}

// LastDelivery is the latest delivery time among a partner's orders.
// Found is false when the partner has no assigned orders; Time is then meaningless.
type LastDelivery struct {
	Time  DeliveryTime
	Found bool
}

// NoOrders is the LastDelivery value of a partner without orders.
func NoOrders() LastDelivery { return LastDelivery{} }

// Stats is a point-in-time size of the registries.
type Stats struct {
	Orders   int
	Partners int
	Assigned int
}

// Unassigned returns the number of orders without a partner.
func (s Stats) Unassigned() int { return s.Orders - s.Assigned }
