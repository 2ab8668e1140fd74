package domain

// Order is a delivery request with a scheduled time of day.
type Order struct {
	ID           string
	DeliveryTime DeliveryTime
}

// Partner is a delivery partner and the number of orders currently assigned to it.
type Partner struct {
	ID             string
	NumberOfOrders int
}
