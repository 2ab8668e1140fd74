package orders

import "service-orders/internal/domain"

// orderStore is the storage the service coordinates.
type orderStore interface {
	AddOrder(o domain.Order) error
	AddPartner(id string) (domain.Partner, error)
	Assign(orderID, partnerID string) (domain.Assignment, error)
	Order(id string) (domain.Order, error)
	Partner(id string) (domain.Partner, error)
	OrderCount(partnerID string) (int, error)
	OrdersByPartner(partnerID string) ([]domain.Order, error)
	Orders() []domain.Order
	UnassignedCount() int
	CountAfter(partnerID string, cutoff domain.DeliveryTime) (int, error)
	LastDeliveryTime(partnerID string) (domain.LastDelivery, error)
	DeletePartner(id string) (domain.PartnerRemoval, error)
	DeleteOrder(id string) (domain.OrderRemoval, error)
}
