//go:generate mockgen -source=contracts.go -destination=orders_mocks_test.go -package=handlers_test

package handlers

import (
	"context"

	"service-orders/internal/domain"
	"service-orders/internal/service/orders"
)

type orderUsecase interface {
	AddOrder(ctx context.Context, id, deliveryTime string) (domain.Order, error)
	AddPartner(ctx context.Context, id string) (domain.Partner, error)
	Assign(ctx context.Context, orderID, partnerID string) (domain.Assignment, error)
	GetOrder(ctx context.Context, id string) (domain.Order, error)
	GetPartner(ctx context.Context, id string) (domain.Partner, error)
	OrderCount(ctx context.Context, partnerID string) (int, error)
	PartnerOrders(ctx context.Context, partnerID string) ([]domain.Order, error)
	AllOrders(ctx context.Context) ([]domain.Order, error)
	UnassignedCount(ctx context.Context) (int, error)
	CountAfter(ctx context.Context, partnerID, cutoff string) (int, error)
	LastDeliveryTime(ctx context.Context, partnerID string) (domain.LastDelivery, error)
	DeletePartner(ctx context.Context, partnerID string) (domain.PartnerRemoval, error)
	DeleteOrder(ctx context.Context, orderID string) (domain.OrderRemoval, error)
}

// NewOrderUsecase wires an orders.Service into an orderUsecase.
func NewOrderUsecase(svc *orders.Service) orderUsecase {
	return svc
}
