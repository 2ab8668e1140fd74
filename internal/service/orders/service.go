package orders

import (
	"context"
	"strings"

	"service-orders/internal/apperr"
	"service-orders/internal/domain"
	"service-orders/internal/logx"
)

// Service validates requests and applies them to the assignment store.
type Service struct {
	store  orderStore
	logger logx.Logger
}

// NewService creates a new orders Service.
func NewService(s orderStore, logger logx.Logger) *Service {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{store: s, logger: logger}
}

// AddOrder registers an order due at deliveryTime ("HH:mm").
func (s *Service) AddOrder(ctx context.Context, id, deliveryTime string) (domain.Order, error) {
	id, err := validateID(id)
	if err != nil {
		return domain.Order{}, err
	}
	dt, err := domain.ParseDeliveryTime(strings.TrimSpace(deliveryTime))
	if err != nil {
		return domain.Order{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Order{}, err
	}

	o := domain.Order{ID: id, DeliveryTime: dt}
	if err := s.store.AddOrder(o); err != nil {
		return domain.Order{}, err
	}

	s.logger.Info("order added",
		logx.String("event", "order_added"),
		logx.String("order_id", o.ID),
		logx.String("delivery_time", o.DeliveryTime.String()),
	)
	return o, nil
}

// AddPartner registers a delivery partner.
func (s *Service) AddPartner(ctx context.Context, id string) (domain.Partner, error) {
	id, err := validateID(id)
	if err != nil {
		return domain.Partner{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Partner{}, err
	}

	p, err := s.store.AddPartner(id)
	if err != nil {
		return domain.Partner{}, err
	}

	s.logger.Info("partner added",
		logx.String("event", "partner_added"),
		logx.String("partner_id", p.ID),
	)
	return p, nil
}

// Assign gives the order to the partner, taking it from its previous partner if any.
func (s *Service) Assign(ctx context.Context, orderID, partnerID string) (domain.Assignment, error) {
	orderID, err := validateID(orderID)
	if err != nil {
		return domain.Assignment{}, err
	}
	partnerID, err = validateID(partnerID)
	if err != nil {
		return domain.Assignment{}, err
	}
	if err := ctx.Err(); err != nil {
		return domain.Assignment{}, err
	}

	res, err := s.store.Assign(orderID, partnerID)
	if err != nil {
		return domain.Assignment{}, err
	}

	fields := []logx.Field{
		logx.String("event", "order_assigned"),
		logx.String("order_id", res.OrderID),
		logx.String("partner_id", res.PartnerID),
	}
	if res.Reassigned() {
		fields = append(fields, logx.String("previous_partner_id", res.PreviousPartnerID))
	}
	s.logger.Info("order assigned", fields...)
	return res, nil
}

// GetOrder returns an order by id.
func (s *Service) GetOrder(ctx context.Context, id string) (domain.Order, error) {
	id, err := s.prepare(ctx, id)
	if err != nil {
		return domain.Order{}, err
	}
	return s.store.Order(id)
}

// GetPartner returns a partner by id.
func (s *Service) GetPartner(ctx context.Context, id string) (domain.Partner, error) {
	id, err := s.prepare(ctx, id)
	if err != nil {
		return domain.Partner{}, err
	}
	return s.store.Partner(id)
}

// OrderCount returns how many orders the partner holds.
func (s *Service) OrderCount(ctx context.Context, partnerID string) (int, error) {
	partnerID, err := s.prepare(ctx, partnerID)
	if err != nil {
		return 0, err
	}
	return s.store.OrderCount(partnerID)
}

// PartnerOrders returns the orders assigned to the partner.
func (s *Service) PartnerOrders(ctx context.Context, partnerID string) ([]domain.Order, error) {
	partnerID, err := s.prepare(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	return s.store.OrdersByPartner(partnerID)
}

// AllOrders returns every order.
func (s *Service) AllOrders(ctx context.Context) ([]domain.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.store.Orders(), nil
}

// UnassignedCount returns the number of orders without a partner.
func (s *Service) UnassignedCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.store.UnassignedCount(), nil
}

// CountAfter counts the partner's orders due strictly after cutoff ("HH:mm").
func (s *Service) CountAfter(ctx context.Context, partnerID, cutoff string) (int, error) {
	partnerID, err := s.prepare(ctx, partnerID)
	if err != nil {
		return 0, err
	}
	at, err := domain.ParseDeliveryTime(strings.TrimSpace(cutoff))
	if err != nil {
		return 0, err
	}
	return s.store.CountAfter(partnerID, at)
}

// LastDeliveryTime returns the partner's latest delivery time; Found is false if it has no orders.
func (s *Service) LastDeliveryTime(ctx context.Context, partnerID string) (domain.LastDelivery, error) {
	partnerID, err := s.prepare(ctx, partnerID)
	if err != nil {
		return domain.LastDelivery{}, err
	}
	return s.store.LastDeliveryTime(partnerID)
}

// DeletePartner removes the partner; its orders become unassigned.
func (s *Service) DeletePartner(ctx context.Context, partnerID string) (domain.PartnerRemoval, error) {
	partnerID, err := s.prepare(ctx, partnerID)
	if err != nil {
		return domain.PartnerRemoval{}, err
	}

	res, err := s.store.DeletePartner(partnerID)
	if err != nil {
		return domain.PartnerRemoval{}, err
	}

	s.logger.Info("partner deleted",
		logx.String("event", "partner_deleted"),
		logx.String("partner_id", res.PartnerID),
		logx.Int("released_orders", res.ReleasedOrders),
	)
	return res, nil
}

// DeleteOrder removes the order and releases it from its partner.
func (s *Service) DeleteOrder(ctx context.Context, orderID string) (domain.OrderRemoval, error) {
	orderID, err := s.prepare(ctx, orderID)
	if err != nil {
		return domain.OrderRemoval{}, err
	}

	res, err := s.store.DeleteOrder(orderID)
	if err != nil {
		return domain.OrderRemoval{}, err
	}

	fields := []logx.Field{
		logx.String("event", "order_deleted"),
		logx.String("order_id", res.OrderID),
	}
	if res.PartnerID != "" {
		fields = append(fields, logx.String("partner_id", res.PartnerID))
	}
	s.logger.Info("order deleted", fields...)
	return res, nil
}

// prepare validates an id and checks the request is still alive.
func (s *Service) prepare(ctx context.Context, id string) (string, error) {
	id, err := validateID(id)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return id, nil
}

func validateID(raw string) (string, error) {
	id := strings.TrimSpace(raw)
	if id == "" {
		return "", apperr.ErrInvalid
	}
	return id, nil
}
