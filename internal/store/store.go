// Package store keeps orders, delivery partners and the assignments between them in memory.
package store

import (
	"cmp"
	"fmt"
	"slices"
	"sync"

	"service-orders/internal/apperr"
	"service-orders/internal/domain"
)

// Store is the in-memory assignment store.
//
// Every partner's NumberOfOrders equals the number of entries in assignments
// pointing at it. All three maps change together under mu.
type Store struct {
	mu          sync.RWMutex
	orders      map[string]domain.Order
	partners    map[string]domain.Partner
	assignments map[string]string // order id -> partner id
}

// New returns an empty Store.
func New() *Store {
	return &Store{
		orders:      make(map[string]domain.Order),
		partners:    make(map[string]domain.Partner),
		assignments: make(map[string]string),
	}
}

// AddOrder registers an order. Duplicate ids are rejected with apperr.ErrDuplicateKey.
func (s *Store) AddOrder(o domain.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[o.ID]; ok {
		return fmt.Errorf("order %q: %w", o.ID, apperr.ErrDuplicateKey)
	}
	s.orders[o.ID] = o
	return nil
}

// AddPartner registers a partner with no orders.
func (s *Store) AddPartner(id string) (domain.Partner, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[id]; ok {
		return domain.Partner{}, fmt.Errorf("partner %q: %w", id, apperr.ErrDuplicateKey)
	}
	p := domain.Partner{ID: id}
	s.partners[id] = p
	return p, nil
}

// Assign pairs an order with a partner, replacing any previous partner of the order.
func (s *Store) Assign(orderID, partnerID string) (domain.Assignment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[orderID]; !ok {
		return domain.Assignment{}, orderNotFound(orderID)
	}
	if _, ok := s.partners[partnerID]; !ok {
		return domain.Assignment{}, partnerNotFound(partnerID)
	}

	prev, assigned := s.assignments[orderID]
	res := domain.Assignment{OrderID: orderID, PartnerID: partnerID, PreviousPartnerID: prev}
	if assigned && prev == partnerID {
		return res, nil
	}
	if assigned {
		s.adjustCount(prev, -1)
	}
	s.assignments[orderID] = partnerID
	s.adjustCount(partnerID, +1)
	return res, nil
}

// Order returns the order with the given id.
func (s *Store) Order(id string) (domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	o, ok := s.orders[id]
	if !ok {
		return domain.Order{}, orderNotFound(id)
	}
	return o, nil
}

// Partner returns the partner with the given id.
func (s *Store) Partner(id string) (domain.Partner, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.partners[id]
	if !ok {
		return domain.Partner{}, partnerNotFound(id)
	}
	return p, nil
}

// OrderCount returns the number of orders assigned to the partner.
func (s *Store) OrderCount(partnerID string) (int, error) {
	p, err := s.Partner(partnerID)
	if err != nil {
		return 0, err
	}
	return p.NumberOfOrders, nil
}

// OrdersByPartner returns the partner's orders sorted by id.
// An unknown or deleted partner has no orders, so the result is empty rather than an error.
func (s *Store) OrdersByPartner(partnerID string) ([]domain.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0)
	s.eachAssigned(partnerID, func(o domain.Order) { out = append(out, o) })
	sortByID(out)
	return out, nil
}

// Orders returns every registered order sorted by id.
func (s *Store) Orders() []domain.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, o)
	}
	sortByID(out)
	return out
}

// UnassignedCount returns the number of orders without a partner.
func (s *Store) UnassignedCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.orders) - len(s.assignments)
}

// CountAfter counts the partner's orders due strictly after cutoff.
func (s *Store) CountAfter(partnerID string, cutoff domain.DeliveryTime) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, ok := s.partners[partnerID]; !ok {
		return 0, partnerNotFound(partnerID)
	}
	n := 0
	s.eachAssigned(partnerID, func(o domain.Order) {
		if o.DeliveryTime > cutoff {
			n++
		}
	})
	return n, nil
}

// LastDeliveryTime returns the latest delivery time among the partner's orders,
// or domain.NoOrders() when it holds none, including when the partner is unknown.
func (s *Store) LastDeliveryTime(partnerID string) (domain.LastDelivery, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	last := domain.NoOrders()
	s.eachAssigned(partnerID, func(o domain.Order) {
		if !last.Found || o.DeliveryTime > last.Time {
			last = domain.LastDelivery{Time: o.DeliveryTime, Found: true}
		}
	})
	return last, nil
}

// DeletePartner removes the partner and unassigns its orders. The orders themselves stay.
func (s *Store) DeletePartner(id string) (domain.PartnerRemoval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.partners[id]; !ok {
		return domain.PartnerRemoval{}, partnerNotFound(id)
	}
	released := 0
	for orderID, partnerID := range s.assignments {
		if partnerID == id {
			delete(s.assignments, orderID)
			released++
		}
	}
	delete(s.partners, id)
	return domain.PartnerRemoval{PartnerID: id, ReleasedOrders: released}, nil
}

// DeleteOrder removes the order, releasing it from its partner first.
func (s *Store) DeleteOrder(id string) (domain.OrderRemoval, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.orders[id]; !ok {
		return domain.OrderRemoval{}, orderNotFound(id)
	}
	res := domain.OrderRemoval{OrderID: id}
	if partnerID, ok := s.assignments[id]; ok {
		s.adjustCount(partnerID, -1)
		delete(s.assignments, id)
		res.PartnerID = partnerID
	}
	delete(s.orders, id)
	return res, nil
}

// Stats returns the current registry sizes.
func (s *Store) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return domain.Stats{
		Orders:   len(s.orders),
		Partners: len(s.partners),
		Assigned: len(s.assignments),
	}
}

// adjustCount must be called with mu held for writing.
func (s *Store) adjustCount(partnerID string, delta int) {
	p, ok := s.partners[partnerID]
	if !ok {
		return
	}
	p.NumberOfOrders += delta
	s.partners[partnerID] = p
}

// eachAssigned must be called with mu held.
func (s *Store) eachAssigned(partnerID string, fn func(domain.Order)) {
	for orderID, pid := range s.assignments {
		if pid != partnerID {
			continue
		}
		if o, ok := s.orders[orderID]; ok {
			fn(o)
		}
	}
}

func sortByID(orders []domain.Order) {
	slices.SortFunc(orders, func(a, b domain.Order) int { return cmp.Compare(a.ID, b.ID) })
}

func orderNotFound(id string) error {
	return fmt.Errorf("order %q: %w", id, apperr.ErrNotFound)
}

func partnerNotFound(id string) error {
	return fmt.Errorf("partner %q: %w", id, apperr.ErrNotFound)
}
