package handlers

import "service-orders/internal/domain"

// noOrdersReply is what get-last-delivery-time returns for a partner without orders.
const noOrdersReply = "no orders"

func orderToResponse(o domain.Order) orderDTO {
	return orderDTO{ID: o.ID, DeliveryTime: o.DeliveryTime.String()}
}

func partnerToResponse(p domain.Partner) partnerDTO {
	return partnerDTO{ID: p.ID, NumberOfOrders: p.NumberOfOrders}
}

func orderIDs(list []domain.Order) []string {
	out := make([]string, 0, len(list))
	for _, o := range list {
		out = append(out, o.ID)
	}
	return out
}

func lastDeliveryToResponse(last domain.LastDelivery) string {
	if !last.Found {
		return noOrdersReply
	}
	return last.Time.String()
}
