package handlers

import (
	"net/http"

	"service-orders/internal/logx"
)

// OrderHandler serves the /orders endpoints.
type OrderHandler struct {
	usecase orderUsecase
	logger  logx.Logger
}

// NewOrderHandler creates a new OrderHandler.
func NewOrderHandler(logger logx.Logger, uc orderUsecase) *OrderHandler {
	if logger == nil {
		logger = logx.Nop()
	}
	return &OrderHandler{usecase: uc, logger: logger}
}

// AddOrder handles POST /orders/add-order.
func (h *OrderHandler) AddOrder(w http.ResponseWriter, r *http.Request) {
	var req addOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	if _, err := h.usecase.AddOrder(r.Context(), req.ID, req.DeliveryTime); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, messageResponse{Message: "New order added successfully"})
}

// AddPartner handles POST /orders/add-partner/{partnerId}.
func (h *OrderHandler) AddPartner(w http.ResponseWriter, r *http.Request) {
	if _, err := h.usecase.AddPartner(r.Context(), pathParam(r, "partnerId")); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, messageResponse{Message: "New delivery partner added successfully"})
}

// AssignPair handles PUT /orders/add-order-partner-pair?orderId=&partnerId=.
func (h *OrderHandler) AssignPair(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	if _, err := h.usecase.Assign(r.Context(), q.Get("orderId"), q.Get("partnerId")); err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusCreated, messageResponse{Message: "New order-partner pair added successfully"})
}

// GetOrder handles GET /orders/get-order-by-id/{orderId}.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := h.usecase.GetOrder(r.Context(), pathParam(r, "orderId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderToResponse(o))
}

// GetPartner handles GET /orders/get-partner-by-id/{partnerId}.
func (h *OrderHandler) GetPartner(w http.ResponseWriter, r *http.Request) {
	p, err := h.usecase.GetPartner(r.Context(), pathParam(r, "partnerId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, partnerToResponse(p))
}

// OrderCount handles GET /orders/get-order-count-by-partner-id/{partnerId}.
func (h *OrderHandler) OrderCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.usecase.OrderCount(r.Context(), pathParam(r, "partnerId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, n)
}

// PartnerOrders handles GET /orders/get-orders-by-partner-id/{partnerId}.
func (h *OrderHandler) PartnerOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.PartnerOrders(r.Context(), pathParam(r, "partnerId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderIDs(list))
}

// AllOrders handles GET /orders/get-all-orders.
func (h *OrderHandler) AllOrders(w http.ResponseWriter, r *http.Request) {
	list, err := h.usecase.AllOrders(r.Context())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, orderIDs(list))
}

// UnassignedCount handles GET /orders/get-count-of-unassigned-orders.
func (h *OrderHandler) UnassignedCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.usecase.UnassignedCount(r.Context())
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, n)
}

// CountAfter handles GET /orders/get-count-of-orders-left-after-given-time/{partnerId}?time=HH:mm.
func (h *OrderHandler) CountAfter(w http.ResponseWriter, r *http.Request) {
	n, err := h.usecase.CountAfter(r.Context(), pathParam(r, "partnerId"), r.URL.Query().Get("time"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, n)
}

// LastDeliveryTime handles GET /orders/get-last-delivery-time/{partnerId}.
func (h *OrderHandler) LastDeliveryTime(w http.ResponseWriter, r *http.Request) {
	last, err := h.usecase.LastDeliveryTime(r.Context(), pathParam(r, "partnerId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, lastDeliveryToResponse(last))
}

// DeletePartner handles DELETE /orders/delete-partner-by-id/{partnerId}.
func (h *OrderHandler) DeletePartner(w http.ResponseWriter, r *http.Request) {
	res, err := h.usecase.DeletePartner(r.Context(), pathParam(r, "partnerId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, messageResponse{Message: res.PartnerID + " removed successfully"})
}

// DeleteOrder handles DELETE /orders/delete-order-by-id/{orderId}.
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	res, err := h.usecase.DeleteOrder(r.Context(), pathParam(r, "orderId"))
	if err != nil {
		writeAppError(h.logger, w, r, err)
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, messageResponse{Message: res.OrderID + " removed successfully"})
}
