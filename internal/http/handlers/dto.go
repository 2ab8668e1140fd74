package handlers

// ErrorResponse is the body of every error reply.
type ErrorResponse struct {
	Error string `json:"error"`
}

type messageResponse struct {
	Message string `json:"message"`
}

type addOrderRequest struct {
	ID           string `json:"id"`
	DeliveryTime string `json:"deliveryTime"`
}

type orderDTO struct {
	ID           string `json:"id"`
	DeliveryTime string `json:"deliveryTime"`
}

type partnerDTO struct {
	ID             string `json:"id"`
	NumberOfOrders int    `json:"numberOfOrders"`
}
