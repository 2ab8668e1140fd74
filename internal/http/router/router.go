package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/dig"

	"service-orders/internal/http/handlers"
	obs "service-orders/internal/http/middleware"
	"service-orders/internal/http/middleware/ratelimit"
	"service-orders/internal/logx"
)

// Params are the router dependencies. RateLimit is optional.
type Params struct {
	dig.In

	Logger    logx.Logger
	Base      *handlers.Handlers
	Orders    *handlers.OrderHandler
	RateLimit *ratelimit.Middleware `optional:"true"`
}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(p Params) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(obs.Observability(p.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(5 * time.Second))

	r.Get("/ping", p.Base.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(p.Base.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.NotFound(http.HandlerFunc(p.Base.NotFound))

	r.Route("/orders", func(r chi.Router) {
		if p.RateLimit != nil {
			r.Use(p.RateLimit.Handler())
		}

		r.Post("/add-order", p.Orders.AddOrder)
		r.Post("/add-partner/{partnerId}", p.Orders.AddPartner)
		r.Put("/add-order-partner-pair", p.Orders.AssignPair)

		r.Get("/get-order-by-id/{orderId}", p.Orders.GetOrder)
		r.Get("/get-partner-by-id/{partnerId}", p.Orders.GetPartner)
		r.Get("/get-order-count-by-partner-id/{partnerId}", p.Orders.OrderCount)
		r.Get("/get-orders-by-partner-id/{partnerId}", p.Orders.PartnerOrders)
		r.Get("/get-all-orders", p.Orders.AllOrders)
		r.Get("/get-count-of-unassigned-orders", p.Orders.UnassignedCount)
		r.Get("/get-count-of-orders-left-after-given-time/{partnerId}", p.Orders.CountAfter)
		r.Get("/get-last-delivery-time/{partnerId}", p.Orders.LastDeliveryTime)

		r.Delete("/delete-partner-by-id/{partnerId}", p.Orders.DeletePartner)
		r.Delete("/delete-order-by-id/{orderId}", p.Orders.DeleteOrder)
	})

	return r
}
