package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/streetcart/cart-engine/api/controllers"
	cartcontrollers "github.com/streetcart/cart-engine/api/controllers/cart"
	"github.com/streetcart/cart-engine/api/middleware"
	cartsvc "github.com/streetcart/cart-engine/internal/cart"
	checkoutsvc "github.com/streetcart/cart-engine/internal/checkout"
	"github.com/streetcart/cart-engine/pkg/config"
	"github.com/streetcart/cart-engine/pkg/logger"
)

// NewRouter wires the HTTP facade over the cart store and checkout service.
// readiness checks probe the configured storage backend; registry may be nil
// when metrics are not exposed.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *cartsvc.Store,
	checkoutService checkoutsvc.Service,
	registry *prometheus.Registry,
	readiness ...controllers.ReadinessCheck,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, readiness...))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.CartFetch(store, logg))
		r.Delete("/", cartcontrollers.CartClear(store, logg))
		r.Get("/totals", cartcontrollers.CartTotals(store, logg))
		r.Get("/vendors/{vendorID}", cartcontrollers.CartVendorBasket(store, logg))
		r.Post("/items", cartcontrollers.CartAddItem(store, logg))
		r.Put("/items", cartcontrollers.CartSetQuantity(store, logg))
		r.Get("/items/{vendorID}/{productID}", cartcontrollers.CartItemStatus(store, logg))
		r.Delete("/items/{vendorID}/{productID}", cartcontrollers.CartRemoveItem(store, logg))
	})

	r.Route("/api/v1/checkout", func(r chi.Router) {
		r.Post("/quote", controllers.CheckoutQuote(checkoutService, logg))
		r.Post("/confirm", controllers.CheckoutConfirm(checkoutService, logg))
	})

	return r
}
