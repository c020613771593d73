package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/luxtime/luxtime-backend/api/controllers"
	cartcontrollers "github.com/luxtime/luxtime-backend/api/controllers/cart"
	"github.com/luxtime/luxtime-backend/api/middleware"
	"github.com/luxtime/luxtime-backend/internal/cart"
	products "github.com/luxtime/luxtime-backend/internal/products"
	"github.com/luxtime/luxtime-backend/pkg/config"
	"github.com/luxtime/luxtime-backend/pkg/db"
	"github.com/luxtime/luxtime-backend/pkg/logger"
	"github.com/luxtime/luxtime-backend/pkg/redis"
)

// NewRouter wires the HTTP surface. dbP and redisP may be nil when the
// configured storage does not use them; metricsHandler may be nil to disable
// /metrics.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisP redis.Pinger,
	carts *cart.Registry,
	productService products.Service,
	metricsHandler http.Handler,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	checks := []controllers.ReadinessCheck{
		{Name: "db", Pinger: dbP},
		{Name: "redis", Pinger: redisP},
	}
	if carts != nil {
		checks = append(checks, controllers.ReadinessCheck{Name: "cart_store", Pinger: carts})
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, checks...))
	})

	if metricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", metricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(productService, logg))
			r.Get("/{productId}", controllers.GetProduct(productService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Use(middleware.CartOwner(cfg.JWT, logg))

			var engines cartcontrollers.Engines
			if carts != nil {
				engines = carts
			}
			var productSource cartcontrollers.ProductSource
			if productService != nil {
				productSource = productService
			}

			r.Get("/", cartcontrollers.CartFetch(engines, logg))
			r.Put("/", cartcontrollers.CartReplace(engines, productSource, logg))
			r.Delete("/", cartcontrollers.CartClear(engines, logg))
			r.Post("/items", cartcontrollers.CartAddItem(engines, productSource, logg))
			r.Patch("/items/{productId}", cartcontrollers.CartUpdateItem(engines, logg))
			r.Delete("/items/{productId}", cartcontrollers.CartRemoveItem(engines, logg))
		})
	})

	return r
}
