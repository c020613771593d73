package routes

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/luxtime/luxtime-backend/api/middleware"
	"github.com/luxtime/luxtime-backend/internal/cart"
	products "github.com/luxtime/luxtime-backend/internal/products"
	pkgAuth "github.com/luxtime/luxtime-backend/pkg/auth"
	"github.com/luxtime/luxtime-backend/pkg/config"
	"github.com/luxtime/luxtime-backend/pkg/logger"
	"github.com/luxtime/luxtime-backend/pkg/metrics"
)

type stubPinger struct{}

func (stubPinger) Ping(context.Context) error {
	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{Env: "test", Port: "0", CORSOrigins: []string{"http://localhost:3000"}},
		JWT: config.JWTConfig{
			Secret:   "secret",
			Issuer:   "luxtime-idp",
			Audience: "authenticated",
		},
	}
}

type testDeps struct {
	router   http.Handler
	registry *cart.Registry
}

func newTestRouter(t *testing.T, cfg *config.Config) testDeps {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test-routing", Level: "debug", Output: io.Discard})

	promRegistry := prometheus.NewRegistry()
	cartMetrics := metrics.NewCartMetrics(promRegistry)

	registry, err := cart.NewRegistry(cart.RegistryParams{
		KeyPrefix:  "luxtime-cart",
		Repository: cart.NewMemoryRepository(),
		Pricing:    cart.DefaultPricing(),
		Notifier:   cart.Notifiers{cart.NewLogNotifier(logg), cart.NewMetricsNotifier(cartMetrics)},
		Recorder:   cartMetrics,
		Logger:     logg,
	})
	if err != nil {
		t.Fatalf("new registry: %v", err)
	}
	productService, err := products.NewService(products.NewMemoryRepository(products.SampleWatches()))
	if err != nil {
		t.Fatalf("new product service: %v", err)
	}

	router := NewRouter(
		cfg,
		logg,
		stubPinger{}, // db.Pinger
		nil,          // redis.Pinger
		registry,
		productService,
		promhttp.HandlerFor(promRegistry, promhttp.HandlerOpts{}),
	)
	return testDeps{router: router, registry: registry}
}

func serve(router http.Handler, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestHealthRoutes(t *testing.T) {
	deps := newTestRouter(t, testConfig())

	if resp := serve(deps.router, httptest.NewRequest(http.MethodGet, "/health/live", nil)); resp.Code != http.StatusOK {
		t.Fatalf("expected live 200 got %d", resp.Code)
	}
	resp := serve(deps.router, httptest.NewRequest(http.MethodGet, "/health/ready", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected ready 200 got %d: %s", resp.Code, resp.Body.String())
	}
	if resp.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected request id header")
	}
}

func TestProductRoutes(t *testing.T) {
	deps := newTestRouter(t, testConfig())

	resp := serve(deps.router, httptest.NewRequest(http.MethodGet, "/api/v1/products?brand=Omega", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	resp = serve(deps.router, httptest.NewRequest(http.MethodGet, "/api/v1/products/3", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestCartRequiresOwner(t *testing.T) {
	deps := newTestRouter(t, testConfig())

	resp := serve(deps.router, httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil))
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without owner got %d", resp.Code)
	}
}

func TestCartRejectsInvalidToken(t *testing.T) {
	deps := newTestRouter(t, testConfig())

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set("Authorization", "Bearer tampered")
	if resp := serve(deps.router, req); resp.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d", resp.Code)
	}
}

func TestCartFlowForSessionAndUser(t *testing.T) {
	cfg := testConfig()
	deps := newTestRouter(t, cfg)

	add := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"1","quantity":1}`))
	add.Header.Set(middleware.CartSessionHeader, "guest-1")
	if resp := serve(deps.router, add); resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}

	token, err := pkgAuth.MintAccessToken(cfg.JWT, time.Now(), pkgAuth.AccessTokenPayload{Subject: "shopper-9"})
	if err != nil {
		t.Fatalf("mint token: %v", err)
	}
	replace := httptest.NewRequest(http.MethodPut, "/api/v1/cart", strings.NewReader(`{"items":[{"product_id":"1","quantity":2}]}`))
	replace.Header.Set("Authorization", "Bearer "+token)
	resp := serve(deps.router, replace)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", resp.Code, resp.Body.String())
	}

	var envelope struct {
		Data struct {
			Owner     string `json:"owner"`
			ItemCount int    `json:"item_count"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Owner != "user:shopper-9" || envelope.Data.ItemCount != 2 {
		t.Fatalf("unexpected cart %+v", envelope.Data)
	}
	if deps.registry.Len() != 2 {
		t.Fatalf("expected separate guest and user carts, got %d", deps.registry.Len())
	}
}

func TestMetricsRoute(t *testing.T) {
	deps := newTestRouter(t, testConfig())

	add := httptest.NewRequest(http.MethodPost, "/api/v1/cart/items", strings.NewReader(`{"product_id":"4"}`))
	add.Header.Set(middleware.CartSessionHeader, "guest-2")
	serve(deps.router, add)

	resp := serve(deps.router, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
	if !strings.Contains(resp.Body.String(), "cart_mutations_total") {
		t.Fatalf("expected cart metrics in exposition, got %s", resp.Body.String())
	}
}
