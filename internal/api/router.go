package api

import (
	"net/http"
	"time"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/bus"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/kv"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/sizes"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// RouterConfig wires the dependencies of the API router.
type RouterConfig struct {
	Store     *store.Store
	KV        kv.Store
	Bus       *bus.Bus
	Users     []model.User
	JWTSecret string
	// SimulatedLatency paces login and checkout like the storefront's mock
	// API calls. Zero disables it (tests).
	SimulatedLatency time.Duration
}

// NewRouter creates the API router with all endpoints registered.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{Users: cfg.Users, JWTSecret: cfg.JWTSecret, Latency: cfg.SimulatedLatency}
	productsHandler := &ProductsHandler{Store: cfg.Store, KV: cfg.KV}
	inventoryHandler := &InventoryHandler{Store: cfg.Store, Sizes: sizes.New(cfg.Store)}
	cartHandler := &CartHandler{Store: cfg.Store, Latency: cfg.SimulatedLatency}
	contentHandler := &ContentHandler{Store: cfg.Store}
	eventsHandler := &EventsHandler{Bus: cfg.Bus}

	authMW := AuthMiddleware(cfg.JWTSecret)
	requireAdmin := RequireRole(model.RoleAdmin)

	// Public: login and storefront reads.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.HandleFunc("GET /api/products", productsHandler.List)
	mux.HandleFunc("GET /api/products/{id}", productsHandler.Get)
	mux.HandleFunc("GET /api/products/{id}/image", productsHandler.GetImage)
	mux.HandleFunc("GET /api/site-content", contentHandler.GetSiteContent)
	mux.HandleFunc("GET /api/settings", contentHandler.GetSettings)
	mux.HandleFunc("GET /api/events", eventsHandler.Stream)

	// Cart and checkout (the demo cart is store-wide, not per-user).
	mux.HandleFunc("GET /api/cart", cartHandler.Get)
	mux.HandleFunc("POST /api/cart", cartHandler.Add)
	mux.HandleFunc("DELETE /api/cart", cartHandler.Clear)
	mux.HandleFunc("DELETE /api/cart/{id}", cartHandler.Remove)
	mux.HandleFunc("POST /api/checkout", cartHandler.Checkout)

	// Admin: catalog management.
	mux.Handle("POST /api/products", authMW(requireAdmin(http.HandlerFunc(productsHandler.Create))))
	mux.Handle("PUT /api/products/{id}", authMW(requireAdmin(http.HandlerFunc(productsHandler.Update))))
	mux.Handle("DELETE /api/products/{id}", authMW(requireAdmin(http.HandlerFunc(productsHandler.Delete))))
	mux.Handle("PUT /api/products/{id}/image", authMW(requireAdmin(http.HandlerFunc(productsHandler.UploadImage))))

	// Admin: inventory management.
	mux.Handle("GET /api/inventory", authMW(requireAdmin(http.HandlerFunc(inventoryHandler.List))))
	mux.Handle("PUT /api/inventory/{id}", authMW(requireAdmin(http.HandlerFunc(inventoryHandler.UpdateStock))))
	mux.Handle("POST /api/inventory/{id}/sizes", authMW(requireAdmin(http.HandlerFunc(inventoryHandler.ExpandSizes))))
	mux.Handle("PUT /api/inventory/{id}/sizes/{size}", authMW(requireAdmin(http.HandlerFunc(inventoryHandler.SetSizeStock))))

	// Admin: site content, settings, orders.
	mux.Handle("PUT /api/site-content", authMW(requireAdmin(http.HandlerFunc(contentHandler.PutSiteContent))))
	mux.Handle("PUT /api/settings", authMW(requireAdmin(http.HandlerFunc(contentHandler.PutSettings))))
	mux.Handle("GET /api/orders", authMW(requireAdmin(http.HandlerFunc(contentHandler.ListOrders))))

	return mux
}
