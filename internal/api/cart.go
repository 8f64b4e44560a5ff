package api

import (
	"net/http"
	"time"

	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/model"
	"github.com/tuffixible/sneaker-galaxy-display-39-sub000/internal/store"
)

// CartHandler handles the cart and the simulated checkout.
type CartHandler struct {
	Store *store.Store
	// Latency is the artificial checkout delay for UX pacing.
	Latency time.Duration
}

type checkoutRequest struct {
	Customer string `json:"customer"`
}

// Get handles GET /api/cart.
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	lines := h.Store.LoadCart(r.Context())
	if lines == nil {
		lines = []model.CartLine{}
	}
	jsonResponse(w, http.StatusOK, lines)
}

// Add handles POST /api/cart. Adding an existing (product, size) pair merges
// quantities.
func (h *CartHandler) Add(w http.ResponseWriter, r *http.Request) {
	var line model.CartLine
	if err := decodeJSON(r, &line); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if line.ProductID == "" {
		jsonError(w, http.StatusBadRequest, "productId required")
		return
	}
	if h.Store.GetProduct(r.Context(), line.ProductID) == nil {
		jsonError(w, http.StatusNotFound, "product not found")
		return
	}

	lines, err := h.Store.AddToCart(r.Context(), line)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	jsonResponse(w, http.StatusOK, lines)
}

// Remove handles DELETE /api/cart/{id}. The optional size query parameter
// narrows the removal to one size.
func (h *CartHandler) Remove(w http.ResponseWriter, r *http.Request) {
	lines, err := h.Store.RemoveFromCart(r.Context(), r.PathValue("id"), r.URL.Query().Get("size"))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update cart")
		return
	}
	if lines == nil {
		lines = []model.CartLine{}
	}
	jsonResponse(w, http.StatusOK, lines)
}

// Clear handles DELETE /api/cart.
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	if err := h.Store.ClearCart(r.Context()); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to clear cart")
		return
	}
	jsonResponse(w, http.StatusOK, []model.CartLine{})
}

// Checkout handles POST /api/checkout. Single attempt, no retry.
func (h *CartHandler) Checkout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if h.Latency > 0 {
		time.Sleep(h.Latency)
	}

	order, err := h.Store.Checkout(r.Context(), req.Customer)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonResponse(w, http.StatusCreated, order)
}
